package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	coreport "github.com/paywise/paywise-api/internal/domain/port/core"
)

// Pinger reports whether a dependency is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler reports service liveness and database reachability
type HealthHandler struct {
	db           Pinger
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewHealthHandler creates a new health handler instance
func NewHealthHandler(db Pinger, timeProvider coreport.TimeProvider, logger coreport.Logger) *HealthHandler {
	return &HealthHandler{db: db, timeProvider: timeProvider, logger: logger}
}

// Health handles GET /health
//
//	@Summary	Liveness and database check
//	@Tags		health
//	@Produce	json
//	@Success	200	{object}	map[string]string
//	@Failure	503	{object}	map[string]string
//	@Router		/health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	now := h.timeProvider.Now().UTC().Format(time.RFC3339)
	if err := h.db.Ping(ctx); err != nil {
		h.logger.Warn("Health check failed", map[string]any{"error": err.Error()})
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "database": "down", "time": now})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "database": "up", "time": now})
}
