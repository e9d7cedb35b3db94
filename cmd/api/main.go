package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"

	"github.com/paywise/paywise-api/internal/domain/entity"
	coreport "github.com/paywise/paywise-api/internal/domain/port/core"
	analyticsUseCase "github.com/paywise/paywise-api/internal/domain/usecase/analytics"
	authUseCase "github.com/paywise/paywise-api/internal/domain/usecase/auth"
	categoryUseCase "github.com/paywise/paywise-api/internal/domain/usecase/category"
	transactionUseCase "github.com/paywise/paywise-api/internal/domain/usecase/transaction"
	transferUseCase "github.com/paywise/paywise-api/internal/domain/usecase/transfer"
	userUseCase "github.com/paywise/paywise-api/internal/domain/usecase/user"
	"github.com/paywise/paywise-api/internal/infrastructure/adapter/api/handler"
	"github.com/paywise/paywise-api/internal/infrastructure/adapter/api/routes"
	"github.com/paywise/paywise-api/internal/infrastructure/adapter/cache"
	"github.com/paywise/paywise-api/internal/infrastructure/adapter/database"
	"github.com/paywise/paywise-api/internal/infrastructure/adapter/events"
	"github.com/paywise/paywise-api/internal/infrastructure/adapter/logger"
	"github.com/paywise/paywise-api/internal/infrastructure/adapter/repository"
	"github.com/paywise/paywise-api/internal/infrastructure/adapter/scheduler"
	"github.com/paywise/paywise-api/internal/infrastructure/adapter/security"
	timeProvider "github.com/paywise/paywise-api/internal/infrastructure/adapter/time"
	"github.com/paywise/paywise-api/internal/infrastructure/config"
)

//	@title			PayWise API
//	@version		1.0
//	@description	Peer-to-peer payments with per-category spending tracking.
//	@BasePath		/api

//	@securityDefinitions.apikey	ApiKeyAuth
//	@in							header
//	@name						Authorization
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	appLogger := logger.NewZapLogger(logger.Options{
		Production: cfg.IsProduction() || cfg.Logger.Format == "json",
		Level:      cfg.Logger.Level,
		Service:    "paywise-api",
	})
	defer func() { _ = appLogger.Flush() }()

	if err := run(cfg, appLogger); err != nil {
		appLogger.Error("Server stopped with error", map[string]any{"error": err.Error()})
		_ = appLogger.Flush()
		os.Exit(1)
	}
}

func run(cfg *config.Config, appLogger coreport.Logger) error {
	tp := timeProvider.NewRealTimeProvider()

	openingBalance, err := entity.ParseAmount(cfg.Auth.OpeningBalance)
	if err != nil {
		return fmt.Errorf("invalid auth.openingBalance %q: %w", cfg.Auth.OpeningBalance, err)
	}

	// Database
	startupCtx, cancelStartup := context.WithTimeout(context.Background(), time.Minute)
	defer cancelStartup()

	dbManager := database.NewManager(database.NewConfig(cfg.Database, cfg.Logger.Level), appLogger, tp)
	if _, err := dbManager.Connect(startupCtx); err != nil {
		return err
	}
	defer func() { _ = dbManager.Close() }()

	if err := dbManager.Migrate(startupCtx); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	uow := dbManager.CreateUnitOfWork()
	userRepo := repository.NewUserRepository(dbManager.DB(), appLogger)
	transactionRepo := repository.NewTransactionRepository(dbManager.DB(), appLogger)

	// Security
	hasher := security.NewBcryptHasher(cfg.Auth.BcryptCost)
	ids := security.NewUUIDGenerator()
	tokens, err := security.NewJWTIssuer(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL, tp)
	if err != nil {
		return err
	}

	// Cache and event stream
	viewCache, publisher, closeRedis := setupRedis(startupCtx, cfg.Redis, tp, appLogger)
	defer closeRedis()

	// Use cases
	analytics := analyticsUseCase.NewService(uow, viewCache, appLogger)
	auth := authUseCase.NewService(userRepo, hasher, tokens, ids, publisher, tp, appLogger, openingBalance)
	users := userUseCase.NewUserUseCase(userRepo, appLogger)
	transfers := transferUseCase.NewService(uow, hasher, ids, publisher, analytics, tp, appLogger)
	transactions := transactionUseCase.NewTransactionService(transactionRepo, ids, tp, appLogger)
	categories := categoryUseCase.NewService(uow, tp, appLogger)

	// Background jobs
	jobs := scheduler.New(analytics, appLogger)
	if err := jobs.ScheduleReconcile(cfg.Scheduler.ReconcileSpec); err != nil {
		return err
	}
	jobs.Start()

	// HTTP
	router := gin.New()
	routes.SetupMiddlewares(router, appLogger, cfg.CORS.AllowedOrigins)
	routes.SetupRoutes(router, routes.Handlers{
		Auth:        handler.NewAuthHandler(auth, appLogger),
		User:        handler.NewUserHandler(users, appLogger),
		Transfer:    handler.NewTransferHandler(transfers, appLogger),
		Transaction: handler.NewTransactionHandler(transactions, appLogger),
		Category:    handler.NewCategoryHandler(categories, appLogger),
		Analytics:   handler.NewAnalyticsHandler(analytics, appLogger),
		Health:      handler.NewHealthHandler(dbManager, tp, appLogger),
	}, auth, appLogger)

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		appLogger.Info("Starting server", map[string]any{
			"addr": server.Addr,
			"env":  cfg.Environment,
		})
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		appLogger.Info("Shutting down server...", map[string]any{"signal": sig.String()})
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("failed to start server: %w", err)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	jobs.Stop(ctx)

	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Server exited gracefully", nil)
	return nil
}

// setupRedis builds the analytics cache and the event publisher.
// With Redis disabled both fall back to no-op implementations.
func setupRedis(ctx context.Context, cfg config.RedisConfig, tp coreport.TimeProvider, appLogger coreport.Logger) (coreport.Cache, coreport.EventPublisher, func()) {
	if !cfg.Enabled {
		appLogger.Info("Redis disabled, analytics cache and events are off", nil)
		return cache.NewNoopCache(), events.NewNoopPublisher(), func() {}
	}

	client := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		// Both consumers tolerate an unavailable Redis, so keep going
		appLogger.Warn("Redis is not reachable", map[string]any{
			"addr":  cfg.Addr,
			"error": err.Error(),
		})
	} else {
		appLogger.Info("Connected to Redis", map[string]any{"addr": cfg.Addr})
	}

	return cache.NewViewCache(client, cfg.AnalyticsTTL, appLogger),
		events.NewPublisher(client, cfg.StreamMaxLen, tp),
		func() { _ = client.Close() }
}
