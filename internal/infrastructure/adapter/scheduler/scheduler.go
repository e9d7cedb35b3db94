package scheduler

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"

	"github.com/paywise/paywise-api/internal/domain/port/core"
	"github.com/paywise/paywise-api/internal/domain/port/usecase"
)

// Scheduler runs background jobs on cron schedules
type Scheduler struct {
	cron      *cron.Cron
	analytics usecase.AnalyticsUseCase
	logger    core.Logger
	ctx       context.Context
	cancel    context.CancelFunc
}

// New creates a scheduler. Overlapping runs of a job are skipped and panics are recovered.
func New(analytics usecase.AnalyticsUseCase, logger core.Logger) *Scheduler {
	cl := cronLogger{logger: logger}
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		cron: cron.New(cron.WithChain(
			cron.Recover(cl),
			cron.SkipIfStillRunning(cl),
		)),
		analytics: analytics,
		logger:    logger,
		ctx:       ctx,
		cancel:    cancel,
	}
}

// ScheduleReconcile registers the category reconciliation job. An empty spec disables it.
func (s *Scheduler) ScheduleReconcile(spec string) error {
	if spec == "" {
		s.logger.Info("Category reconciliation job disabled", nil)
		return nil
	}
	if _, err := s.cron.AddFunc(spec, s.runReconcile); err != nil {
		return fmt.Errorf("invalid reconcile schedule %q: %w", spec, err)
	}
	s.logger.Info("Category reconciliation job scheduled", map[string]any{"spec": spec})
	return nil
}

// Start runs the scheduler in its own goroutine
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop cancels running jobs and waits for them until ctx expires
func (s *Scheduler) Stop(ctx context.Context) {
	s.cancel()
	done := s.cron.Stop()
	select {
	case <-done.Done():
	case <-ctx.Done():
		s.logger.Warn("Scheduler stop timed out with jobs still running", nil)
	}
}

func (s *Scheduler) runReconcile() {
	result, err := s.analytics.Reconcile(s.ctx)
	if err != nil {
		s.logger.Error("Category reconciliation failed", map[string]any{"error": err.Error()})
		return
	}
	if result.Failed > 0 {
		s.logger.Warn("Category reconciliation finished with failures", map[string]any{
			"users":  result.Users,
			"failed": result.Failed,
		})
	}
}

// cronLogger adapts the core logger to cron's logging interface
type cronLogger struct {
	logger core.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug("cron: "+msg, toFields(keysAndValues))
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	fields := toFields(keysAndValues)
	fields["error"] = err.Error()
	l.logger.Error("cron: "+msg, fields)
}

func toFields(keysAndValues []any) map[string]any {
	fields := make(map[string]any, len(keysAndValues)/2+1)
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		fields[fmt.Sprint(keysAndValues[i])] = keysAndValues[i+1]
	}
	return fields
}
