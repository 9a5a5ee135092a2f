package housekeeping

import (
	"context"
	"fmt"
	"time"

	"go-hrm/internal/config"
	"go-hrm/internal/features/report"

	"github.com/robfig/cron/v3"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Scheduler runs the recurring maintenance jobs of the platform. Today that
// is only the generated-report retention purge.
type Scheduler struct {
	cron      *cron.Cron
	generated report.GeneratedRepository
	log       *zap.Logger
	schedule  string
}

func NewScheduler(generated report.GeneratedRepository, cfg *config.Config, log *zap.Logger) *Scheduler {
	return &Scheduler{
		cron:      cron.New(),
		generated: generated,
		log:       log,
		schedule:  cfg.CleanupSchedule,
	}
}

func (s *Scheduler) Start() error {
	_, err := s.cron.AddFunc(s.schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()
		s.PurgeExpiredReports(ctx)
	})
	if err != nil {
		return fmt.Errorf("failed to register cleanup job: %w", err)
	}
	s.cron.Start()
	s.log.Info("housekeeping scheduler started", zap.String("schedule", s.schedule))
	return nil
}

func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

// PurgeExpiredReports is also callable directly by the cleanup binary.
func (s *Scheduler) PurgeExpiredReports(ctx context.Context) {
	deleted, err := s.generated.DeleteExpired(ctx, time.Now())
	if err != nil {
		s.log.Error("failed to purge expired generated reports", zap.Error(err))
		return
	}
	if deleted > 0 {
		s.log.Info("purged expired generated reports", zap.Int64("deleted", deleted))
	}
}

// Register hooks the scheduler into the application lifecycle.
func Register(lc fx.Lifecycle, s *Scheduler) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return s.Start()
		},
		OnStop: func(ctx context.Context) error {
			s.Stop()
			return nil
		},
	})
}
