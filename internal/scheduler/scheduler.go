package scheduler

import (
	"context"
	"time"

	"github.com/wb-go/wbf/logger"
)

type statsReporter interface {
	ReportStats(ctx context.Context) error
}

// Scheduler periodically publishes the stats of every open ledger.
type Scheduler struct {
	reporter statsReporter
	interval time.Duration
	logger   logger.Logger
}

func New(
	reporter statsReporter,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		reporter: reporter,
		interval: interval,
		logger:   logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	if err := s.reporter.ReportStats(ctx); err != nil {
		if ctx.Err() != nil {
			return
		}
		s.logger.Error("failed to report ledger stats",
			logger.String("error", err.Error()),
		)
	}
}
