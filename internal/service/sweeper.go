package service

import (
	"context"
	"log/slog"
	"time"
)

type sweepTarget interface {
	ExpireStale(ctx context.Context) error
	Reconcile(ctx context.Context) error
}

// Sweeper periodically expires stale pending orders and reconciles orders
// stuck in paid.
type Sweeper struct {
	logger   *slog.Logger
	target   sweepTarget
	interval time.Duration
}

func NewSweeper(logger *slog.Logger, target sweepTarget, interval time.Duration) *Sweeper {
	return &Sweeper{
		logger:   logger.With(slog.String("service", "sweeper")),
		target:   target,
		interval: interval,
	}
}

func (s *Sweeper) Start(ctx context.Context) error {
	go func() {
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				s.sweep(ctx)
			case <-ctx.Done():
				return
			}
		}
	}()
	return nil
}

func (s *Sweeper) sweep(ctx context.Context) {
	if err := s.target.ExpireStale(ctx); err != nil {
		s.logger.Error("expiry sweep failed", slog.Any("error", err))
	}
	if err := s.target.Reconcile(ctx); err != nil {
		s.logger.Error("reconcile sweep failed", slog.Any("error", err))
	}
}
