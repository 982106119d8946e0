package scheduler

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/rawatanuj07/eventease/internal/domain"
)

type driftRepairer interface {
	FindDrift(ctx context.Context) ([]domain.SeatDrift, error)
	RepairDrift(ctx context.Context, d domain.SeatDrift) error
}

// Scheduler periodically compares seat counters with active bookings. A drift
// is repaired only once it has been observed unchanged on two consecutive
// passes, so bookings still in flight are left alone. A drift that is still
// there unchanged after its repair cannot be fixed by the counter and is not
// retried until it changes.
type Scheduler struct {
	repairer driftRepairer
	interval time.Duration
	settle   time.Duration
	logger   *slog.Logger

	mu      sync.Mutex
	seen    map[string]domain.SeatDrift
	handled map[string]domain.SeatDrift
}

func New(
	repairer driftRepairer,
	interval time.Duration,
	settle time.Duration,
	logger *slog.Logger,
) *Scheduler {
	return &Scheduler{
		repairer: repairer,
		interval: interval,
		settle:   settle,
		logger:   logger,
		seen:     make(map[string]domain.SeatDrift),
		handled:  make(map[string]domain.SeatDrift),
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("reconciler started",
		slog.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("reconciler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

// Reconcile runs two passes separated by the settle delay and returns the
// drifts it repaired.
func (s *Scheduler) Reconcile(ctx context.Context) ([]domain.SeatDrift, error) {
	first, err := s.pass(ctx)
	if err != nil {
		return nil, err
	}

	select {
	case <-ctx.Done():
		return first, ctx.Err()
	case <-time.After(s.settle):
	}

	second, err := s.pass(ctx)
	if err != nil {
		return first, err
	}

	return append(first, second...), nil
}

func (s *Scheduler) tick(ctx context.Context) {
	if _, err := s.pass(ctx); err != nil {
		s.logger.Error("reconciliation pass failed",
			slog.String("error", err.Error()),
		)
	}
}

func (s *Scheduler) pass(ctx context.Context) ([]domain.SeatDrift, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	drifts, err := s.repairer.FindDrift(ctx)
	if err != nil {
		return nil, err
	}

	var repaired []domain.SeatDrift
	next := make(map[string]domain.SeatDrift, len(drifts))
	handled := make(map[string]domain.SeatDrift)
	for _, d := range drifts {
		if prev, ok := s.handled[d.EventID]; ok && prev == d {
			handled[d.EventID] = d
			continue
		}
		if prev, ok := s.seen[d.EventID]; !ok || prev != d {
			next[d.EventID] = d
			continue
		}

		err = s.repairer.RepairDrift(ctx, d)
		switch {
		case err == nil:
			handled[d.EventID] = d
			repaired = append(repaired, d)
		case errors.Is(err, domain.ErrConcurrentUpdateConflict):
			s.logger.Debug("seat counter moved before repair",
				slog.String("event_id", d.EventID),
			)
		default:
			s.logger.Error("failed to repair seat counter",
				slog.String("event_id", d.EventID),
				slog.String("error", err.Error()),
			)
		}
	}
	s.seen = next
	s.handled = handled

	if len(drifts) > 0 {
		s.logger.Info("reconciliation pass",
			slog.Int("drifts", len(drifts)),
			slog.Int("repaired", len(repaired)),
		)
	}

	return repaired, nil
}
