package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rawatanuj07/eventease/internal/domain"
)

// FindDrift lists events whose counter differs from the seats held by active bookings.
func (s *BookingService) FindDrift(ctx context.Context) ([]domain.SeatDrift, error) {
	events, err := s.eventRepo.List(ctx, domain.EventFilter{})
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}

	active, err := s.bookingRepo.ActiveSeatsByEvent(ctx)
	if err != nil {
		return nil, fmt.Errorf("active seats by event: %w", err)
	}

	var drifts []domain.SeatDrift
	for _, e := range events {
		if held := active[e.ID]; held != e.BookedSeats {
			drifts = append(drifts, domain.SeatDrift{
				EventID:     e.ID,
				Capacity:    e.Capacity,
				BookedSeats: e.BookedSeats,
				ActiveSeats: held,
			})
		}
	}

	return drifts, nil
}

// RepairDrift moves the counter to the active seat total, provided nobody
// changed it since the drift was observed.
func (s *BookingService) RepairDrift(ctx context.Context, d domain.SeatDrift) error {
	to := d.ActiveSeats
	if to > d.Capacity {
		s.logger.Warn("active bookings exceed capacity",
			slog.String("event_id", d.EventID),
			slog.Int("active_seats", d.ActiveSeats),
			slog.Int("capacity", d.Capacity),
		)
		to = d.Capacity
	}
	if to == d.BookedSeats {
		return nil
	}

	if err := s.eventRepo.SetBookedSeats(ctx, d.EventID, d.BookedSeats, to); err != nil {
		return fmt.Errorf("set booked seats: %w", err)
	}

	s.logger.Info("seat counter repaired",
		slog.String("event_id", d.EventID),
		slog.Int("from", d.BookedSeats),
		slog.Int("to", to),
	)

	return nil
}
