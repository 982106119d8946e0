package ports

import (
	"context"

	"github.com/rawatanuj07/eventease/internal/domain"
)

type EventRepo interface {
	Create(ctx context.Context, e *domain.Event) error
	Update(ctx context.Context, e *domain.Event) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	List(ctx context.Context, filter domain.EventFilter) ([]*domain.Event, error)

	// IncrementBookedSeats adds delta only while booked seats are still at most
	// expectedMax. It returns domain.ErrConcurrentUpdateConflict when no row matched.
	IncrementBookedSeats(ctx context.Context, id string, delta, expectedMax int) error
	DecrementBookedSeats(ctx context.Context, id string, delta int) error
	// SetBookedSeats replaces the counter only if it still equals from.
	SetBookedSeats(ctx context.Context, id string, from, to int) error
}
