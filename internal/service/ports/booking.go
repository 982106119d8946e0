package ports

import (
	"context"
	"time"

	"github.com/rawatanuj07/eventease/internal/domain"
)

type BookingRepo interface {
	SumActiveSeats(ctx context.Context, eventID, userID string) (int, error)
	FindActive(ctx context.Context, eventID, userID string) (*domain.Booking, error)
	Insert(ctx context.Context, b *domain.Booking) error
	AddSeats(ctx context.Context, id string, delta int, at time.Time) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	// SetStatus reports false when the booking already had the requested status.
	SetStatus(ctx context.Context, id string, status domain.BookingStatus) (bool, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.BookingDetails, error)
	ListByEvent(ctx context.Context, eventID string) ([]*domain.Booking, error)
	ActiveSeatsByEvent(ctx context.Context) (map[string]int, error)
}
