package ports

import (
	"context"

	"github.com/rawatanuj07/eventease/internal/domain"
)

type BookingNotifier interface {
	NotifyBookingCreated(ctx context.Context, booking *domain.Booking, event *domain.Event)
	NotifyBookingCancelled(ctx context.Context, booking *domain.Booking, event *domain.Event)
}
