package notification

import (
	"context"

	"github.com/rawatanuj07/eventease/internal/domain"
	"github.com/rawatanuj07/eventease/internal/service/ports"
)

// Multi forwards every notification to each of its notifiers in order.
// An empty Multi drops notifications.
type Multi []ports.BookingNotifier

func (m Multi) NotifyBookingCreated(ctx context.Context, b *domain.Booking, e *domain.Event) {
	for _, n := range m {
		n.NotifyBookingCreated(ctx, b, e)
	}
}

func (m Multi) NotifyBookingCancelled(ctx context.Context, b *domain.Booking, e *domain.Event) {
	for _, n := range m {
		n.NotifyBookingCancelled(ctx, b, e)
	}
}
