package service

import (
	"context"
	"testing"

	"github.com/rawatanuj07/eventease/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestBookingService_FindDrift(t *testing.T) {
	svc, d := newBookingService(t)

	events := []*domain.Event{
		{ID: "e1", Capacity: 10, BookedSeats: 3},
		{ID: "e2", Capacity: 10, BookedSeats: 2},
		{ID: "e3", Capacity: 5, BookedSeats: 1},
	}
	d.eventRepo.EXPECT().List(mock.Anything, domain.EventFilter{}).Return(events, nil)
	d.bookingRepo.EXPECT().ActiveSeatsByEvent(mock.Anything).Return(map[string]int{"e1": 3, "e2": 1}, nil)

	drifts, err := svc.FindDrift(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []domain.SeatDrift{
		{EventID: "e2", Capacity: 10, BookedSeats: 2, ActiveSeats: 1},
		{EventID: "e3", Capacity: 5, BookedSeats: 1, ActiveSeats: 0},
	}, drifts)
}

func TestBookingService_RepairDrift(t *testing.T) {
	svc, d := newBookingService(t)

	d.eventRepo.EXPECT().SetBookedSeats(mock.Anything, "e2", 2, 1).Return(nil)

	err := svc.RepairDrift(context.Background(), domain.SeatDrift{EventID: "e2", Capacity: 10, BookedSeats: 2, ActiveSeats: 1})

	require.NoError(t, err)
}

func TestBookingService_RepairDrift_ClampsToCapacity(t *testing.T) {
	svc, d := newBookingService(t)

	d.eventRepo.EXPECT().SetBookedSeats(mock.Anything, "e1", 3, 4).Return(nil)

	err := svc.RepairDrift(context.Background(), domain.SeatDrift{EventID: "e1", Capacity: 4, BookedSeats: 3, ActiveSeats: 6})

	require.NoError(t, err)
}

func TestBookingService_RepairDrift_CounterMoved(t *testing.T) {
	svc, d := newBookingService(t)

	d.eventRepo.EXPECT().SetBookedSeats(mock.Anything, "e1", 3, 2).Return(domain.ErrConcurrentUpdateConflict)

	err := svc.RepairDrift(context.Background(), domain.SeatDrift{EventID: "e1", Capacity: 10, BookedSeats: 3, ActiveSeats: 2})

	assert.ErrorIs(t, err, domain.ErrConcurrentUpdateConflict)
}

func TestBookingService_RepairDrift_CounterAlreadyAtCapacity(t *testing.T) {
	svc, _ := newBookingService(t)

	err := svc.RepairDrift(context.Background(), domain.SeatDrift{EventID: "e1", Capacity: 4, BookedSeats: 4, ActiveSeats: 6})

	require.NoError(t, err)
}
