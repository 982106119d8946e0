package memory

import (
	"context"
	"testing"
	"time"

	"github.com/rawatanuj07/eventease/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepos(t *testing.T) (*EventRepository, *BookingRepository) {
	t.Helper()
	store := NewStore()
	return NewEventRepo(store), NewBookingRepo(store)
}

func seed(t *testing.T, events *EventRepository, id string, date time.Time, capacity, booked int) {
	t.Helper()
	require.NoError(t, events.Create(context.Background(), &domain.Event{
		ID: id, Title: "Event " + id, Category: "Tech", Date: date,
		Capacity: capacity, BookedSeats: booked, Status: domain.EventStatusUpcoming,
	}))
}

func TestEventRepository_Counter(t *testing.T) {
	events, _ := newRepos(t)
	ctx := context.Background()
	seed(t, events, "e1", time.Now(), 5, 3)

	require.NoError(t, events.IncrementBookedSeats(ctx, "e1", 2, 3))
	assert.ErrorIs(t, events.IncrementBookedSeats(ctx, "e1", 1, 4), domain.ErrConcurrentUpdateConflict)

	require.NoError(t, events.DecrementBookedSeats(ctx, "e1", 9))
	e, err := events.GetByID(ctx, "e1")
	require.NoError(t, err)
	assert.Zero(t, e.BookedSeats)

	assert.ErrorIs(t, events.SetBookedSeats(ctx, "e1", 1, 2), domain.ErrConcurrentUpdateConflict)
	require.NoError(t, events.SetBookedSeats(ctx, "e1", 0, 2))

	assert.ErrorIs(t, events.DecrementBookedSeats(ctx, "nope", 1), domain.ErrEventNotFound)
}

func TestEventRepository_UpdateKeepsCounter(t *testing.T) {
	events, _ := newRepos(t)
	ctx := context.Background()
	seed(t, events, "e1", time.Now(), 5, 3)

	require.NoError(t, events.Update(ctx, &domain.Event{ID: "e1", Title: "Renamed", Capacity: 8}))

	e, err := events.GetByID(ctx, "e1")
	require.NoError(t, err)
	assert.Equal(t, "Renamed", e.Title)
	assert.Equal(t, 3, e.BookedSeats)

	assert.ErrorIs(t, events.Update(ctx, &domain.Event{ID: "nope"}), domain.ErrEventNotFound)
}

func TestEventRepository_UpdateRejectsCapacityBelowBooked(t *testing.T) {
	events, _ := newRepos(t)
	ctx := context.Background()
	seed(t, events, "e1", time.Now(), 5, 3)

	err := events.Update(ctx, &domain.Event{ID: "e1", Title: "Smaller", Capacity: 2})

	assert.ErrorIs(t, err, domain.ErrInvalidRequest)
	e, err := events.GetByID(ctx, "e1")
	require.NoError(t, err)
	assert.Equal(t, 5, e.Capacity)
}

func TestEventRepository_DeleteWithBookedSeats(t *testing.T) {
	events, _ := newRepos(t)
	seed(t, events, "e1", time.Now(), 5, 1)

	assert.ErrorIs(t, events.Delete(context.Background(), "e1"), domain.ErrEventHasBookings)
}

func TestEventRepository_CreateDuplicate(t *testing.T) {
	events, _ := newRepos(t)
	seed(t, events, "e1", time.Now(), 5, 0)

	err := events.Create(context.Background(), &domain.Event{ID: "e1", Capacity: 1})

	assert.ErrorIs(t, err, domain.ErrInvalidRequest)
}

func TestEventRepository_List(t *testing.T) {
	events, _ := newRepos(t)
	day := time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC)
	seed(t, events, "b", day, 5, 0)
	seed(t, events, "a", day, 5, 0)
	seed(t, events, "c", day.AddDate(0, 0, -1), 5, 0)

	all, err := events.List(context.Background(), domain.EventFilter{Category: "tech"})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []string{"c", "a", "b"}, []string{all[0].ID, all[1].ID, all[2].ID})

	found, err := events.List(context.Background(), domain.EventFilter{Query: "EVENT A"})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "a", found[0].ID)

	none, err := events.List(context.Background(), domain.EventFilter{Mode: domain.EventModeOnline})
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestBookingRepository(t *testing.T) {
	events, bookings := newRepos(t)
	ctx := context.Background()
	seed(t, events, "e1", time.Now(), 10, 0)

	t0 := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)
	require.NoError(t, bookings.Insert(ctx, &domain.Booking{
		ID: "b1", EventID: "e1", UserID: "u1", SeatsBooked: 1, Status: domain.BookingStatusConfirmed, BookingTime: t0,
	}))
	require.NoError(t, bookings.Insert(ctx, &domain.Booking{
		ID: "b2", EventID: "e1", UserID: "u2", SeatsBooked: 2, Status: domain.BookingStatusPending, BookingTime: t0.Add(time.Hour),
	}))
	assert.ErrorIs(t, bookings.Insert(ctx, &domain.Booking{ID: "b3", EventID: "nope", UserID: "u1"}), domain.ErrEventNotFound)

	n, err := bookings.SumActiveSeats(ctx, "e1", "u1")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	active, err := bookings.FindActive(ctx, "e1", "u1")
	require.NoError(t, err)
	assert.Equal(t, "b1", active.ID)

	require.NoError(t, bookings.AddSeats(ctx, "b1", 1, t0.Add(2*time.Hour)))

	list, err := bookings.ListByUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 2, list[0].SeatsBooked)
	assert.Equal(t, "Event e1", list[0].EventTitle)

	byEvent, err := bookings.ListByEvent(ctx, "e1")
	require.NoError(t, err)
	require.Len(t, byEvent, 2)
	assert.Equal(t, "b2", byEvent[0].ID)

	seats, err := bookings.ActiveSeatsByEvent(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"e1": 4}, seats)

	changed, err := bookings.SetStatus(ctx, "b1", domain.BookingStatusCancelled)
	require.NoError(t, err)
	assert.True(t, changed)

	changed, err = bookings.SetStatus(ctx, "b1", domain.BookingStatusCancelled)
	require.NoError(t, err)
	assert.False(t, changed)

	_, err = bookings.FindActive(ctx, "e1", "u1")
	assert.ErrorIs(t, err, domain.ErrBookingNotFound)

	assert.ErrorIs(t, events.Delete(ctx, "e1"), domain.ErrEventHasBookings)
}
