package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/rawatanuj07/eventease/internal/domain"
	"github.com/rawatanuj07/eventease/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestLogger(t *testing.T) *slog.Logger {
	t.Helper()
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func waitNotified(t *testing.T, done <-chan struct{}) {
	t.Helper()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("notification was not sent")
	}
}

type bookingDeps struct {
	bookingRepo *mocks.MockBookingRepo
	eventRepo   *mocks.MockEventRepo
	notifier    *mocks.MockBookingNotifier
}

func newBookingService(t *testing.T) (*BookingService, bookingDeps) {
	t.Helper()
	deps := bookingDeps{
		bookingRepo: mocks.NewMockBookingRepo(t),
		eventRepo:   mocks.NewMockEventRepo(t),
		notifier:    mocks.NewMockBookingNotifier(t),
	}
	svc := NewBookingService(deps.bookingRepo, deps.eventRepo, nil, deps.notifier, newTestLogger(t))
	return svc, deps
}

func TestBookingService_Create_NewBooking(t *testing.T) {
	svc, d := newBookingService(t)

	event := &domain.Event{ID: "e1", Title: "Concert", Capacity: 10, BookedSeats: 3}
	done := make(chan struct{})

	d.bookingRepo.EXPECT().SumActiveSeats(mock.Anything, "e1", "u1").Return(0, nil)
	d.eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	d.eventRepo.EXPECT().IncrementBookedSeats(mock.Anything, "e1", 2, 8).Return(nil)
	d.bookingRepo.EXPECT().FindActive(mock.Anything, "e1", "u1").Return(nil, domain.ErrBookingNotFound)
	d.bookingRepo.EXPECT().Insert(mock.Anything, mock.MatchedBy(func(b *domain.Booking) bool {
		return b.EventID == "e1" && b.UserID == "u1" && b.SeatsBooked == 2 &&
			b.Status == domain.BookingStatusConfirmed && b.ID != "" && !b.BookingTime.IsZero()
	})).Return(nil)
	d.notifier.EXPECT().NotifyBookingCreated(mock.Anything, mock.Anything, event).
		Run(func(context.Context, *domain.Booking, *domain.Event) { close(done) }).
		Return()

	total, err := svc.Create(context.Background(), "e1", "u1", 2)

	require.NoError(t, err)
	assert.Equal(t, 2, total)
	waitNotified(t, done)
}

func TestBookingService_Create_TotalIgnoresBookingCancelledMeanwhile(t *testing.T) {
	svc, d := newBookingService(t)

	event := &domain.Event{ID: "e1", Title: "Concert", Capacity: 10, BookedSeats: 3}
	done := make(chan struct{})

	d.bookingRepo.EXPECT().SumActiveSeats(mock.Anything, "e1", "u1").Return(1, nil)
	d.eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	d.eventRepo.EXPECT().IncrementBookedSeats(mock.Anything, "e1", 1, 9).Return(nil)
	// the earlier booking was cancelled between the sum and the lookup
	d.bookingRepo.EXPECT().FindActive(mock.Anything, "e1", "u1").Return(nil, domain.ErrBookingNotFound)
	d.bookingRepo.EXPECT().Insert(mock.Anything, mock.Anything).Return(nil)
	d.notifier.EXPECT().NotifyBookingCreated(mock.Anything, mock.Anything, event).
		Run(func(context.Context, *domain.Booking, *domain.Event) { close(done) }).
		Return()

	total, err := svc.Create(context.Background(), "e1", "u1", 1)

	require.NoError(t, err)
	assert.Equal(t, 1, total)
	waitNotified(t, done)
}

func TestBookingService_Create_AddsToExistingBooking(t *testing.T) {
	svc, d := newBookingService(t)

	event := &domain.Event{ID: "e1", Capacity: 10, BookedSeats: 1}
	existing := &domain.Booking{ID: "b1", EventID: "e1", UserID: "u1", SeatsBooked: 1, Status: domain.BookingStatusConfirmed}
	done := make(chan struct{})

	d.bookingRepo.EXPECT().SumActiveSeats(mock.Anything, "e1", "u1").Return(1, nil)
	d.eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	d.eventRepo.EXPECT().IncrementBookedSeats(mock.Anything, "e1", 1, 9).Return(nil)
	d.bookingRepo.EXPECT().FindActive(mock.Anything, "e1", "u1").Return(existing, nil)
	d.bookingRepo.EXPECT().AddSeats(mock.Anything, "b1", 1, mock.AnythingOfType("time.Time")).Return(nil)
	d.notifier.EXPECT().NotifyBookingCreated(mock.Anything, existing, event).
		Run(func(context.Context, *domain.Booking, *domain.Event) { close(done) }).
		Return()

	total, err := svc.Create(context.Background(), "e1", "u1", 1)

	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Equal(t, 2, existing.SeatsBooked)
	waitNotified(t, done)
}

func TestBookingService_Create_InvalidRequest(t *testing.T) {
	tests := []struct {
		name    string
		eventID string
		userID  string
		seats   int
	}{
		{"three seats", "e1", "u1", 3},
		{"zero seats", "e1", "u1", 0},
		{"negative seats", "e1", "u1", -1},
		{"missing event", "", "u1", 1},
		{"missing user", "e1", " ", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// no expectations: any storage call fails the test
			svc, _ := newBookingService(t)

			_, err := svc.Create(context.Background(), tt.eventID, tt.userID, tt.seats)

			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidRequest)
		})
	}
}

func TestBookingService_Create_PerUserLimitExceeded(t *testing.T) {
	svc, d := newBookingService(t)

	d.bookingRepo.EXPECT().SumActiveSeats(mock.Anything, "e1", "u1").Return(2, nil)

	_, err := svc.Create(context.Background(), "e1", "u1", 1)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrPerUserLimitExceeded)
}

func TestBookingService_Create_EventNotFound(t *testing.T) {
	svc, d := newBookingService(t)

	d.bookingRepo.EXPECT().SumActiveSeats(mock.Anything, "missing", "u1").Return(0, nil)
	d.eventRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrEventNotFound)

	_, err := svc.Create(context.Background(), "missing", "u1", 1)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestBookingService_Create_CapacityExceeded(t *testing.T) {
	svc, d := newBookingService(t)

	d.bookingRepo.EXPECT().SumActiveSeats(mock.Anything, "e1", "u1").Return(0, nil)
	d.eventRepo.EXPECT().GetByID(mock.Anything, "e1").
		Return(&domain.Event{ID: "e1", Capacity: 5, BookedSeats: 4}, nil)

	_, err := svc.Create(context.Background(), "e1", "u1", 2)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCapacityExceeded)
}

func TestBookingService_Create_ConcurrentUpdateConflict(t *testing.T) {
	svc, d := newBookingService(t)

	d.bookingRepo.EXPECT().SumActiveSeats(mock.Anything, "e1", "u1").Return(0, nil)
	d.eventRepo.EXPECT().GetByID(mock.Anything, "e1").
		Return(&domain.Event{ID: "e1", Capacity: 5, BookedSeats: 4}, nil)
	d.eventRepo.EXPECT().IncrementBookedSeats(mock.Anything, "e1", 1, 4).
		Return(domain.ErrConcurrentUpdateConflict)

	_, err := svc.Create(context.Background(), "e1", "u1", 1)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConcurrentUpdateConflict)
}

func TestBookingService_Create_StorageUnavailable(t *testing.T) {
	svc, d := newBookingService(t)

	storageErr := errors.Join(domain.ErrStorageUnavailable, errors.New("connection refused"))
	d.bookingRepo.EXPECT().SumActiveSeats(mock.Anything, "e1", "u1").Return(0, storageErr)

	_, err := svc.Create(context.Background(), "e1", "u1", 1)

	require.Error(t, err)
	assert.Equal(t, domain.KindStorageUnavailable, domain.KindOf(err))
}

func TestBookingService_Create_InsertFailsReleasesSeats(t *testing.T) {
	svc, d := newBookingService(t)

	insertErr := errors.New("insert failed")
	d.bookingRepo.EXPECT().SumActiveSeats(mock.Anything, "e1", "u1").Return(0, nil)
	d.eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(&domain.Event{ID: "e1", Capacity: 5}, nil)
	d.eventRepo.EXPECT().IncrementBookedSeats(mock.Anything, "e1", 1, 4).Return(nil)
	d.bookingRepo.EXPECT().FindActive(mock.Anything, "e1", "u1").Return(nil, domain.ErrBookingNotFound)
	d.bookingRepo.EXPECT().Insert(mock.Anything, mock.Anything).Return(insertErr)
	d.eventRepo.EXPECT().DecrementBookedSeats(mock.Anything, "e1", 1).Return(nil)

	_, err := svc.Create(context.Background(), "e1", "u1", 1)

	require.Error(t, err)
	assert.ErrorIs(t, err, insertErr)
}

func TestBookingService_Create_LockHeld(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	notifier := mocks.NewMockBookingNotifier(t)
	locker := mocks.NewMockLocker(t)
	svc := NewBookingService(bookingRepo, eventRepo, locker, notifier, newTestLogger(t))

	locker.EXPECT().Lock(mock.Anything, "booking:e1:u1").Return(nil, domain.ErrConcurrentUpdateConflict)

	_, err := svc.Create(context.Background(), "e1", "u1", 1)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConcurrentUpdateConflict)
}

func TestBookingService_Create_ReleasesLock(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	notifier := mocks.NewMockBookingNotifier(t)
	locker := mocks.NewMockLocker(t)
	svc := NewBookingService(bookingRepo, eventRepo, locker, notifier, newTestLogger(t))

	unlocked := false
	locker.EXPECT().Lock(mock.Anything, "booking:e1:u1").Return(func() { unlocked = true }, nil)
	bookingRepo.EXPECT().SumActiveSeats(mock.Anything, "e1", "u1").Return(2, nil)

	_, err := svc.Create(context.Background(), "e1", "u1", 1)

	assert.ErrorIs(t, err, domain.ErrPerUserLimitExceeded)
	assert.True(t, unlocked)
}

func TestBookingService_Cancel_Success(t *testing.T) {
	svc, d := newBookingService(t)

	booking := &domain.Booking{ID: "b1", EventID: "e1", UserID: "u1", SeatsBooked: 2, Status: domain.BookingStatusConfirmed}
	event := &domain.Event{ID: "e1", Capacity: 10}
	done := make(chan struct{})

	d.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)
	d.bookingRepo.EXPECT().SetStatus(mock.Anything, "b1", domain.BookingStatusCancelled).Return(true, nil)
	d.eventRepo.EXPECT().DecrementBookedSeats(mock.Anything, "e1", 2).Return(nil)
	d.eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	d.notifier.EXPECT().NotifyBookingCancelled(mock.Anything, booking, event).
		Run(func(context.Context, *domain.Booking, *domain.Event) { close(done) }).
		Return()

	err := svc.Cancel(context.Background(), "b1")

	require.NoError(t, err)
	waitNotified(t, done)
	assert.Equal(t, domain.BookingStatusCancelled, booking.Status)
}

func TestBookingService_Cancel_AlreadyCancelled(t *testing.T) {
	svc, d := newBookingService(t)

	d.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").
		Return(&domain.Booking{ID: "b1", EventID: "e1", SeatsBooked: 2, Status: domain.BookingStatusCancelled}, nil)

	err := svc.Cancel(context.Background(), "b1")

	assert.ErrorIs(t, err, domain.ErrAlreadyCancelled)
}

func TestBookingService_Cancel_LostRace(t *testing.T) {
	svc, d := newBookingService(t)

	d.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").
		Return(&domain.Booking{ID: "b1", EventID: "e1", SeatsBooked: 1, Status: domain.BookingStatusConfirmed}, nil)
	d.bookingRepo.EXPECT().SetStatus(mock.Anything, "b1", domain.BookingStatusCancelled).Return(false, nil)

	err := svc.Cancel(context.Background(), "b1")

	assert.ErrorIs(t, err, domain.ErrAlreadyCancelled)
}

func TestBookingService_Cancel_NotFound(t *testing.T) {
	svc, d := newBookingService(t)

	d.bookingRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrBookingNotFound)

	err := svc.Cancel(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}

func TestBookingService_Cancel_EmptyID(t *testing.T) {
	svc, _ := newBookingService(t)

	err := svc.Cancel(context.Background(), "")

	assert.ErrorIs(t, err, domain.ErrInvalidRequest)
}

func TestBookingService_Cancel_DecrementFails(t *testing.T) {
	svc, d := newBookingService(t)

	decErr := errors.New("timeout")
	d.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").
		Return(&domain.Booking{ID: "b1", EventID: "e1", SeatsBooked: 1, Status: domain.BookingStatusPending}, nil)
	d.bookingRepo.EXPECT().SetStatus(mock.Anything, "b1", domain.BookingStatusCancelled).Return(true, nil)
	d.eventRepo.EXPECT().DecrementBookedSeats(mock.Anything, "e1", 1).Return(decErr)

	err := svc.Cancel(context.Background(), "b1")

	require.Error(t, err)
	assert.ErrorIs(t, err, decErr)
}

func TestBookingService_ListByUser(t *testing.T) {
	svc, d := newBookingService(t)

	details := []*domain.BookingDetails{
		{Booking: domain.Booking{ID: "b2", UserID: "u1"}, EventTitle: "Jazz Night"},
		{Booking: domain.Booking{ID: "b1", UserID: "u1"}, EventTitle: "Go Meetup"},
	}
	d.bookingRepo.EXPECT().ListByUser(mock.Anything, "u1").Return(details, nil)

	res, err := svc.ListByUser(context.Background(), "u1")

	require.NoError(t, err)
	assert.Len(t, res, 2)
	assert.Equal(t, "Jazz Night", res[0].EventTitle)
}

func TestBookingService_ListByUser_EmptyID(t *testing.T) {
	svc, _ := newBookingService(t)

	_, err := svc.ListByUser(context.Background(), "")

	assert.ErrorIs(t, err, domain.ErrInvalidRequest)
}

func TestBookingService_Get(t *testing.T) {
	svc, d := newBookingService(t)

	d.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(&domain.Booking{ID: "b1", UserID: "u1"}, nil)

	b, err := svc.Get(context.Background(), "b1")

	require.NoError(t, err)
	assert.Equal(t, "u1", b.UserID)
}
