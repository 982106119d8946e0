package mongo

import (
	"context"
	"testing"
	"time"

	"github.com/rawatanuj07/eventease/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestBookingRepository_SumActiveSeats(t *testing.T) {
	mt := newMockT(t)

	mt.Run("with bookings", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, bookingsNS, mtest.FirstBatch,
			bson.D{{Key: "_id", Value: nil}, {Key: "total", Value: 2}},
		))

		n, err := NewBookingRepo(mt.DB).SumActiveSeats(context.Background(), "evt-1", "user-1")

		require.NoError(mt, err)
		assert.Equal(mt, 2, n)
	})

	mt.Run("none", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, bookingsNS, mtest.FirstBatch))

		n, err := NewBookingRepo(mt.DB).SumActiveSeats(context.Background(), "evt-1", "user-1")

		require.NoError(mt, err)
		assert.Zero(mt, n)
	})
}

func TestBookingRepository_FindActive_None(t *testing.T) {
	mt := newMockT(t)

	mt.Run("no active booking", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, bookingsNS, mtest.FirstBatch))

		_, err := NewBookingRepo(mt.DB).FindActive(context.Background(), "evt-1", "user-1")

		assert.ErrorIs(mt, err, domain.ErrBookingNotFound)
	})
}

func TestBookingRepository_SetStatus(t *testing.T) {
	mt := newMockT(t)

	mt.Run("changed", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "nModified", Value: 1},
		))

		changed, err := NewBookingRepo(mt.DB).SetStatus(context.Background(), "bk-1", domain.BookingStatusCancelled)

		require.NoError(mt, err)
		assert.True(mt, changed)
	})

	mt.Run("already in status", func(mt *mtest.T) {
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}),
			mtest.CreateCursorResponse(0, bookingsNS, mtest.FirstBatch,
				bson.D{{Key: "_id", Value: 1}, {Key: "n", Value: 1}},
			),
		)

		changed, err := NewBookingRepo(mt.DB).SetStatus(context.Background(), "bk-1", domain.BookingStatusCancelled)

		require.NoError(mt, err)
		assert.False(mt, changed)
	})

	mt.Run("missing", func(mt *mtest.T) {
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}),
			mtest.CreateCursorResponse(0, bookingsNS, mtest.FirstBatch),
		)

		_, err := NewBookingRepo(mt.DB).SetStatus(context.Background(), "bk-1", domain.BookingStatusCancelled)

		assert.ErrorIs(mt, err, domain.ErrBookingNotFound)
	})
}

func TestBookingRepository_ListByUser(t *testing.T) {
	mt := newMockT(t)
	at := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)

	mt.Run("joins event", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, bookingsNS, mtest.FirstBatch, bson.D{
			{Key: "_id", Value: "bk-1"},
			{Key: "eventId", Value: "evt-1"},
			{Key: "userId", Value: "user-1"},
			{Key: "seatsBooked", Value: 2},
			{Key: "status", Value: "confirmed"},
			{Key: "bookingTime", Value: at},
			{Key: "event", Value: bson.D{
				{Key: "title", Value: "Go Meetup"},
				{Key: "time", Value: "18:30"},
				{Key: "location", Value: "Hall A"},
			}},
		}))

		list, err := NewBookingRepo(mt.DB).ListByUser(context.Background(), "user-1")

		require.NoError(mt, err)
		require.Len(mt, list, 1)
		assert.Equal(mt, "bk-1", list[0].ID)
		assert.Equal(mt, 2, list[0].SeatsBooked)
		assert.Equal(mt, domain.BookingStatusConfirmed, list[0].Status)
		assert.Equal(mt, "Go Meetup", list[0].EventTitle)
		assert.Equal(mt, "Hall A", list[0].EventLocation)
	})
}

func TestBookingRepository_ActiveSeatsByEvent(t *testing.T) {
	mt := newMockT(t)

	mt.Run("grouped", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, bookingsNS, mtest.FirstBatch,
			bson.D{{Key: "_id", Value: "evt-1"}, {Key: "total", Value: 4}},
			bson.D{{Key: "_id", Value: "evt-2"}, {Key: "total", Value: 1}},
		))

		res, err := NewBookingRepo(mt.DB).ActiveSeatsByEvent(context.Background())

		require.NoError(mt, err)
		assert.Equal(mt, map[string]int{"evt-1": 4, "evt-2": 1}, res)
	})
}

func TestBookingRepository_AddSeats_NotFound(t *testing.T) {
	mt := newMockT(t)

	mt.Run("missing", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}))

		err := NewBookingRepo(mt.DB).AddSeats(context.Background(), "bk-1", 1, time.Now())

		assert.ErrorIs(mt, err, domain.ErrBookingNotFound)
	})
}
