package scheduler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/rawatanuj07/eventease/internal/domain"
	"github.com/rawatanuj07/eventease/internal/scheduler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestLogger(t *testing.T) *slog.Logger {
	t.Helper()
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestScheduler_Pass_RepairsOnlyStableDrift(t *testing.T) {
	repairer := mocks.NewMockDriftRepairer(t)
	s := New(repairer, time.Minute, 0, newTestLogger(t))
	ctx := context.Background()

	stable := domain.SeatDrift{EventID: "e1", Capacity: 10, BookedSeats: 4, ActiveSeats: 3}
	moving := domain.SeatDrift{EventID: "e2", Capacity: 10, BookedSeats: 2, ActiveSeats: 1}
	moved := domain.SeatDrift{EventID: "e2", Capacity: 10, BookedSeats: 3, ActiveSeats: 2}

	repairer.EXPECT().FindDrift(mock.Anything).Return([]domain.SeatDrift{stable, moving}, nil).Once()
	repaired, err := s.pass(ctx)
	require.NoError(t, err)
	assert.Empty(t, repaired)

	repairer.EXPECT().FindDrift(mock.Anything).Return([]domain.SeatDrift{stable, moved}, nil).Once()
	repairer.EXPECT().RepairDrift(mock.Anything, stable).Return(nil).Once()
	repaired, err = s.pass(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.SeatDrift{stable}, repaired)
}

func TestScheduler_Pass_DoesNotRetryDriftThatSurvivesRepair(t *testing.T) {
	repairer := mocks.NewMockDriftRepairer(t)
	s := New(repairer, time.Minute, 0, newTestLogger(t))
	ctx := context.Background()

	overbooked := domain.SeatDrift{EventID: "e1", Capacity: 4, BookedSeats: 4, ActiveSeats: 6}

	repairer.EXPECT().FindDrift(mock.Anything).Return([]domain.SeatDrift{overbooked}, nil).Times(4)
	repairer.EXPECT().RepairDrift(mock.Anything, overbooked).Return(nil).Once()

	var total []domain.SeatDrift
	for i := 0; i < 4; i++ {
		repaired, err := s.pass(ctx)
		require.NoError(t, err)
		total = append(total, repaired...)
	}
	assert.Equal(t, []domain.SeatDrift{overbooked}, total)
}

func TestScheduler_Pass_TransientDriftIsForgotten(t *testing.T) {
	repairer := mocks.NewMockDriftRepairer(t)
	s := New(repairer, time.Minute, 0, newTestLogger(t))
	ctx := context.Background()

	d := domain.SeatDrift{EventID: "e1", Capacity: 10, BookedSeats: 4, ActiveSeats: 3}

	repairer.EXPECT().FindDrift(mock.Anything).Return([]domain.SeatDrift{d}, nil).Once()
	_, err := s.pass(ctx)
	require.NoError(t, err)

	repairer.EXPECT().FindDrift(mock.Anything).Return(nil, nil).Once()
	_, err = s.pass(ctx)
	require.NoError(t, err)

	// seen again after a clean pass: not yet stable
	repairer.EXPECT().FindDrift(mock.Anything).Return([]domain.SeatDrift{d}, nil).Once()
	repaired, err := s.pass(ctx)
	require.NoError(t, err)
	assert.Empty(t, repaired)
}

func TestScheduler_Pass_RepairConflictIsNotFatal(t *testing.T) {
	repairer := mocks.NewMockDriftRepairer(t)
	s := New(repairer, time.Minute, 0, newTestLogger(t))
	ctx := context.Background()

	a := domain.SeatDrift{EventID: "e1", Capacity: 10, BookedSeats: 4, ActiveSeats: 3}
	b := domain.SeatDrift{EventID: "e2", Capacity: 10, BookedSeats: 1, ActiveSeats: 0}

	repairer.EXPECT().FindDrift(mock.Anything).Return([]domain.SeatDrift{a, b}, nil).Twice()
	repairer.EXPECT().RepairDrift(mock.Anything, a).Return(domain.ErrConcurrentUpdateConflict).Once()
	repairer.EXPECT().RepairDrift(mock.Anything, b).Return(errors.New("db down")).Once()

	_, err := s.pass(ctx)
	require.NoError(t, err)

	repaired, err := s.pass(ctx)
	require.NoError(t, err)
	assert.Empty(t, repaired)
}

func TestScheduler_Pass_FindError(t *testing.T) {
	repairer := mocks.NewMockDriftRepairer(t)
	s := New(repairer, time.Minute, 0, newTestLogger(t))

	repairer.EXPECT().FindDrift(mock.Anything).Return(nil, domain.ErrStorageUnavailable).Once()

	_, err := s.pass(context.Background())

	assert.ErrorIs(t, err, domain.ErrStorageUnavailable)
}

func TestScheduler_Reconcile(t *testing.T) {
	repairer := mocks.NewMockDriftRepairer(t)
	s := New(repairer, time.Minute, 10*time.Millisecond, newTestLogger(t))

	d := domain.SeatDrift{EventID: "e1", Capacity: 10, BookedSeats: 5, ActiveSeats: 1}
	repairer.EXPECT().FindDrift(mock.Anything).Return([]domain.SeatDrift{d}, nil).Twice()
	repairer.EXPECT().RepairDrift(mock.Anything, d).Return(nil).Once()

	repaired, err := s.Reconcile(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []domain.SeatDrift{d}, repaired)
}

func TestScheduler_Start_Ticks(t *testing.T) {
	repairer := mocks.NewMockDriftRepairer(t)
	s := New(repairer, 20*time.Millisecond, 0, newTestLogger(t))

	repairer.EXPECT().FindDrift(mock.Anything).Return(nil, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 70*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(repairer.Calls), 1)
}

func TestScheduler_StopsOnContextCancel(t *testing.T) {
	repairer := mocks.NewMockDriftRepairer(t)
	s := New(repairer, time.Hour, 0, newTestLogger(t))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop")
	}
}
