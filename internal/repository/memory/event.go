package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/rawatanuj07/eventease/internal/domain"
)

type EventRepository struct {
	store *Store
}

func NewEventRepo(store *Store) *EventRepository {
	return &EventRepository{store: store}
}

func (r *EventRepository) Create(_ context.Context, e *domain.Event) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.events[e.ID]; ok {
		return fmt.Errorf("%w: event %s already exists", domain.ErrInvalidRequest, e.ID)
	}
	r.store.events[e.ID] = *e
	return nil
}

func (r *EventRepository) Update(_ context.Context, e *domain.Event) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	cur, ok := r.store.events[e.ID]
	if !ok {
		return domain.ErrEventNotFound
	}
	if cur.BookedSeats > e.Capacity {
		return fmt.Errorf("%w: capacity cannot drop below booked seats", domain.ErrInvalidRequest)
	}

	updated := *e
	updated.BookedSeats = cur.BookedSeats
	updated.CreatedAt = cur.CreatedAt
	r.store.events[e.ID] = updated
	return nil
}

func (r *EventRepository) Delete(_ context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	cur, ok := r.store.events[id]
	if !ok {
		return domain.ErrEventNotFound
	}
	if cur.BookedSeats > 0 {
		return domain.ErrEventHasBookings
	}
	// bookings keep referencing their event
	for _, b := range r.store.bookings {
		if b.EventID == id {
			return domain.ErrEventHasBookings
		}
	}
	delete(r.store.events, id)
	return nil
}

func (r *EventRepository) GetByID(_ context.Context, id string) (*domain.Event, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	e, ok := r.store.events[id]
	if !ok {
		return nil, domain.ErrEventNotFound
	}
	return &e, nil
}

func (r *EventRepository) List(_ context.Context, filter domain.EventFilter) ([]*domain.Event, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	query := strings.ToLower(filter.Query)
	res := make([]*domain.Event, 0, len(r.store.events))
	for _, e := range r.store.events {
		if filter.Category != "" && !strings.EqualFold(e.Category, filter.Category) {
			continue
		}
		if filter.Status != "" && e.Status != filter.Status {
			continue
		}
		if filter.Mode != "" && e.Mode != filter.Mode {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(e.Title+" "+e.Description+" "+e.Location), query) {
			continue
		}
		res = append(res, &e)
	}

	sort.Slice(res, func(i, j int) bool {
		if !res[i].Date.Equal(res[j].Date) {
			return res[i].Date.Before(res[j].Date)
		}
		return res[i].ID < res[j].ID
	})

	return res, nil
}

func (r *EventRepository) IncrementBookedSeats(_ context.Context, id string, delta, expectedMax int) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	e, ok := r.store.events[id]
	if !ok || e.BookedSeats > expectedMax {
		return domain.ErrConcurrentUpdateConflict
	}

	e.BookedSeats += delta
	r.store.events[id] = e
	return nil
}

func (r *EventRepository) DecrementBookedSeats(_ context.Context, id string, delta int) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	e, ok := r.store.events[id]
	if !ok {
		return domain.ErrEventNotFound
	}

	e.BookedSeats = max(e.BookedSeats-delta, 0)
	r.store.events[id] = e
	return nil
}

func (r *EventRepository) SetBookedSeats(_ context.Context, id string, from, to int) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	e, ok := r.store.events[id]
	if !ok || e.BookedSeats != from {
		return domain.ErrConcurrentUpdateConflict
	}

	e.BookedSeats = to
	r.store.events[id] = e
	return nil
}
