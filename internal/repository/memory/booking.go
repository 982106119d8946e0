package memory

import (
	"context"
	"sort"
	"time"

	"github.com/rawatanuj07/eventease/internal/domain"
)

type BookingRepository struct {
	store *Store
}

func NewBookingRepo(store *Store) *BookingRepository {
	return &BookingRepository{store: store}
}

func (r *BookingRepository) SumActiveSeats(_ context.Context, eventID, userID string) (int, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var sum int
	for _, b := range r.store.bookings {
		if b.EventID == eventID && b.UserID == userID && b.Status.IsActive() {
			sum += b.SeatsBooked
		}
	}
	return sum, nil
}

// FindActive returns the most recent active booking of the pair.
func (r *BookingRepository) FindActive(_ context.Context, eventID, userID string) (*domain.Booking, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var found *domain.Booking
	for _, b := range r.store.bookings {
		if b.EventID != eventID || b.UserID != userID || !b.Status.IsActive() {
			continue
		}
		if found == nil || b.BookingTime.After(found.BookingTime) {
			found = &b
		}
	}
	if found == nil {
		return nil, domain.ErrBookingNotFound
	}
	return found, nil
}

func (r *BookingRepository) Insert(_ context.Context, b *domain.Booking) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.events[b.EventID]; !ok {
		return domain.ErrEventNotFound
	}
	r.store.bookings[b.ID] = *b
	return nil
}

func (r *BookingRepository) AddSeats(_ context.Context, id string, delta int, at time.Time) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	b, ok := r.store.bookings[id]
	if !ok {
		return domain.ErrBookingNotFound
	}

	b.SeatsBooked += delta
	b.BookingTime = at
	r.store.bookings[id] = b
	return nil
}

func (r *BookingRepository) GetByID(_ context.Context, id string) (*domain.Booking, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	b, ok := r.store.bookings[id]
	if !ok {
		return nil, domain.ErrBookingNotFound
	}
	return &b, nil
}

func (r *BookingRepository) SetStatus(_ context.Context, id string, status domain.BookingStatus) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	b, ok := r.store.bookings[id]
	if !ok {
		return false, domain.ErrBookingNotFound
	}
	if b.Status == status {
		return false, nil
	}

	b.Status = status
	r.store.bookings[id] = b
	return true, nil
}

func (r *BookingRepository) ListByUser(_ context.Context, userID string) ([]*domain.BookingDetails, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var res []*domain.BookingDetails
	for _, b := range r.store.bookings {
		if b.UserID != userID {
			continue
		}
		e, ok := r.store.events[b.EventID]
		if !ok {
			continue
		}
		res = append(res, &domain.BookingDetails{
			Booking:       b,
			EventTitle:    e.Title,
			EventDate:     e.Date,
			EventTime:     e.Time,
			EventLocation: e.Location,
		})
	}

	sort.Slice(res, func(i, j int) bool {
		return res[i].BookingTime.After(res[j].BookingTime)
	})

	return res, nil
}

func (r *BookingRepository) ListByEvent(_ context.Context, eventID string) ([]*domain.Booking, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var res []*domain.Booking
	for _, b := range r.store.bookings {
		if b.EventID == eventID {
			res = append(res, &b)
		}
	}

	sort.Slice(res, func(i, j int) bool {
		return res[i].BookingTime.Before(res[j].BookingTime)
	})

	return res, nil
}

func (r *BookingRepository) ActiveSeatsByEvent(_ context.Context) (map[string]int, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	res := make(map[string]int)
	for _, b := range r.store.bookings {
		if b.Status.IsActive() {
			res[b.EventID] += b.SeatsBooked
		}
	}
	return res, nil
}
