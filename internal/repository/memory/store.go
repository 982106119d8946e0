// Package memory keeps events and bookings in process memory. It backs the
// "memory" storage driver and the reservation tests.
package memory

import (
	"sync"

	"github.com/rawatanuj07/eventease/internal/domain"
)

// Store is shared by EventRepository and BookingRepository so that both
// see one consistent state under a single lock.
type Store struct {
	mu       sync.RWMutex
	events   map[string]domain.Event
	bookings map[string]domain.Booking
}

func NewStore() *Store {
	return &Store{
		events:   make(map[string]domain.Event),
		bookings: make(map[string]domain.Booking),
	}
}
