package domain

import "time"

type EventStatus string

const (
	EventStatusUpcoming  EventStatus = "upcoming"
	EventStatusOngoing   EventStatus = "ongoing"
	EventStatusCompleted EventStatus = "completed"
)

type EventMode string

const (
	EventModeOnline   EventMode = "online"
	EventModeInPerson EventMode = "in-person"
)

type Event struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Category    string      `json:"category"`
	Date        time.Time   `json:"date"`
	Time        string      `json:"time"`
	Mode        EventMode   `json:"mode"`
	Location    string      `json:"location"`
	Image       string      `json:"image"`
	Capacity    int         `json:"capacity"`
	BookedSeats int         `json:"booked_seats"`
	Status      EventStatus `json:"status"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

func (e *Event) AvailableSeats() int {
	if e.BookedSeats >= e.Capacity {
		return 0
	}
	return e.Capacity - e.BookedSeats
}

type EventFilter struct {
	Category string
	Status   EventStatus
	Mode     EventMode
	Query    string
}

// EventInput carries the editable fields of an event. BookedSeats is not part
// of it: the counter is owned by the reservation flow.
type EventInput struct {
	Title       string
	Description string
	Category    string
	Date        time.Time
	Time        string
	Mode        EventMode
	Location    string
	Image       string
	Capacity    int
	Status      EventStatus
}

// SeatDrift is a mismatch between an event counter and the seats held by its active bookings.
type SeatDrift struct {
	EventID     string `json:"event_id"`
	Capacity    int    `json:"capacity"`
	BookedSeats int    `json:"booked_seats"`
	ActiveSeats int    `json:"active_seats"`
}
