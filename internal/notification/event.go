package notification

import (
	"time"

	"github.com/rawatanuj07/eventease/internal/domain"
)

const (
	TypeBookingCreated   = "booking.created"
	TypeBookingCancelled = "booking.cancelled"

	envelopeVersion = 1
)

type Envelope struct {
	Type       string         `json:"type"`
	Version    int            `json:"version"`
	OccurredAt time.Time      `json:"occurredAt"`
	Payload    BookingPayload `json:"payload"`
}

type BookingPayload struct {
	BookingID   string    `json:"bookingId"`
	EventID     string    `json:"eventId"`
	EventTitle  string    `json:"eventTitle"`
	EventDate   time.Time `json:"eventDate"`
	UserID      string    `json:"userId"`
	SeatsBooked int       `json:"seatsBooked"`
	Status      string    `json:"status"`
	BookedSeats int       `json:"eventBookedSeats"`
	Capacity    int       `json:"eventCapacity"`
}

func newEnvelope(typ string, b *domain.Booking, e *domain.Event) Envelope {
	p := BookingPayload{
		BookingID:   b.ID,
		EventID:     b.EventID,
		UserID:      b.UserID,
		SeatsBooked: b.SeatsBooked,
		Status:      string(b.Status),
	}
	if e != nil {
		p.EventTitle = e.Title
		p.EventDate = e.Date
		p.BookedSeats = e.BookedSeats
		p.Capacity = e.Capacity
	}

	return Envelope{
		Type:       typ,
		Version:    envelopeVersion,
		OccurredAt: time.Now().UTC(),
		Payload:    p,
	}
}
