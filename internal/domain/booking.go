package domain

import "time"

type BookingStatus string

const (
	BookingStatusPending     BookingStatus = "pending"
	BookingStatusConfirmed   BookingStatus = "confirmed"
	BookingStatusRescheduled BookingStatus = "rescheduled"
	BookingStatusCancelled   BookingStatus = "cancelled"
)

// ActiveStatuses are the statuses whose seats count toward both the event
// counter and the per-user seat cap.
var ActiveStatuses = []BookingStatus{
	BookingStatusConfirmed,
	BookingStatusPending,
	BookingStatusRescheduled,
}

const (
	MinSeatsPerRequest = 1
	MaxSeatsPerUser    = 2
)

func (s BookingStatus) IsActive() bool {
	for _, a := range ActiveStatuses {
		if s == a {
			return true
		}
	}
	return false
}

// ActiveStatusValues returns ActiveStatuses as plain strings for store queries.
func ActiveStatusValues() []string {
	res := make([]string, 0, len(ActiveStatuses))
	for _, s := range ActiveStatuses {
		res = append(res, string(s))
	}
	return res
}

type Booking struct {
	ID          string        `json:"id"`
	EventID     string        `json:"event_id"`
	UserID      string        `json:"user_id"`
	SeatsBooked int           `json:"seats_booked"`
	Status      BookingStatus `json:"status"`
	BookingTime time.Time     `json:"booking_time"`
}

// BookingDetails is a booking joined with the event fields shown in a user's booking list.
type BookingDetails struct {
	Booking
	EventTitle    string    `json:"event_title"`
	EventDate     time.Time `json:"event_date"`
	EventTime     string    `json:"event_time"`
	EventLocation string    `json:"event_location"`
}
