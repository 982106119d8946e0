package dto

import (
	"time"

	"github.com/rawatanuj07/eventease/internal/domain"
)

type ErrorResponse struct {
	Error string      `json:"error"`
	Kind  domain.Kind `json:"kind"`
}

type CreateBookingResponse struct {
	Success     bool `json:"success"`
	BookedSeats int  `json:"bookedSeats"`
}

type CancelBookingResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type EventResponse struct {
	ID             string `json:"id"`
	Title          string `json:"title"`
	Description    string `json:"description"`
	Category       string `json:"category"`
	Date           string `json:"date"`
	Time           string `json:"time"`
	Mode           string `json:"mode"`
	Location       string `json:"location"`
	Image          string `json:"image"`
	Capacity       int    `json:"capacity"`
	BookedSeats    int    `json:"bookedSeats"`
	AvailableSeats int    `json:"availableSeats"`
	Status         string `json:"status"`
	CreatedAt      string `json:"createdAt"`
	UpdatedAt      string `json:"updatedAt"`
}

type EventListResponse struct {
	Events []EventResponse `json:"events"`
}

type BookingResponse struct {
	ID          string `json:"id"`
	EventID     string `json:"eventId"`
	UserID      string `json:"userId"`
	SeatsBooked int    `json:"seatsBooked"`
	Status      string `json:"status"`
	BookingTime string `json:"bookingTime"`
}

type BookingDetailsResponse struct {
	BookingResponse
	Event BookingEventResponse `json:"event"`
}

type BookingEventResponse struct {
	Title    string `json:"title"`
	Date     string `json:"date"`
	Time     string `json:"time"`
	Location string `json:"location"`
}

type BookingListResponse struct {
	Bookings []BookingDetailsResponse `json:"bookings"`
}

type AttendeesResponse struct {
	EventID   string            `json:"eventId"`
	Attendees []BookingResponse `json:"attendees"`
}

type SeatDriftResponse struct {
	EventID     string `json:"eventId"`
	Capacity    int    `json:"capacity"`
	BookedSeats int    `json:"bookedSeats"`
	ActiveSeats int    `json:"activeSeats"`
}

type ReconcileResponse struct {
	Repaired []SeatDriftResponse `json:"repaired"`
}

func ToEventResponse(e *domain.Event) EventResponse {
	return EventResponse{
		ID:             e.ID,
		Title:          e.Title,
		Description:    e.Description,
		Category:       e.Category,
		Date:           e.Date.Format(dateLayout),
		Time:           e.Time,
		Mode:           string(e.Mode),
		Location:       e.Location,
		Image:          e.Image,
		Capacity:       e.Capacity,
		BookedSeats:    e.BookedSeats,
		AvailableSeats: e.AvailableSeats(),
		Status:         string(e.Status),
		CreatedAt:      e.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      e.UpdatedAt.Format(time.RFC3339),
	}
}

func ToEventListResponse(events []*domain.Event) EventListResponse {
	resp := EventListResponse{Events: make([]EventResponse, 0, len(events))}
	for _, e := range events {
		resp.Events = append(resp.Events, ToEventResponse(e))
	}
	return resp
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:          b.ID,
		EventID:     b.EventID,
		UserID:      b.UserID,
		SeatsBooked: b.SeatsBooked,
		Status:      string(b.Status),
		BookingTime: b.BookingTime.Format(time.RFC3339),
	}
}

func ToBookingListResponse(list []*domain.BookingDetails) BookingListResponse {
	resp := BookingListResponse{Bookings: make([]BookingDetailsResponse, 0, len(list))}
	for _, d := range list {
		resp.Bookings = append(resp.Bookings, BookingDetailsResponse{
			BookingResponse: ToBookingResponse(&d.Booking),
			Event: BookingEventResponse{
				Title:    d.EventTitle,
				Date:     d.EventDate.Format(dateLayout),
				Time:     d.EventTime,
				Location: d.EventLocation,
			},
		})
	}
	return resp
}

func ToAttendeesResponse(eventID string, bookings []*domain.Booking) AttendeesResponse {
	resp := AttendeesResponse{EventID: eventID, Attendees: make([]BookingResponse, 0, len(bookings))}
	for _, b := range bookings {
		resp.Attendees = append(resp.Attendees, ToBookingResponse(b))
	}
	return resp
}

func ToReconcileResponse(drifts []domain.SeatDrift) ReconcileResponse {
	resp := ReconcileResponse{Repaired: make([]SeatDriftResponse, 0, len(drifts))}
	for _, d := range drifts {
		resp.Repaired = append(resp.Repaired, SeatDriftResponse{
			EventID:     d.EventID,
			Capacity:    d.Capacity,
			BookedSeats: d.BookedSeats,
			ActiveSeats: d.ActiveSeats,
		})
	}
	return resp
}
