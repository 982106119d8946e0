package dto

import (
	"fmt"
	"time"

	"github.com/rawatanuj07/eventease/internal/domain"
)

const dateLayout = "2006-01-02"

type CreateBookingRequest struct {
	EventID     string `json:"eventId" binding:"required"`
	UserID      string `json:"userId"`
	SeatsBooked *int   `json:"seatsBooked"`
}

// Seats returns the requested seat count, one when omitted.
func (r CreateBookingRequest) Seats() int {
	if r.SeatsBooked == nil {
		return domain.MinSeatsPerRequest
	}
	return *r.SeatsBooked
}

type EventRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Date        string `json:"date" binding:"required"`
	Time        string `json:"time"`
	Mode        string `json:"mode"`
	Location    string `json:"location"`
	Image       string `json:"image"`
	Capacity    int    `json:"capacity" binding:"required,gt=0"`
	Status      string `json:"status"`
}

func (r EventRequest) ToInput() (domain.EventInput, error) {
	date, err := parseDate(r.Date)
	if err != nil {
		return domain.EventInput{}, err
	}

	return domain.EventInput{
		Title:       r.Title,
		Description: r.Description,
		Category:    r.Category,
		Date:        date,
		Time:        r.Time,
		Mode:        domain.EventMode(r.Mode),
		Location:    r.Location,
		Image:       r.Image,
		Capacity:    r.Capacity,
		Status:      domain.EventStatus(r.Status),
	}, nil
}

// parseDate accepts a calendar date or an RFC3339 timestamp.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(dateLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid date %q, expected YYYY-MM-DD or RFC3339",
			domain.ErrInvalidRequest, s)
	}
	return t.UTC(), nil
}
