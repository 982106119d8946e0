package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rawatanuj07/eventease/internal/domain"
	"github.com/rawatanuj07/eventease/internal/service/ports"
)

type EventService struct {
	repo        ports.EventRepo
	bookingRepo ports.BookingRepo
}

func NewEventService(repo ports.EventRepo, bookingRepo ports.BookingRepo) *EventService {
	return &EventService{
		repo:        repo,
		bookingRepo: bookingRepo,
	}
}

func (s *EventService) Create(ctx context.Context, input domain.EventInput) (*domain.Event, error) {
	if err := validateEventInput(&input); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	event := &domain.Event{
		ID:        uuid.New().String(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	applyEventInput(event, input)

	if err := s.repo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	return event, nil
}

// Update rewrites the editable fields. The booked seat counter is left untouched.
func (s *EventService) Update(ctx context.Context, id string, input domain.EventInput) (*domain.Event, error) {
	if err := validateEventInput(&input); err != nil {
		return nil, err
	}

	event, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}
	if input.Capacity < event.BookedSeats {
		return nil, fmt.Errorf("%w: capacity cannot be lower than the %d seats already booked",
			domain.ErrInvalidRequest, event.BookedSeats)
	}

	applyEventInput(event, input)
	event.UpdatedAt = time.Now().UTC()

	if err = s.repo.Update(ctx, event); err != nil {
		return nil, fmt.Errorf("update event: %w", err)
	}

	return event, nil
}

func (s *EventService) Delete(ctx context.Context, id string) error {
	event, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get event: %w", err)
	}
	if event.BookedSeats > 0 {
		return domain.ErrEventHasBookings
	}

	// cancelled bookings still reference the event
	bookings, err := s.bookingRepo.ListByEvent(ctx, id)
	if err != nil {
		return fmt.Errorf("list bookings: %w", err)
	}
	if len(bookings) > 0 {
		return domain.ErrEventHasBookings
	}

	if err = s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete event: %w", err)
	}

	return nil
}

func (s *EventService) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *EventService) List(ctx context.Context, filter domain.EventFilter) ([]*domain.Event, error) {
	return s.repo.List(ctx, filter)
}

// Attendees returns every booking of the event, cancelled ones included.
func (s *EventService) Attendees(ctx context.Context, eventID string) ([]*domain.Booking, error) {
	if _, err := s.repo.GetByID(ctx, eventID); err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	bookings, err := s.bookingRepo.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	return bookings, nil
}

func validateEventInput(input *domain.EventInput) error {
	input.Title = strings.TrimSpace(input.Title)
	if input.Title == "" {
		return fmt.Errorf("%w: title is required", domain.ErrInvalidRequest)
	}
	if input.Capacity <= 0 {
		return fmt.Errorf("%w: capacity must be positive", domain.ErrInvalidRequest)
	}
	if input.Date.IsZero() {
		return fmt.Errorf("%w: date is required", domain.ErrInvalidRequest)
	}

	switch input.Mode {
	case "":
		input.Mode = domain.EventModeInPerson
	case domain.EventModeOnline, domain.EventModeInPerson:
	default:
		return fmt.Errorf("%w: unknown mode %q", domain.ErrInvalidRequest, input.Mode)
	}

	switch input.Status {
	case "":
		input.Status = domain.EventStatusUpcoming
	case domain.EventStatusUpcoming, domain.EventStatusOngoing, domain.EventStatusCompleted:
	default:
		return fmt.Errorf("%w: unknown status %q", domain.ErrInvalidRequest, input.Status)
	}

	return nil
}

func applyEventInput(e *domain.Event, input domain.EventInput) {
	e.Title = input.Title
	e.Description = input.Description
	e.Category = input.Category
	e.Date = input.Date
	e.Time = input.Time
	e.Mode = input.Mode
	e.Location = input.Location
	e.Image = input.Image
	e.Capacity = input.Capacity
	e.Status = input.Status
}
