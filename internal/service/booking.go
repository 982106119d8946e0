package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rawatanuj07/eventease/internal/domain"
	"github.com/rawatanuj07/eventease/internal/service/ports"
)

type BookingService struct {
	bookingRepo ports.BookingRepo
	eventRepo   ports.EventRepo
	locker      ports.Locker
	notifier    ports.BookingNotifier
	logger      *slog.Logger
}

// NewBookingService wires the reservation flow. locker may be nil, in which
// case requests from the same user are not serialised.
func NewBookingService(
	bookingRepo ports.BookingRepo,
	eventRepo ports.EventRepo,
	locker ports.Locker,
	notifier ports.BookingNotifier,
	logger *slog.Logger,
) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		eventRepo:   eventRepo,
		locker:      locker,
		notifier:    notifier,
		logger:      logger,
	}
}

// Create reserves seats for userID and returns the user's new total for the event.
func (s *BookingService) Create(ctx context.Context, eventID, userID string, seats int) (int, error) {
	if err := validateBookingRequest(eventID, userID, seats); err != nil {
		return 0, err
	}

	if s.locker != nil {
		unlock, err := s.locker.Lock(ctx, bookingLockKey(eventID, userID))
		if err != nil {
			return 0, fmt.Errorf("lock booking: %w", err)
		}
		defer unlock()
	}

	already, err := s.bookingRepo.SumActiveSeats(ctx, eventID, userID)
	if err != nil {
		return 0, fmt.Errorf("sum active seats: %w", err)
	}
	if already+seats > domain.MaxSeatsPerUser {
		return 0, domain.ErrPerUserLimitExceeded
	}

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return 0, fmt.Errorf("get event: %w", err)
	}
	if event.BookedSeats+seats > event.Capacity {
		return 0, domain.ErrCapacityExceeded
	}

	if err = s.eventRepo.IncrementBookedSeats(ctx, eventID, seats, event.Capacity-seats); err != nil {
		return 0, fmt.Errorf("reserve seats: %w", err)
	}

	booking, err := s.upsertBooking(ctx, eventID, userID, seats)
	if err != nil {
		s.releaseSeats(ctx, eventID, seats)
		return 0, fmt.Errorf("save booking: %w", err)
	}

	// the upserted booking holds all of the user's active seats
	total := booking.SeatsBooked
	s.logger.Info("booking created",
		slog.String("booking_id", booking.ID),
		slog.String("event_id", eventID),
		slog.String("user_id", userID),
		slog.Int("seats", seats),
		slog.Int("user_total", total),
	)

	event.BookedSeats += seats
	go s.notifier.NotifyBookingCreated(context.WithoutCancel(ctx), booking, event)

	return total, nil
}

func (s *BookingService) upsertBooking(ctx context.Context, eventID, userID string, seats int) (*domain.Booking, error) {
	now := time.Now().UTC()

	existing, err := s.bookingRepo.FindActive(ctx, eventID, userID)
	switch {
	case err == nil:
		if err = s.bookingRepo.AddSeats(ctx, existing.ID, seats, now); err != nil {
			return nil, fmt.Errorf("add seats: %w", err)
		}
		existing.SeatsBooked += seats
		existing.BookingTime = now
		return existing, nil

	case errors.Is(err, domain.ErrBookingNotFound):
		booking := &domain.Booking{
			ID:          uuid.New().String(),
			EventID:     eventID,
			UserID:      userID,
			SeatsBooked: seats,
			Status:      domain.BookingStatusConfirmed,
			BookingTime: now,
		}
		if err = s.bookingRepo.Insert(ctx, booking); err != nil {
			return nil, fmt.Errorf("insert booking: %w", err)
		}
		return booking, nil

	default:
		return nil, fmt.Errorf("find active booking: %w", err)
	}
}

// releaseSeats undoes a counter increment whose booking write failed. If this
// fails too the drift is left to the reconciler.
func (s *BookingService) releaseSeats(ctx context.Context, eventID string, seats int) {
	if err := s.eventRepo.DecrementBookedSeats(context.WithoutCancel(ctx), eventID, seats); err != nil {
		s.logger.Error("failed to release reserved seats",
			slog.String("event_id", eventID),
			slog.Int("seats", seats),
			slog.String("error", err.Error()),
		)
		return
	}

	s.logger.Warn("reserved seats released after failed booking write",
		slog.String("event_id", eventID),
		slog.Int("seats", seats),
	)
}

func (s *BookingService) Cancel(ctx context.Context, bookingID string) error {
	if strings.TrimSpace(bookingID) == "" {
		return fmt.Errorf("%w: booking id is required", domain.ErrInvalidRequest)
	}

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return fmt.Errorf("get booking: %w", err)
	}
	if booking.Status == domain.BookingStatusCancelled {
		return domain.ErrAlreadyCancelled
	}

	changed, err := s.bookingRepo.SetStatus(ctx, bookingID, domain.BookingStatusCancelled)
	if err != nil {
		return fmt.Errorf("set booking status: %w", err)
	}
	// lost a race with another cancellation
	if !changed {
		return domain.ErrAlreadyCancelled
	}

	if booking.Status.IsActive() {
		if err = s.eventRepo.DecrementBookedSeats(ctx, booking.EventID, booking.SeatsBooked); err != nil {
			s.logger.Error("booking cancelled but seats not released",
				slog.String("booking_id", booking.ID),
				slog.String("event_id", booking.EventID),
				slog.String("error", err.Error()),
			)
			return fmt.Errorf("release seats: %w", err)
		}
	}

	booking.Status = domain.BookingStatusCancelled
	s.logger.Info("booking cancelled",
		slog.String("booking_id", booking.ID),
		slog.String("event_id", booking.EventID),
		slog.String("user_id", booking.UserID),
		slog.Int("seats", booking.SeatsBooked),
	)

	go s.notifyCancelled(context.WithoutCancel(ctx), booking)

	return nil
}

func (s *BookingService) notifyCancelled(ctx context.Context, booking *domain.Booking) {
	event, err := s.eventRepo.GetByID(ctx, booking.EventID)
	if err != nil {
		s.logger.Error("failed to get event for cancel notification",
			slog.String("event_id", booking.EventID),
		)
		return
	}

	s.notifier.NotifyBookingCancelled(ctx, booking, event)
}

func (s *BookingService) Get(ctx context.Context, bookingID string) (*domain.Booking, error) {
	if strings.TrimSpace(bookingID) == "" {
		return nil, fmt.Errorf("%w: booking id is required", domain.ErrInvalidRequest)
	}
	return s.bookingRepo.GetByID(ctx, bookingID)
}

func (s *BookingService) ListByUser(ctx context.Context, userID string) ([]*domain.BookingDetails, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, fmt.Errorf("%w: user id is required", domain.ErrInvalidRequest)
	}

	bookings, err := s.bookingRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	return bookings, nil
}

func validateBookingRequest(eventID, userID string, seats int) error {
	if strings.TrimSpace(eventID) == "" {
		return fmt.Errorf("%w: event id is required", domain.ErrInvalidRequest)
	}
	if strings.TrimSpace(userID) == "" {
		return fmt.Errorf("%w: user id is required", domain.ErrInvalidRequest)
	}
	if seats < domain.MinSeatsPerRequest || seats > domain.MaxSeatsPerUser {
		return fmt.Errorf("%w: seats must be between %d and %d",
			domain.ErrInvalidRequest, domain.MinSeatsPerRequest, domain.MaxSeatsPerUser)
	}
	return nil
}

func bookingLockKey(eventID, userID string) string {
	return "booking:" + eventID + ":" + userID
}
