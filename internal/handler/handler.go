package handler

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rawatanuj07/eventease/internal/domain"
	"github.com/rawatanuj07/eventease/internal/handler/dto"
	"github.com/rawatanuj07/eventease/internal/middleware"
)

type EventSvc interface {
	Create(ctx context.Context, input domain.EventInput) (*domain.Event, error)
	Update(ctx context.Context, id string, input domain.EventInput) (*domain.Event, error)
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	List(ctx context.Context, filter domain.EventFilter) ([]*domain.Event, error)
	Attendees(ctx context.Context, eventID string) ([]*domain.Booking, error)
}

type BookingSvc interface {
	Create(ctx context.Context, eventID, userID string, seats int) (int, error)
	Cancel(ctx context.Context, bookingID string) error
	Get(ctx context.Context, bookingID string) (*domain.Booking, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.BookingDetails, error)
}

type Reconciler interface {
	Reconcile(ctx context.Context) ([]domain.SeatDrift, error)
}

type Handler struct {
	eventService   EventSvc
	bookingService BookingSvc
	reconciler     Reconciler
}

func NewHandler(eventService EventSvc, bookingService BookingSvc, reconciler Reconciler) *Handler {
	return &Handler{
		eventService:   eventService,
		bookingService: bookingService,
		reconciler:     reconciler,
	}
}

// Events

func (h *Handler) ListEvents(c *gin.Context) {
	filter := domain.EventFilter{
		Category: strings.TrimSpace(c.Query("category")),
		Status:   domain.EventStatus(c.Query("status")),
		Mode:     domain.EventMode(c.Query("mode")),
		Query:    strings.TrimSpace(c.Query("q")),
	}

	events, err := h.eventService.List(c.Request.Context(), filter)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventListResponse(events))
}

func (h *Handler) GetEvent(c *gin.Context) {
	event, err := h.eventService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

func (h *Handler) CreateEvent(c *gin.Context) {
	input, ok := h.bindEvent(c)
	if !ok {
		return
	}

	event, err := h.eventService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToEventResponse(event))
}

func (h *Handler) UpdateEvent(c *gin.Context) {
	input, ok := h.bindEvent(c)
	if !ok {
		return
	}

	event, err := h.eventService.Update(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

func (h *Handler) DeleteEvent(c *gin.Context) {
	if err := h.eventService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) EventAttendees(c *gin.Context) {
	eventID := c.Param("id")
	bookings, err := h.eventService.Attendees(c.Request.Context(), eventID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAttendeesResponse(eventID, bookings))
}

// Bookings

func (h *Handler) CreateBooking(c *gin.Context) {
	caller, ok := h.identity(c)
	if !ok {
		return
	}

	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.handleError(c, fmt.Errorf("%w: %v", domain.ErrInvalidRequest, err))
		return
	}

	userID := strings.TrimSpace(req.UserID)
	if userID == "" {
		userID = caller.UserID
	}
	if !caller.CanActFor(userID) {
		h.handleError(c, domain.ErrForbidden)
		return
	}

	total, err := h.bookingService.Create(c.Request.Context(), req.EventID, userID, req.Seats())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.CreateBookingResponse{Success: true, BookedSeats: total})
}

func (h *Handler) CancelBooking(c *gin.Context) {
	caller, ok := h.identity(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	bookingID := c.Param("id")

	booking, err := h.bookingService.Get(ctx, bookingID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	if !caller.CanActFor(booking.UserID) {
		h.handleError(c, domain.ErrForbidden)
		return
	}

	if err = h.bookingService.Cancel(ctx, bookingID); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.CancelBookingResponse{Success: true, Message: "booking cancelled"})
}

func (h *Handler) ListUserBookings(c *gin.Context) {
	caller, ok := h.identity(c)
	if !ok {
		return
	}

	userID := c.Param("id")
	if !caller.CanActFor(userID) {
		h.handleError(c, domain.ErrForbidden)
		return
	}

	h.listBookings(c, userID)
}

func (h *Handler) ListMyBookings(c *gin.Context) {
	caller, ok := h.identity(c)
	if !ok {
		return
	}

	h.listBookings(c, caller.UserID)
}

func (h *Handler) listBookings(c *gin.Context, userID string) {
	bookings, err := h.bookingService.ListByUser(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingListResponse(bookings))
}

// Maintenance

func (h *Handler) Reconcile(c *gin.Context) {
	repaired, err := h.reconciler.Reconcile(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReconcileResponse(repaired))
}

func (h *Handler) bindEvent(c *gin.Context) (domain.EventInput, bool) {
	var req dto.EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.handleError(c, fmt.Errorf("%w: %v", domain.ErrInvalidRequest, err))
		return domain.EventInput{}, false
	}

	input, err := req.ToInput()
	if err != nil {
		h.handleError(c, err)
		return domain.EventInput{}, false
	}

	return input, true
}

func (h *Handler) identity(c *gin.Context) (domain.Identity, bool) {
	id, ok := middleware.IdentityFrom(c)
	if !ok {
		h.handleError(c, domain.ErrUnauthenticated)
		return domain.Identity{}, false
	}
	return id, true
}

func (h *Handler) handleError(c *gin.Context, err error) {
	c.Set(middleware.ErrorKey, err.Error())

	kind := domain.KindOf(err)
	status := statusOf(kind)

	msg := err.Error()
	if status >= http.StatusInternalServerError {
		msg = http.StatusText(status)
	}

	c.JSON(status, dto.ErrorResponse{Error: msg, Kind: kind})
}

func statusOf(kind domain.Kind) int {
	switch kind {
	case domain.KindInvalidRequest,
		domain.KindPerUserLimitExceeded,
		domain.KindAlreadyCancelled:
		return http.StatusBadRequest
	case domain.KindEventNotFound,
		domain.KindBookingNotFound:
		return http.StatusNotFound
	case domain.KindCapacityExceeded,
		domain.KindConcurrentUpdateConflict,
		domain.KindEventHasBookings:
		return http.StatusConflict
	case domain.KindUnauthenticated:
		return http.StatusUnauthorized
	case domain.KindForbidden:
		return http.StatusForbidden
	case domain.KindStorageUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
