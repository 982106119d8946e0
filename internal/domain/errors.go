package domain

import "errors"

var (
	ErrEventNotFound   = errors.New("event not found")
	ErrBookingNotFound = errors.New("booking not found")
)

var (
	ErrPerUserLimitExceeded     = errors.New("cannot book more than 2 seats per event")
	ErrCapacityExceeded         = errors.New("not enough seats available")
	ErrConcurrentUpdateConflict = errors.New("seat counter changed concurrently, retry")
	ErrAlreadyCancelled         = errors.New("booking is already cancelled")
	ErrEventHasBookings         = errors.New("event still has booked seats")
)

var (
	ErrInvalidRequest  = errors.New("invalid request")
	ErrUnauthenticated = errors.New("authentication required")
	ErrForbidden       = errors.New("not allowed to act on behalf of another user")
)

var (
	ErrStorageUnavailable = errors.New("storage unavailable")
)

type Kind string

const (
	KindInvalidRequest           Kind = "invalid_request"
	KindEventNotFound            Kind = "event_not_found"
	KindBookingNotFound          Kind = "booking_not_found"
	KindPerUserLimitExceeded     Kind = "per_user_limit_exceeded"
	KindCapacityExceeded         Kind = "capacity_exceeded"
	KindConcurrentUpdateConflict Kind = "concurrent_update_conflict"
	KindAlreadyCancelled         Kind = "already_cancelled"
	KindEventHasBookings         Kind = "event_has_bookings"
	KindStorageUnavailable       Kind = "storage_unavailable"
	KindUnauthenticated          Kind = "unauthenticated"
	KindForbidden                Kind = "forbidden"
	KindInternal                 Kind = "internal"
)

var kinds = []struct {
	err  error
	kind Kind
}{
	{ErrInvalidRequest, KindInvalidRequest},
	{ErrEventNotFound, KindEventNotFound},
	{ErrBookingNotFound, KindBookingNotFound},
	{ErrPerUserLimitExceeded, KindPerUserLimitExceeded},
	{ErrCapacityExceeded, KindCapacityExceeded},
	{ErrConcurrentUpdateConflict, KindConcurrentUpdateConflict},
	{ErrAlreadyCancelled, KindAlreadyCancelled},
	{ErrEventHasBookings, KindEventHasBookings},
	{ErrStorageUnavailable, KindStorageUnavailable},
	{ErrUnauthenticated, KindUnauthenticated},
	{ErrForbidden, KindForbidden},
}

// KindOf reports the machine-readable kind of err, or KindInternal.
func KindOf(err error) Kind {
	for _, k := range kinds {
		if errors.Is(err, k.err) {
			return k.kind
		}
	}
	return KindInternal
}
