package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/rawatanuj07/eventease/internal/domain"
)

const bookingColumns = `id, event_id, user_id, seats_booked, status, booking_time`

type BookingRepository struct {
	db DB
}

func NewBookingRepo(db DB) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) SumActiveSeats(ctx context.Context, eventID, userID string) (int, error) {
	query := `SELECT COALESCE(SUM(seats_booked), 0)
			  FROM bookings
			  WHERE event_id = $1 AND user_id = $2 AND status = ANY($3)`

	var sum int
	if err := r.db.QueryRow(ctx, query, eventID, userID, domain.ActiveStatusValues()).Scan(&sum); err != nil {
		return 0, storageErr("sum active seats", err)
	}

	return sum, nil
}

func (r *BookingRepository) FindActive(ctx context.Context, eventID, userID string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings
			  WHERE event_id = $1 AND user_id = $2 AND status = ANY($3)
			  ORDER BY booking_time DESC
			  LIMIT 1`

	b, err := scanBooking(r.db.QueryRow(ctx, query, eventID, userID, domain.ActiveStatusValues()))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, storageErr("find active booking", err)
	}

	return b, nil
}

func (r *BookingRepository) Insert(ctx context.Context, b *domain.Booking) error {
	query := `INSERT INTO bookings (` + bookingColumns + `) VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.Exec(ctx, query, b.ID, b.EventID, b.UserID, b.SeatsBooked, string(b.Status), b.BookingTime)
	if err != nil {
		switch pgErrCode(err) {
		case codeForeignKeyViolation:
			return domain.ErrEventNotFound
		case codeCheckViolation:
			return domain.ErrPerUserLimitExceeded
		}
		return storageErr("insert booking", err)
	}

	return nil
}

func (r *BookingRepository) AddSeats(ctx context.Context, id string, delta int, at time.Time) error {
	query := `UPDATE bookings SET seats_booked = seats_booked + $2, booking_time = $3 WHERE id = $1`
	tag, err := r.db.Exec(ctx, query, id, delta, at)
	if err != nil {
		if pgErrCode(err) == codeCheckViolation {
			return domain.ErrPerUserLimitExceeded
		}
		return storageErr("add seats", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrBookingNotFound
	}

	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	b, err := scanBooking(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, storageErr("get booking", err)
	}

	return b, nil
}

// SetStatus only touches rows whose status differs, so two racing
// cancellations cannot both report a change.
func (r *BookingRepository) SetStatus(ctx context.Context, id string, status domain.BookingStatus) (bool, error) {
	tag, err := r.db.Exec(ctx, `UPDATE bookings SET status = $2 WHERE id = $1 AND status <> $2`, id, string(status))
	if err != nil {
		return false, storageErr("set booking status", err)
	}
	if tag.RowsAffected() > 0 {
		return true, nil
	}

	var exists bool
	if err = r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM bookings WHERE id = $1)`, id).Scan(&exists); err != nil {
		return false, storageErr("check booking", err)
	}
	if !exists {
		return false, domain.ErrBookingNotFound
	}

	return false, nil
}

func (r *BookingRepository) ListByUser(ctx context.Context, userID string) ([]*domain.BookingDetails, error) {
	query := `SELECT b.id, b.event_id, b.user_id, b.seats_booked, b.status, b.booking_time,
				     e.title, e.event_date, e.event_time, e.location
			  FROM bookings b
			  JOIN events e ON e.id = b.event_id
			  WHERE b.user_id = $1
			  ORDER BY b.booking_time DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, storageErr("list user bookings", err)
	}
	defer rows.Close()

	var res []*domain.BookingDetails
	for rows.Next() {
		var d domain.BookingDetails
		if err = rows.Scan(
			&d.ID, &d.EventID, &d.UserID, &d.SeatsBooked, &d.Status, &d.BookingTime,
			&d.EventTitle, &d.EventDate, &d.EventTime, &d.EventLocation,
		); err != nil {
			return nil, storageErr("scan booking", err)
		}
		res = append(res, &d)
	}
	if err = rows.Err(); err != nil {
		return nil, storageErr("list user bookings", err)
	}

	return res, nil
}

func (r *BookingRepository) ListByEvent(ctx context.Context, eventID string) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE event_id = $1 ORDER BY booking_time`

	rows, err := r.db.Query(ctx, query, eventID)
	if err != nil {
		return nil, storageErr("list event bookings", err)
	}
	defer rows.Close()

	var res []*domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, storageErr("scan booking", err)
		}
		res = append(res, b)
	}
	if err = rows.Err(); err != nil {
		return nil, storageErr("list event bookings", err)
	}

	return res, nil
}

func (r *BookingRepository) ActiveSeatsByEvent(ctx context.Context) (map[string]int, error) {
	query := `SELECT event_id, SUM(seats_booked)
			  FROM bookings
			  WHERE status = ANY($1)
			  GROUP BY event_id`

	rows, err := r.db.Query(ctx, query, domain.ActiveStatusValues())
	if err != nil {
		return nil, storageErr("active seats by event", err)
	}
	defer rows.Close()

	res := make(map[string]int)
	for rows.Next() {
		var (
			eventID string
			seats   int
		)
		if err = rows.Scan(&eventID, &seats); err != nil {
			return nil, storageErr("scan active seats", err)
		}
		res[eventID] = seats
	}
	if err = rows.Err(); err != nil {
		return nil, storageErr("active seats by event", err)
	}

	return res, nil
}

func scanBooking(row pgx.Row) (*domain.Booking, error) {
	var b domain.Booking
	if err := row.Scan(&b.ID, &b.EventID, &b.UserID, &b.SeatsBooked, &b.Status, &b.BookingTime); err != nil {
		return nil, err
	}
	return &b, nil
}
