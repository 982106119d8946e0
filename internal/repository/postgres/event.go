package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/rawatanuj07/eventease/internal/domain"
)

const eventColumns = `id, title, description, category, event_date, event_time, mode, location, image,
		capacity, booked_seats, status, created_at, updated_at`

type EventRepository struct {
	db DB
}

func NewEventRepo(db DB) *EventRepository {
	return &EventRepository{db: db}
}

func (r *EventRepository) Create(ctx context.Context, e *domain.Event) error {
	query := `INSERT INTO events (` + eventColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.db.Exec(ctx, query,
		e.ID, e.Title, e.Description, e.Category, e.Date, e.Time, string(e.Mode), e.Location, e.Image,
		e.Capacity, e.BookedSeats, string(e.Status), e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		if pgErrCode(err) == codeCheckViolation {
			return fmt.Errorf("%w: %v", domain.ErrInvalidRequest, err)
		}
		return storageErr("insert event", err)
	}

	return nil
}

func (r *EventRepository) Update(ctx context.Context, e *domain.Event) error {
	query := `UPDATE events
			  SET title = $2, description = $3, category = $4, event_date = $5, event_time = $6,
			      mode = $7, location = $8, image = $9, capacity = $10, status = $11, updated_at = $12
			  WHERE id = $1`
	tag, err := r.db.Exec(ctx, query,
		e.ID, e.Title, e.Description, e.Category, e.Date, e.Time, string(e.Mode), e.Location, e.Image,
		e.Capacity, string(e.Status), e.UpdatedAt,
	)
	if err != nil {
		if pgErrCode(err) == codeCheckViolation {
			return fmt.Errorf("%w: capacity cannot drop below booked seats", domain.ErrInvalidRequest)
		}
		return storageErr("update event", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrEventNotFound
	}

	return nil
}

func (r *EventRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		if pgErrCode(err) == codeForeignKeyViolation {
			return domain.ErrEventHasBookings
		}
		return storageErr("delete event", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrEventNotFound
	}

	return nil
}

func (r *EventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`

	e, err := scanEvent(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, storageErr("get event", err)
	}

	return e, nil
}

func (r *EventRepository) List(ctx context.Context, filter domain.EventFilter) ([]*domain.Event, error) {
	var (
		conds []string
		args  []any
	)
	if filter.Category != "" {
		args = append(args, filter.Category)
		conds = append(conds, fmt.Sprintf("lower(category) = lower($%d)", len(args)))
	}
	if filter.Status != "" {
		args = append(args, string(filter.Status))
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}
	if filter.Mode != "" {
		args = append(args, string(filter.Mode))
		conds = append(conds, fmt.Sprintf("mode = $%d", len(args)))
	}
	if filter.Query != "" {
		args = append(args, "%"+filter.Query+"%")
		conds = append(conds, fmt.Sprintf("(title ILIKE $%[1]d OR description ILIKE $%[1]d OR location ILIKE $%[1]d)", len(args)))
	}

	query := `SELECT ` + eventColumns + ` FROM events`
	if len(conds) > 0 {
		query += ` WHERE ` + strings.Join(conds, " AND ")
	}
	query += ` ORDER BY event_date, id`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, storageErr("list events", err)
	}
	defer rows.Close()

	var res []*domain.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, storageErr("scan event", err)
		}
		res = append(res, e)
	}
	if err = rows.Err(); err != nil {
		return nil, storageErr("list events", err)
	}

	return res, nil
}

func (r *EventRepository) IncrementBookedSeats(ctx context.Context, id string, delta, expectedMax int) error {
	query := `UPDATE events
			  SET booked_seats = booked_seats + $2, updated_at = now()
			  WHERE id = $1 AND booked_seats <= $3`
	tag, err := r.db.Exec(ctx, query, id, delta, expectedMax)
	if err != nil {
		if pgErrCode(err) == codeCheckViolation {
			return domain.ErrCapacityExceeded
		}
		return storageErr("increment booked seats", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrConcurrentUpdateConflict
	}

	return nil
}

func (r *EventRepository) DecrementBookedSeats(ctx context.Context, id string, delta int) error {
	query := `UPDATE events
			  SET booked_seats = GREATEST(booked_seats - $2, 0), updated_at = now()
			  WHERE id = $1`
	tag, err := r.db.Exec(ctx, query, id, delta)
	if err != nil {
		return storageErr("decrement booked seats", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrEventNotFound
	}

	return nil
}

func (r *EventRepository) SetBookedSeats(ctx context.Context, id string, from, to int) error {
	query := `UPDATE events
			  SET booked_seats = $3, updated_at = now()
			  WHERE id = $1 AND booked_seats = $2`
	tag, err := r.db.Exec(ctx, query, id, from, to)
	if err != nil {
		return storageErr("set booked seats", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrConcurrentUpdateConflict
	}

	return nil
}

func scanEvent(row pgx.Row) (*domain.Event, error) {
	var e domain.Event
	if err := row.Scan(
		&e.ID, &e.Title, &e.Description, &e.Category, &e.Date, &e.Time, &e.Mode, &e.Location, &e.Image,
		&e.Capacity, &e.BookedSeats, &e.Status, &e.CreatedAt, &e.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &e, nil
}
