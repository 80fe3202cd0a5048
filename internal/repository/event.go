package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/gedeanz/ifrs-volunteers/internal/domain"
)

type EventRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewEventRepo(db *dbpg.DB) *EventRepository {
	return &EventRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *EventRepository) Create(ctx context.Context, e *domain.Event) error {
	query := `INSERT INTO events (title, description, event_date, location, capacity)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING id, created_at`
	row, err := r.db.QueryRowWithRetry(
		ctx, r.strategy, query,
		e.Title, e.Description, e.EventDate, e.Location, e.Capacity,
	)
	if err != nil {
		return fmt.Errorf("insert event: %w", err)
	}
	if err = row.Scan(&e.ID, &e.CreatedAt); err != nil {
		return fmt.Errorf("scan inserted event: %w", err)
	}

	return nil
}

func (r *EventRepository) GetByID(ctx context.Context, id int64) (*domain.Event, error) {
	query := `SELECT id, title, description, event_date, location, capacity, created_at
			  FROM events
			  WHERE id = $1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	var e domain.Event
	if err = row.Scan(
		&e.ID, &e.Title, &e.Description, &e.EventDate,
		&e.Location, &e.Capacity, &e.CreatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("scan event: %w", err)
	}

	return &e, nil
}

func (r *EventRepository) List(ctx context.Context) ([]*domain.EventWithCount, error) {
	query := `SELECT e.id, e.title, e.description, e.event_date, e.location, e.capacity,
					 e.created_at, COUNT(reg.id) AS registered_count
			  FROM events e
			  LEFT JOIN registrations reg ON reg.event_id = e.id
			  GROUP BY e.id
			  ORDER BY e.event_date ASC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var res []*domain.EventWithCount
	for rows.Next() {
		var ec domain.EventWithCount
		if err = rows.Scan(
			&ec.Event.ID, &ec.Event.Title, &ec.Event.Description, &ec.Event.EventDate,
			&ec.Event.Location, &ec.Event.Capacity, &ec.Event.CreatedAt,
			&ec.RegisteredCount,
		); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		res = append(res, &ec)
	}

	return res, rows.Err()
}

func (r *EventRepository) Update(ctx context.Context, e *domain.Event) error {
	query := `UPDATE events
			  SET title = $2, description = $3, event_date = $4, location = $5, capacity = $6
			  WHERE id = $1`
	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		e.ID, e.Title, e.Description, e.EventDate, e.Location, e.Capacity,
	)
	if err != nil {
		return fmt.Errorf("update event: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("event rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrEventNotFound
	}

	return nil
}

// Delete removes the event; its registrations go with it (ON DELETE CASCADE).
func (r *EventRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM events WHERE id = $1`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("event rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrEventNotFound
	}

	return nil
}
