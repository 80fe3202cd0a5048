package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/gedeanz/ifrs-volunteers/internal/domain"
)

type RegistrationRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewRegistrationRepo(db *dbpg.DB) *RegistrationRepository {
	return &RegistrationRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// Create inserts a registration after re-checking every invariant inside one
// transaction. The event row is locked FOR UPDATE so that concurrent
// registrations for the same event serialize on the capacity check; the
// unique (event_id, volunteer_id) index is the safety net for duplicate
// pairs that race past the pre-check.
func (r *RegistrationRepository) Create(ctx context.Context, eventID, volunteerID int64) (*domain.Registration, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var capacity int
	capQuery := `SELECT capacity FROM events WHERE id = $1 FOR UPDATE`
	if err = tx.QueryRowContext(ctx, capQuery, eventID).Scan(&capacity); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("lock event: %w", err)
	}

	var exists bool
	existsQuery := `SELECT EXISTS (
		SELECT 1 FROM registrations WHERE event_id = $1 AND volunteer_id = $2
	)`
	if err = tx.QueryRowContext(ctx, existsQuery, eventID, volunteerID).Scan(&exists); err != nil {
		return nil, fmt.Errorf("check registration: %w", err)
	}
	if exists {
		return nil, domain.ErrAlreadyRegistered
	}

	// Capacity 0 means unlimited.
	if capacity > 0 {
		var registered int
		countQuery := `SELECT COUNT(*) FROM registrations WHERE event_id = $1`
		if err = tx.QueryRowContext(ctx, countQuery, eventID).Scan(&registered); err != nil {
			return nil, fmt.Errorf("count registrations: %w", err)
		}
		if registered >= capacity {
			return nil, domain.ErrEventFull
		}
	}

	reg := &domain.Registration{EventID: eventID, VolunteerID: volunteerID}
	insertQuery := `INSERT INTO registrations (event_id, volunteer_id)
					VALUES ($1, $2)
					RETURNING id, registered_at`
	if err = tx.QueryRowContext(ctx, insertQuery, eventID, volunteerID).
		Scan(&reg.ID, &reg.RegisteredAt); err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505":
				return nil, domain.ErrAlreadyRegistered
			case "23503":
				return nil, domain.ErrVolunteerNotFound
			}
		}
		return nil, fmt.Errorf("insert registration: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	return reg, nil
}

// Delete removes at most one row and reports whether one was removed.
func (r *RegistrationRepository) Delete(ctx context.Context, eventID, volunteerID int64) (bool, error) {
	query := `DELETE FROM registrations WHERE event_id = $1 AND volunteer_id = $2`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, eventID, volunteerID)
	if err != nil {
		return false, fmt.Errorf("delete registration: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("registration rows affected: %w", err)
	}

	return rows > 0, nil
}

func (r *RegistrationRepository) Exists(ctx context.Context, eventID, volunteerID int64) (bool, error) {
	query := `SELECT EXISTS (
		SELECT 1 FROM registrations WHERE event_id = $1 AND volunteer_id = $2
	)`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, eventID, volunteerID)
	if err != nil {
		return false, fmt.Errorf("check registration: %w", err)
	}

	var exists bool
	if err = row.Scan(&exists); err != nil {
		return false, fmt.Errorf("scan registration check: %w", err)
	}

	return exists, nil
}

func (r *RegistrationRepository) CountByEvent(ctx context.Context, eventID int64) (int, error) {
	query := `SELECT COUNT(*) FROM registrations WHERE event_id = $1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, eventID)
	if err != nil {
		return 0, fmt.Errorf("count registrations: %w", err)
	}

	var count int
	if err = row.Scan(&count); err != nil {
		return 0, fmt.Errorf("scan registration count: %w", err)
	}

	return count, nil
}

func (r *RegistrationRepository) ListByVolunteer(ctx context.Context, volunteerID int64) ([]*domain.VolunteerRegistration, error) {
	query := `SELECT e.id, e.title, e.description, e.event_date, e.location, e.capacity,
					 reg.registered_at
			  FROM registrations reg
			  JOIN events e ON e.id = reg.event_id
			  WHERE reg.volunteer_id = $1
			  ORDER BY e.event_date ASC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, volunteerID)
	if err != nil {
		return nil, fmt.Errorf("list registrations by volunteer: %w", err)
	}
	defer rows.Close()

	var res []*domain.VolunteerRegistration
	for rows.Next() {
		var vr domain.VolunteerRegistration
		if err = rows.Scan(
			&vr.EventID, &vr.Title, &vr.Description, &vr.EventDate,
			&vr.Location, &vr.Capacity, &vr.RegisteredAt,
		); err != nil {
			return nil, fmt.Errorf("scan registration: %w", err)
		}
		res = append(res, &vr)
	}

	return res, rows.Err()
}

func (r *RegistrationRepository) ListByEvent(ctx context.Context, eventID int64) ([]*domain.EventAttendee, error) {
	query := `SELECT v.id, v.name, v.email, v.phone, reg.registered_at
			  FROM registrations reg
			  JOIN volunteers v ON v.id = reg.volunteer_id
			  WHERE reg.event_id = $1
			  ORDER BY reg.registered_at ASC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("list registrations by event: %w", err)
	}
	defer rows.Close()

	var res []*domain.EventAttendee
	for rows.Next() {
		var a domain.EventAttendee
		if err = rows.Scan(&a.VolunteerID, &a.Name, &a.Email, &a.Phone, &a.RegisteredAt); err != nil {
			return nil, fmt.Errorf("scan attendee: %w", err)
		}
		res = append(res, &a)
	}

	return res, rows.Err()
}

// DueReminders returns registrations for events starting within the window
// whose volunteers have not been reminded yet.
func (r *RegistrationRepository) DueReminders(ctx context.Context, within time.Duration) ([]*domain.ReminderTarget, error) {
	query := `SELECT reg.id,
					 v.id, v.name, v.email, v.phone, v.role, v.telegram_chat_id,
					 e.id, e.title, e.description, e.event_date, e.location, e.capacity
			  FROM registrations reg
			  JOIN volunteers v ON v.id = reg.volunteer_id
			  JOIN events e ON e.id = reg.event_id
			  WHERE reg.reminder_sent_at IS NULL
			    AND e.event_date > now()
			    AND e.event_date <= now() + make_interval(secs => $1)
			  ORDER BY e.event_date ASC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, within.Seconds())
	if err != nil {
		return nil, fmt.Errorf("list due reminders: %w", err)
	}
	defer rows.Close()

	var res []*domain.ReminderTarget
	for rows.Next() {
		var t domain.ReminderTarget
		if err = rows.Scan(
			&t.RegistrationID,
			&t.Volunteer.ID, &t.Volunteer.Name, &t.Volunteer.Email, &t.Volunteer.Phone,
			&t.Volunteer.Role, &t.Volunteer.TelegramChatID,
			&t.Event.ID, &t.Event.Title, &t.Event.Description, &t.Event.EventDate,
			&t.Event.Location, &t.Event.Capacity,
		); err != nil {
			return nil, fmt.Errorf("scan reminder target: %w", err)
		}
		res = append(res, &t)
	}

	return res, rows.Err()
}

func (r *RegistrationRepository) MarkReminded(ctx context.Context, registrationIDs []int64) error {
	if len(registrationIDs) == 0 {
		return nil
	}

	query := `UPDATE registrations SET reminder_sent_at = now() WHERE id = ANY($1)`
	if _, err := r.db.ExecWithRetry(ctx, r.strategy, query, pq.Array(registrationIDs)); err != nil {
		return fmt.Errorf("mark reminded: %w", err)
	}

	return nil
}
