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

type VolunteerRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewVolunteerRepo(db *dbpg.DB) *VolunteerRepository {
	return &VolunteerRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *VolunteerRepository) Create(ctx context.Context, v *domain.Volunteer) error {
	query := `INSERT INTO volunteers (name, email, phone, role, password_hash, telegram_chat_id)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  RETURNING id, created_at`
	row, err := r.db.QueryRowWithRetry(
		ctx, r.strategy, query,
		v.Name, v.Email, v.Phone, v.Role, v.PasswordHash, v.TelegramChatID,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrEmailTaken
		}
		return fmt.Errorf("insert volunteer: %w", err)
	}
	if err = row.Scan(&v.ID, &v.CreatedAt); err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrEmailTaken
		}
		return fmt.Errorf("scan inserted volunteer: %w", err)
	}

	return nil
}

func (r *VolunteerRepository) GetByID(ctx context.Context, id int64) (*domain.Volunteer, error) {
	query := `SELECT id, name, email, phone, role, password_hash, telegram_chat_id, created_at
			  FROM volunteers
			  WHERE id = $1`
	return r.getOne(ctx, query, id)
}

func (r *VolunteerRepository) GetByEmail(ctx context.Context, email string) (*domain.Volunteer, error) {
	query := `SELECT id, name, email, phone, role, password_hash, telegram_chat_id, created_at
			  FROM volunteers
			  WHERE email = $1`
	return r.getOne(ctx, query, email)
}

func (r *VolunteerRepository) getOne(ctx context.Context, query string, arg interface{}) (*domain.Volunteer, error) {
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, arg)
	if err != nil {
		return nil, fmt.Errorf("get volunteer: %w", err)
	}

	var v domain.Volunteer
	if err = row.Scan(
		&v.ID, &v.Name, &v.Email, &v.Phone, &v.Role,
		&v.PasswordHash, &v.TelegramChatID, &v.CreatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrVolunteerNotFound
		}
		return nil, fmt.Errorf("scan volunteer: %w", err)
	}

	return &v, nil
}

func (r *VolunteerRepository) List(ctx context.Context) ([]*domain.Volunteer, error) {
	query := `SELECT id, name, email, phone, role, password_hash, telegram_chat_id, created_at
			  FROM volunteers
			  ORDER BY name ASC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list volunteers: %w", err)
	}
	defer rows.Close()

	var res []*domain.Volunteer
	for rows.Next() {
		var v domain.Volunteer
		if err = rows.Scan(
			&v.ID, &v.Name, &v.Email, &v.Phone, &v.Role,
			&v.PasswordHash, &v.TelegramChatID, &v.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan volunteer: %w", err)
		}
		res = append(res, &v)
	}

	return res, rows.Err()
}

func (r *VolunteerRepository) Update(ctx context.Context, v *domain.Volunteer) error {
	query := `UPDATE volunteers
			  SET name = $2, email = $3, phone = $4, telegram_chat_id = $5
			  WHERE id = $1`
	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		v.ID, v.Name, v.Email, v.Phone, v.TelegramChatID,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrEmailTaken
		}
		return fmt.Errorf("update volunteer: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("volunteer rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrVolunteerNotFound
	}

	return nil
}

func (r *VolunteerRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM volunteers WHERE id = $1`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return fmt.Errorf("delete volunteer: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("volunteer rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrVolunteerNotFound
	}

	return nil
}
