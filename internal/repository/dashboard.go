package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/gedeanz/ifrs-volunteers/internal/domain"
)

type DashboardRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewDashboardRepo(db *dbpg.DB) *DashboardRepository {
	return &DashboardRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

const upcomingLimit = 5

func (r *DashboardRepository) Summary(ctx context.Context) (*domain.DashboardSummary, error) {
	query := `SELECT
				(SELECT COUNT(*) FROM events),
				(SELECT COUNT(*) FROM volunteers),
				(SELECT COALESCE(SUM(capacity), 0) FROM events)`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("dashboard totals: %w", err)
	}

	var s domain.DashboardSummary
	if err = row.Scan(&s.TotalEvents, &s.TotalVolunteers, &s.TotalCapacity); err != nil {
		return nil, fmt.Errorf("scan dashboard totals: %w", err)
	}

	upcomingQuery := `SELECT id, title, event_date, location
					  FROM events
					  WHERE event_date >= now()
					  ORDER BY event_date ASC
					  LIMIT $1`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, upcomingQuery, upcomingLimit)
	if err != nil {
		return nil, fmt.Errorf("upcoming events: %w", err)
	}
	defer rows.Close()

	s.Upcoming = make([]domain.UpcomingEvent, 0, upcomingLimit)
	for rows.Next() {
		var u domain.UpcomingEvent
		if err = rows.Scan(&u.ID, &u.Title, &u.EventDate, &u.Location); err != nil {
			return nil, fmt.Errorf("scan upcoming event: %w", err)
		}
		s.Upcoming = append(s.Upcoming, u)
	}

	return &s, rows.Err()
}
