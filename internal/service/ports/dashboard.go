package ports

import (
	"context"

	"github.com/gedeanz/ifrs-volunteers/internal/domain"
)

type DashboardRepo interface {
	Summary(ctx context.Context) (*domain.DashboardSummary, error)
}
