package service

import (
	"context"

	"github.com/gedeanz/ifrs-volunteers/internal/domain"
	"github.com/gedeanz/ifrs-volunteers/internal/service/ports"
)

type DashboardService struct {
	repo ports.DashboardRepo
}

func NewDashboardService(repo ports.DashboardRepo) *DashboardService {
	return &DashboardService{repo: repo}
}

func (s *DashboardService) Summary(ctx context.Context) (*domain.DashboardSummary, error) {
	return s.repo.Summary(ctx)
}
