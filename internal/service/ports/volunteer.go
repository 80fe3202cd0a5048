package ports

import (
	"context"

	"github.com/gedeanz/ifrs-volunteers/internal/domain"
)

type VolunteerRepo interface {
	Create(ctx context.Context, v *domain.Volunteer) error
	GetByID(ctx context.Context, id int64) (*domain.Volunteer, error)
	GetByEmail(ctx context.Context, email string) (*domain.Volunteer, error)
	List(ctx context.Context) ([]*domain.Volunteer, error)
	Update(ctx context.Context, v *domain.Volunteer) error
	Delete(ctx context.Context, id int64) error
}
