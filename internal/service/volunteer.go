package service

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/gedeanz/ifrs-volunteers/internal/domain"
	"github.com/gedeanz/ifrs-volunteers/internal/service/ports"
)

type VolunteerService struct {
	repo ports.VolunteerRepo
}

func NewVolunteerService(repo ports.VolunteerRepo) *VolunteerService {
	return &VolunteerService{repo: repo}
}

// Create is the public signup path; every new volunteer starts as a regular
// user.
func (s *VolunteerService) Create(ctx context.Context, input domain.CreateVolunteerInput) (*domain.Volunteer, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if input.Email == "" {
		return nil, fmt.Errorf("%w: email is required", domain.ErrValidation)
	}
	if input.Password == "" {
		return nil, fmt.Errorf("%w: password is required", domain.ErrValidation)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	volunteer := &domain.Volunteer{
		Name:           input.Name,
		Email:          input.Email,
		Phone:          input.Phone,
		Role:           domain.RoleUser,
		PasswordHash:   string(hash),
		TelegramChatID: input.TelegramChatID,
	}

	if err = s.repo.Create(ctx, volunteer); err != nil {
		return nil, fmt.Errorf("create volunteer: %w", err)
	}

	return volunteer, nil
}

// GetByID allows admins to read anyone and regular users only themselves.
func (s *VolunteerService) GetByID(ctx context.Context, id int64, ident domain.Identity) (*domain.Volunteer, error) {
	if !ident.IsAdmin() && ident.VolunteerID != id {
		return nil, domain.ErrForbidden
	}
	return s.repo.GetByID(ctx, id)
}

func (s *VolunteerService) List(ctx context.Context) ([]*domain.Volunteer, error) {
	return s.repo.List(ctx)
}

func (s *VolunteerService) Update(ctx context.Context, id int64, input domain.UpdateVolunteerInput, ident domain.Identity) (*domain.Volunteer, error) {
	if !ident.IsAdmin() && ident.VolunteerID != id {
		return nil, domain.ErrForbidden
	}
	if input.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if input.Email == "" {
		return nil, fmt.Errorf("%w: email is required", domain.ErrValidation)
	}

	volunteer, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get volunteer: %w", err)
	}

	volunteer.Name = input.Name
	volunteer.Email = input.Email
	volunteer.Phone = input.Phone
	volunteer.TelegramChatID = input.TelegramChatID

	if err = s.repo.Update(ctx, volunteer); err != nil {
		return nil, fmt.Errorf("update volunteer: %w", err)
	}

	return volunteer, nil
}

func (s *VolunteerService) Delete(ctx context.Context, id int64, ident domain.Identity) error {
	if !ident.IsAdmin() && ident.VolunteerID != id {
		return domain.ErrForbidden
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete volunteer: %w", err)
	}
	return nil
}
