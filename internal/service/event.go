package service

import (
	"context"
	"fmt"
	"time"

	"github.com/gedeanz/ifrs-volunteers/internal/domain"
	"github.com/gedeanz/ifrs-volunteers/internal/service/ports"
)

type EventService struct {
	repo             ports.EventRepo
	registrationRepo ports.RegistrationRepo
}

func NewEventService(repo ports.EventRepo, registrationRepo ports.RegistrationRepo) *EventService {
	return &EventService{
		repo:             repo,
		registrationRepo: registrationRepo,
	}
}

func validateEventInput(title, location string, eventDate time.Time, capacity int) error {
	if title == "" {
		return fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if location == "" {
		return fmt.Errorf("%w: location is required", domain.ErrValidation)
	}
	if eventDate.IsZero() {
		return fmt.Errorf("%w: event_date is required", domain.ErrValidation)
	}
	if capacity < 0 {
		return fmt.Errorf("%w: capacity must not be negative", domain.ErrValidation)
	}
	return nil
}

func (s *EventService) Create(ctx context.Context, input domain.CreateEventInput) (*domain.Event, error) {
	if err := validateEventInput(input.Title, input.Location, input.EventDate, input.Capacity); err != nil {
		return nil, err
	}
	if input.EventDate.Before(time.Now()) {
		return nil, fmt.Errorf("%w: event_date must be in the future", domain.ErrValidation)
	}

	event := &domain.Event{
		Title:       input.Title,
		Description: input.Description,
		EventDate:   input.EventDate,
		Location:    input.Location,
		Capacity:    input.Capacity,
	}

	if err := s.repo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	return event, nil
}

// GetDetails returns the event together with its current registration count.
func (s *EventService) GetDetails(ctx context.Context, id int64) (*domain.EventWithCount, error) {
	event, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	count, err := s.registrationRepo.CountByEvent(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("count registrations: %w", err)
	}

	return &domain.EventWithCount{Event: *event, RegisteredCount: count}, nil
}

func (s *EventService) List(ctx context.Context) ([]*domain.EventWithCount, error) {
	return s.repo.List(ctx)
}

func (s *EventService) Update(ctx context.Context, id int64, input domain.UpdateEventInput) (*domain.Event, error) {
	if err := validateEventInput(input.Title, input.Location, input.EventDate, input.Capacity); err != nil {
		return nil, err
	}

	event, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	event.Title = input.Title
	event.Description = input.Description
	event.EventDate = input.EventDate
	event.Location = input.Location
	event.Capacity = input.Capacity

	if err = s.repo.Update(ctx, event); err != nil {
		return nil, fmt.Errorf("update event: %w", err)
	}

	return event, nil
}

func (s *EventService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
