package service

import (
	"context"
	"fmt"
	"time"

	"github.com/wb-go/wbf/logger"

	"github.com/gedeanz/ifrs-volunteers/internal/domain"
	"github.com/gedeanz/ifrs-volunteers/internal/service/ports"
)

// RegistrationService mediates every change to the registration ledger.
// The ledger transaction enforces event existence, pair uniqueness and the
// capacity ceiling; this layer orchestrates, logs and notifies.
type RegistrationService struct {
	registrationRepo ports.RegistrationRepo
	eventRepo        ports.EventRepo
	volunteerRepo    ports.VolunteerRepo
	notifier         ports.Notifier
	reminderWindow   time.Duration
	logger           logger.Logger
}

func NewRegistrationService(
	registrationRepo ports.RegistrationRepo,
	eventRepo ports.EventRepo,
	volunteerRepo ports.VolunteerRepo,
	notifier ports.Notifier,
	reminderWindow time.Duration,
	logger logger.Logger,
) *RegistrationService {
	return &RegistrationService{
		registrationRepo: registrationRepo,
		eventRepo:        eventRepo,
		volunteerRepo:    volunteerRepo,
		notifier:         notifier,
		reminderWindow:   reminderWindow,
		logger:           logger,
	}
}

func (s *RegistrationService) Register(ctx context.Context, eventID, volunteerID int64) (*domain.Registration, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("check event: %w", err)
	}

	volunteer, err := s.volunteerRepo.GetByID(ctx, volunteerID)
	if err != nil {
		return nil, fmt.Errorf("check volunteer: %w", err)
	}

	reg, err := s.registrationRepo.Create(ctx, eventID, volunteerID)
	if err != nil {
		return nil, fmt.Errorf("create registration: %w", err)
	}

	s.logger.Info("volunteer registered",
		logger.Int64("registration_id", reg.ID),
		logger.Int64("event_id", eventID),
		logger.Int64("volunteer_id", volunteerID),
	)

	go s.notifier.NotifyRegistrationConfirmed(context.WithoutCancel(ctx), volunteer, event)

	return reg, nil
}

func (s *RegistrationService) Unregister(ctx context.Context, eventID, volunteerID int64) error {
	removed, err := s.registrationRepo.Delete(ctx, eventID, volunteerID)
	if err != nil {
		return fmt.Errorf("delete registration: %w", err)
	}
	if !removed {
		return domain.ErrNotRegistered
	}

	s.logger.Info("registration cancelled",
		logger.Int64("event_id", eventID),
		logger.Int64("volunteer_id", volunteerID),
	)

	// The notification is best effort; the cancellation already happened.
	volunteer, err := s.volunteerRepo.GetByID(ctx, volunteerID)
	if err != nil {
		s.logger.Error("failed to get volunteer for cancel notification",
			logger.Int64("volunteer_id", volunteerID),
			logger.String("error", err.Error()),
		)
		return nil
	}
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		s.logger.Error("failed to get event for cancel notification",
			logger.Int64("event_id", eventID),
			logger.String("error", err.Error()),
		)
		return nil
	}

	go s.notifier.NotifyRegistrationCancelled(context.WithoutCancel(ctx), volunteer, event)

	return nil
}

func (s *RegistrationService) ListForVolunteer(ctx context.Context, volunteerID int64) ([]*domain.VolunteerRegistration, error) {
	return s.registrationRepo.ListByVolunteer(ctx, volunteerID)
}

func (s *RegistrationService) ListForEvent(ctx context.Context, eventID int64) ([]*domain.EventAttendee, error) {
	if _, err := s.eventRepo.GetByID(ctx, eventID); err != nil {
		return nil, fmt.Errorf("check event: %w", err)
	}
	return s.registrationRepo.ListByEvent(ctx, eventID)
}

// SendReminders notifies volunteers whose events start within the configured
// window and marks those registrations so they are reminded only once.
func (s *RegistrationService) SendReminders(ctx context.Context) (int, error) {
	targets, err := s.registrationRepo.DueReminders(ctx, s.reminderWindow)
	if err != nil {
		return 0, fmt.Errorf("due reminders: %w", err)
	}
	if len(targets) == 0 {
		return 0, nil
	}

	ids := make([]int64, 0, len(targets))
	for _, t := range targets {
		s.notifier.NotifyEventReminder(ctx, &t.Volunteer, &t.Event)
		ids = append(ids, t.RegistrationID)
	}

	if err = s.registrationRepo.MarkReminded(ctx, ids); err != nil {
		return 0, fmt.Errorf("mark reminded: %w", err)
	}

	s.logger.Info("event reminders sent",
		logger.Int("count", len(ids)),
	)

	return len(ids), nil
}
