package ports

import (
	"context"
	"time"

	"github.com/gedeanz/ifrs-volunteers/internal/domain"
)

// RegistrationRepo is the registration ledger. Create enforces the event
// existence, uniqueness and capacity invariants inside a single transaction.
type RegistrationRepo interface {
	Create(ctx context.Context, eventID, volunteerID int64) (*domain.Registration, error)
	Delete(ctx context.Context, eventID, volunteerID int64) (bool, error)
	Exists(ctx context.Context, eventID, volunteerID int64) (bool, error)
	CountByEvent(ctx context.Context, eventID int64) (int, error)
	ListByVolunteer(ctx context.Context, volunteerID int64) ([]*domain.VolunteerRegistration, error)
	ListByEvent(ctx context.Context, eventID int64) ([]*domain.EventAttendee, error)
	DueReminders(ctx context.Context, within time.Duration) ([]*domain.ReminderTarget, error)
	MarkReminded(ctx context.Context, registrationIDs []int64) error
}
