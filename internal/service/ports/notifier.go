package ports

import (
	"context"

	"github.com/gedeanz/ifrs-volunteers/internal/domain"
)

type Notifier interface {
	NotifyRegistrationConfirmed(ctx context.Context, v *domain.Volunteer, e *domain.Event)
	NotifyRegistrationCancelled(ctx context.Context, v *domain.Volunteer, e *domain.Event)
	NotifyEventReminder(ctx context.Context, v *domain.Volunteer, e *domain.Event)
}
