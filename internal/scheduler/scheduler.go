package scheduler

import (
	"context"
	"time"

	"github.com/wb-go/wbf/logger"
)

type reminderSender interface {
	SendReminders(ctx context.Context) (int, error)
}

// Scheduler periodically dispatches reminders for events starting soon.
type Scheduler struct {
	registrationService reminderSender
	interval            time.Duration
	logger              logger.Logger
}

func New(
	registrationService reminderSender,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		registrationService: registrationService,
		interval:            interval,
		logger:              logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("reminder scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("reminder scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	sent, err := s.registrationService.SendReminders(ctx)
	if err != nil {
		s.logger.Error("failed to send event reminders",
			logger.String("error", err.Error()),
		)
		return
	}

	if sent > 0 {
		s.logger.Info("reminder batch dispatched",
			logger.Int("count", sent),
		)
	}
}
