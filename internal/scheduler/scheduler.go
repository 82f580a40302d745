package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron"
	"go.uber.org/zap"
)

// Reminder sends due review reminders
type Reminder interface {
	RemindAll(ctx context.Context) error
}

// Scheduler runs the periodic reminder sweep
type Scheduler struct {
	scheduler *gocron.Scheduler
	reminder  Reminder
	interval  time.Duration
	logger    *zap.Logger
}

// New creates a new scheduler instance
func New(reminder Reminder, interval time.Duration, loc *time.Location, logger *zap.Logger) *Scheduler {
	return &Scheduler{
		scheduler: gocron.NewScheduler(loc),
		reminder:  reminder,
		interval:  interval,
		logger:    logger,
	}
}

// Start schedules the sweep, running once immediately, without blocking
func (s *Scheduler) Start(ctx context.Context) error {
	_, err := s.scheduler.Every(s.interval).SingletonMode().Do(func() {
		if err := s.reminder.RemindAll(ctx); err != nil {
			s.logger.Error("Reminder sweep failed", zap.Error(err))
		}
	})
	if err != nil {
		return fmt.Errorf("failed to schedule reminders: %w", err)
	}

	s.scheduler.StartAsync()
	s.logger.Info("Reminder scheduler started", zap.Duration("interval", s.interval))
	return nil
}

// Stop terminates all scheduled tasks
func (s *Scheduler) Stop() {
	s.scheduler.Stop()
}
