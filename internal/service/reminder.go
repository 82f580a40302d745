package service

import (
	"context"
	"time"

	"wordsaver/internal/repository"

	"go.uber.org/zap"
)

// ReminderInterval is the minimum time between two review reminders
const ReminderInterval = 24 * time.Hour

// Notifier delivers the daily review reminder
type Notifier interface {
	NotifyReview(ctx context.Context, userID int64) error
}

// ReminderService sends throttled daily review reminders
type ReminderService struct {
	store    repository.Store
	users    repository.UserRepository
	notifier Notifier
	logger   *zap.Logger
	now      func() time.Time
}

// NewReminderService creates a new reminder service
func NewReminderService(store repository.Store, users repository.UserRepository, notifier Notifier, logger *zap.Logger) *ReminderService {
	return &ReminderService{
		store:    store,
		users:    users,
		notifier: notifier,
		logger:   logger,
		now:      time.Now,
	}
}

// ShouldRemind reports whether more than ReminderInterval passed since the
// user's last reminder
func (s *ReminderService) ShouldRemind(ctx context.Context, userID int64) (bool, error) {
	var last int64
	if err := repository.GetJSON(ctx, s.store, userID, repository.KeyLastNotification, &last); err != nil {
		return false, err
	}
	return s.now().UnixMilli()-last > ReminderInterval.Milliseconds(), nil
}

// RemindUser sends the reminder if due and records when it was sent
func (s *ReminderService) RemindUser(ctx context.Context, userID int64) (bool, error) {
	due, err := s.ShouldRemind(ctx, userID)
	if err != nil || !due {
		return false, err
	}

	sentAt := s.now().UnixMilli()
	if err := s.notifier.NotifyReview(ctx, userID); err != nil {
		return false, err
	}

	if err := repository.SetJSON(ctx, s.store, userID, repository.KeyLastNotification, sentAt); err != nil {
		return true, err
	}
	return true, nil
}

// RemindAll sends due reminders to every authorized user.
// A failure for one user doesn't stop the others.
func (s *ReminderService) RemindAll(ctx context.Context) error {
	users, err := s.users.ListAuthorizedUsers(ctx)
	if err != nil {
		s.logger.Error("Failed to list users for reminders", zap.Error(err))
		return err
	}

	sent := 0
	for _, userID := range users {
		ok, err := s.RemindUser(ctx, userID)
		if err != nil {
			s.logger.Error("Failed to send review reminder",
				zap.Int64("user_id", userID),
				zap.Error(err),
			)
			continue
		}
		if ok {
			sent++
		}
	}

	s.logger.Info("Review reminders processed",
		zap.Int("users", len(users)),
		zap.Int("sent", sent),
	)
	return nil
}
