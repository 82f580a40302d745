package service

import (
	"context"
	"fmt"

	"wordsaver/internal/domain"
	"wordsaver/internal/repository"

	"go.uber.org/zap"
)

// LevelUpFunc is called once each time a user reaches a new level
type LevelUpFunc func(ctx context.Context, userID int64, level int)

// AwardResult describes the outcome of a score award
type AwardResult struct {
	Points    int
	Progress  domain.Progress
	LeveledUp bool
}

// ScoreService handles score and level bookkeeping
type ScoreService struct {
	store     repository.Store
	logger    *zap.Logger
	locks     *userLocks
	listeners []LevelUpFunc
}

// NewScoreService creates a new score service
func NewScoreService(store repository.Store, logger *zap.Logger) *ScoreService {
	return &ScoreService{
		store:  store,
		logger: logger,
		locks:  newUserLocks(),
	}
}

// OnLevelUp registers a level-up listener
func (s *ScoreService) OnLevelUp(fn LevelUpFunc) {
	s.listeners = append(s.listeners, fn)
}

// Progress returns the user's score and level
func (s *ScoreService) Progress(ctx context.Context, userID int64) (domain.Progress, error) {
	release := s.locks.lock(userID)
	defer release()
	return s.load(ctx, userID)
}

// Award adds points to the user's score and raises the level when a
// 100-point boundary is crossed. The level never goes down.
// Level-up listeners run after the user's lock is released.
func (s *ScoreService) Award(ctx context.Context, userID int64, points int) (AwardResult, error) {
	if points < 0 {
		return AwardResult{}, fmt.Errorf("points must not be negative: %d", points)
	}

	result, err := s.award(ctx, userID, points)
	if err != nil {
		return AwardResult{}, err
	}

	if result.LeveledUp {
		s.logger.Info("User leveled up",
			zap.Int64("user_id", userID),
			zap.Int("level", result.Progress.Level),
			zap.Int("score", result.Progress.Score),
		)
		for _, fn := range s.listeners {
			fn(ctx, userID, result.Progress.Level)
		}
	}

	return result, nil
}

func (s *ScoreService) award(ctx context.Context, userID int64, points int) (AwardResult, error) {
	release := s.locks.lock(userID)
	defer release()

	progress, err := s.load(ctx, userID)
	if err != nil {
		return AwardResult{}, err
	}

	progress.Score += points
	if err := repository.SetJSON(ctx, s.store, userID, repository.KeyScore, progress.Score); err != nil {
		return AwardResult{}, err
	}

	result := AwardResult{Points: points, Progress: progress}

	if level := domain.LevelForScore(progress.Score); level > progress.Level {
		if err := repository.SetJSON(ctx, s.store, userID, repository.KeyLevel, level); err != nil {
			return AwardResult{}, err
		}
		result.Progress.Level = level
		result.LeveledUp = true
	}

	return result, nil
}

func (s *ScoreService) load(ctx context.Context, userID int64) (domain.Progress, error) {
	p := domain.DefaultProgress()
	if err := repository.GetJSON(ctx, s.store, userID, repository.KeyScore, &p.Score); err != nil {
		return p, err
	}
	if err := repository.GetJSON(ctx, s.store, userID, repository.KeyLevel, &p.Level); err != nil {
		return p, err
	}
	return p, nil
}
