package service

import (
	"context"

	"wordsaver/internal/domain"

	"github.com/samber/lo"
)

// DefaultReviewSize is the number of words in a daily review
const DefaultReviewSize = 10

// ReviewService builds the word list views
type ReviewService struct {
	vocab *VocabularyService
	size  int
}

// NewReviewService creates a new review service
func NewReviewService(vocab *VocabularyService, size int) *ReviewService {
	if size <= 0 {
		size = DefaultReviewSize
	}
	return &ReviewService{vocab: vocab, size: size}
}

// Groups returns the vocabulary grouped by recency
func (s *ReviewService) Groups(ctx context.Context, userID int64) ([]domain.Group, error) {
	words, err := s.vocab.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	return domain.GroupByRecency(words, s.vocab.now().In(s.vocab.loc)), nil
}

// DailyReview returns a fresh random sample of the vocabulary
func (s *ReviewService) DailyReview(ctx context.Context, userID int64) ([]domain.WordEntry, error) {
	words, err := s.vocab.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	return SelectDailyReview(words, s.size), nil
}

// SelectDailyReview returns at most size entries sampled uniformly without
// replacement. Each call yields an independent sample.
func SelectDailyReview(entries []domain.WordEntry, size int) []domain.WordEntry {
	if size <= 0 || len(entries) == 0 {
		return []domain.WordEntry{}
	}
	return lo.Samples(entries, size)
}
