package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"wordsaver/internal/domain"
	"wordsaver/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ReviewPoints is awarded the first time a saved word is spoken or translated
const ReviewPoints = 1

// VocabularyService handles the user's saved words
type VocabularyService struct {
	store  repository.Store
	scores *ScoreService
	logger *zap.Logger
	locks  *userLocks

	loc   *time.Location
	now   func() time.Time
	newID func() string
}

// VocabularyOption configures a VocabularyService
type VocabularyOption func(*VocabularyService)

// WithClock overrides the clock used to date new entries
func WithClock(now func() time.Time) VocabularyOption {
	return func(s *VocabularyService) { s.now = now }
}

// WithLocation sets the time zone defining calendar days
func WithLocation(loc *time.Location) VocabularyOption {
	return func(s *VocabularyService) { s.loc = loc }
}

// WithIDGenerator overrides entry id generation
func WithIDGenerator(newID func() string) VocabularyOption {
	return func(s *VocabularyService) { s.newID = newID }
}

// NewVocabularyService creates a new vocabulary service
func NewVocabularyService(store repository.Store, scores *ScoreService, logger *zap.Logger, opts ...VocabularyOption) *VocabularyService {
	s := &VocabularyService{
		store:  store,
		scores: scores,
		logger: logger,
		locks:  newUserLocks(),
		loc:    time.Local,
		now:    time.Now,
		newID:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// List returns the vocabulary in insertion order
func (s *VocabularyService) List(ctx context.Context, userID int64) (domain.Vocabulary, error) {
	release := s.locks.lock(userID)
	defer release()
	return s.load(ctx, userID)
}

// Exists checks case-insensitively whether word is saved
func (s *VocabularyService) Exists(ctx context.Context, userID int64, word string) (bool, error) {
	words, err := s.List(ctx, userID)
	if err != nil {
		return false, err
	}
	return words.Contains(strings.TrimSpace(word)), nil
}

// Add saves a new word preserving its casing
func (s *VocabularyService) Add(ctx context.Context, userID int64, word string) (domain.WordEntry, error) {
	word = strings.TrimSpace(word)
	if !domain.IsEnglishWord(word) {
		return domain.WordEntry{}, fmt.Errorf("%w: %q", domain.ErrInvalidWord, word)
	}

	release := s.locks.lock(userID)
	defer release()

	words, err := s.load(ctx, userID)
	if err != nil {
		return domain.WordEntry{}, err
	}

	if words.Contains(word) {
		return domain.WordEntry{}, fmt.Errorf("%w: %q", domain.ErrDuplicateWord, word)
	}

	entry := domain.NewWordEntry(s.newID(), word, s.now().In(s.loc))
	words = append(words, entry)

	if err := repository.SetJSON(ctx, s.store, userID, repository.KeyWords, words); err != nil {
		return domain.WordEntry{}, err
	}

	s.logger.Info("Word saved",
		zap.Int64("user_id", userID),
		zap.String("word", word),
		zap.String("entry_id", entry.ID),
	)

	return entry, nil
}

// Remove deletes the entry with the given id
func (s *VocabularyService) Remove(ctx context.Context, userID int64, id string) error {
	return s.remove(ctx, userID, func(v domain.Vocabulary) int { return v.IndexOfID(id) })
}

// RemoveWord deletes the first entry matching word case-insensitively
func (s *VocabularyService) RemoveWord(ctx context.Context, userID int64, word string) error {
	word = strings.TrimSpace(word)
	return s.remove(ctx, userID, func(v domain.Vocabulary) int { return v.IndexOfWord(word) })
}

func (s *VocabularyService) remove(ctx context.Context, userID int64, find func(domain.Vocabulary) int) error {
	release := s.locks.lock(userID)
	defer release()

	words, err := s.load(ctx, userID)
	if err != nil {
		return err
	}

	i := find(words)
	if i < 0 {
		return domain.ErrEntryNotFound
	}
	removed := words[i]

	if err := repository.SetJSON(ctx, s.store, userID, repository.KeyWords, words.Without(i)); err != nil {
		return err
	}

	s.logger.Info("Word removed",
		zap.Int64("user_id", userID),
		zap.String("word", removed.Word),
		zap.String("entry_id", removed.ID),
	)
	return nil
}

// MarkReviewed flags the entry holding exactly word as reviewed and awards
// ReviewPoints. It returns nil when the word is missing or already reviewed.
func (s *VocabularyService) MarkReviewed(ctx context.Context, userID int64, word string) (*AwardResult, error) {
	flagged, err := s.flagReviewed(ctx, userID, word)
	if err != nil || !flagged {
		return nil, err
	}

	result, err := s.scores.Award(ctx, userID, ReviewPoints)
	if err != nil {
		return nil, fmt.Errorf("award review points: %w", err)
	}
	return &result, nil
}

func (s *VocabularyService) flagReviewed(ctx context.Context, userID int64, word string) (bool, error) {
	release := s.locks.lock(userID)
	defer release()

	words, err := s.load(ctx, userID)
	if err != nil {
		return false, err
	}

	for i := range words {
		if words[i].Word != word {
			continue
		}
		if words[i].Reviewed {
			return false, nil
		}
		words[i].Reviewed = true
		if err := repository.SetJSON(ctx, s.store, userID, repository.KeyWords, words); err != nil {
			return false, err
		}
		return true, nil
	}
	return false, nil
}

func (s *VocabularyService) load(ctx context.Context, userID int64) (domain.Vocabulary, error) {
	words := domain.Vocabulary{}
	if err := repository.GetJSON(ctx, s.store, userID, repository.KeyWords, &words); err != nil {
		return nil, err
	}
	return words, nil
}
