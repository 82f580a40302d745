package testutil

import (
	"context"
	"encoding/json"
	"time"

	"wordsaver/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestEntry creates a test word entry dated on the given day
func NewTestEntry(id, word string, date time.Time, reviewed bool) domain.WordEntry {
	return domain.WordEntry{
		ID:       id,
		Word:     word,
		Date:     date.Format(domain.DateLayout),
		Reviewed: reviewed,
	}
}

// FixedClock returns a clock function that always reports t
func FixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// SeedWords writes entries into the store under the words key
func SeedWords(s *MemoryStore, userID int64, entries ...domain.WordEntry) {
	raw, err := json.Marshal(entries)
	if err != nil {
		panic(err)
	}
	_ = s.Set(context.Background(), userID, "words", raw)
}
