package repository

import (
	"context"
	"encoding/json"
	"fmt"
)

// Keys of the per-user key-value store
const (
	KeyWords            = "words"
	KeyScore            = "score"
	KeyLevel            = "level"
	KeyLastNotification = "lastNotification"
)

// Store is a per-user key-value store of JSON documents
type Store interface {
	// Get returns the stored value and false when the key is absent
	Get(ctx context.Context, userID int64, key string) ([]byte, bool, error)
	Set(ctx context.Context, userID int64, key string, value []byte) error
}

// UserRepository defines user data operations
type UserRepository interface {
	IsAuthorized(ctx context.Context, userID int64) (bool, error)
	AuthorizeUser(ctx context.Context, userID int64) error
	EnsureUserExists(ctx context.Context, userID int64) error
	ListAuthorizedUsers(ctx context.Context) ([]int64, error)
}

// GetJSON decodes the value under key into dst.
// dst is left untouched when the key is absent, so callers preset defaults.
func GetJSON(ctx context.Context, s Store, userID int64, key string, dst any) error {
	raw, ok, err := s.Get(ctx, userID, key)
	if err != nil {
		return fmt.Errorf("get %s: %w", key, err)
	}
	if !ok {
		return nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("decode %s: %w", key, err)
	}
	return nil
}

// SetJSON encodes v and stores it under key
func SetJSON(ctx context.Context, s Store, userID int64, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := s.Set(ctx, userID, key, raw); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}
