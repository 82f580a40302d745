package postgres

import (
	"context"
	"database/sql"
)

// Store implements repository.Store on the kv_store table
type Store struct {
	db *sql.DB
}

// NewStore creates a new key-value store
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Get returns the value stored for the user under key
func (s *Store) Get(ctx context.Context, userID int64, key string) ([]byte, bool, error) {
	var value []byte
	query := `SELECT value FROM kv_store WHERE user_id = $1 AND key = $2`
	err := s.db.QueryRowContext(ctx, query, userID, key).Scan(&value)

	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	return value, true, nil
}

// Set writes value under key, replacing any previous value
func (s *Store) Set(ctx context.Context, userID int64, key string, value []byte) error {
	query := `
		INSERT INTO kv_store (user_id, key, value, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (user_id, key)
		DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()
	`
	// lib/pq sends []byte as bytea, jsonb needs text
	_, err := s.db.ExecContext(ctx, query, userID, key, string(value))
	return err
}
