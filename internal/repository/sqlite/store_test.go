package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestStore_GetSet(t *testing.T) {
	ctx := context.Background()
	store := NewStore(openTestDB(t))

	value, found, err := store.Get(ctx, 1, "words")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, value)

	require.NoError(t, store.Set(ctx, 1, "words", []byte(`["a"]`)))
	require.NoError(t, store.Set(ctx, 1, "words", []byte(`["a","b"]`)))

	value, found, err = store.Get(ctx, 1, "words")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `["a","b"]`, string(value))

	// values are scoped per user
	_, found, err = store.Get(ctx, 2, "words")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestOpen_CreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "wordsaver.db")

	db, err := Open(path)
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, NewStore(db).Set(context.Background(), 5, "score", []byte("3")))
	assert.FileExists(t, path)
}

func TestUserRepo(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepo(openTestDB(t))

	authorized, err := repo.IsAuthorized(ctx, 10)
	require.NoError(t, err)
	assert.False(t, authorized)

	require.NoError(t, repo.EnsureUserExists(ctx, 10))
	require.NoError(t, repo.EnsureUserExists(ctx, 10))
	require.NoError(t, repo.EnsureUserExists(ctx, 30))

	authorized, err = repo.IsAuthorized(ctx, 10)
	require.NoError(t, err)
	assert.False(t, authorized)

	require.NoError(t, repo.AuthorizeUser(ctx, 30))
	require.NoError(t, repo.AuthorizeUser(ctx, 20))

	authorized, err = repo.IsAuthorized(ctx, 20)
	require.NoError(t, err)
	assert.True(t, authorized)

	ids, err := repo.ListAuthorizedUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int64{20, 30}, ids)
}
