package repository_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"motor-backend/internal/repository"
)

func TestPostgresSessionRepository(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	testDB := SetupTestDB(t)
	defer testDB.Cleanup(t)

	repo := repository.NewPostgresSessionRepository(testDB.Pool)
	ctx := context.Background()

	t.Run("create and get anonymous session", func(t *testing.T) {
		testDB.TruncateTables(t, "sessions")

		token := uuid.New().String()
		created, err := repo.Create(ctx, token)
		require.NoError(t, err)
		assert.Equal(t, token, created.Token)
		assert.Nil(t, created.UserID)

		found, err := repo.Get(ctx, token)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.True(t, found.Viewer().Anonymous())
	})

	t.Run("get returns nil for unknown token", func(t *testing.T) {
		found, err := repo.Get(ctx, uuid.New().String())
		require.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("set user binds the session", func(t *testing.T) {
		testDB.TruncateTables(t, "users", "sessions")
		user := testDB.CreateTestUser(t, "alice")

		token := uuid.New().String()
		_, err := repo.Create(ctx, token)
		require.NoError(t, err)

		require.NoError(t, repo.SetUser(ctx, token, user.ID))

		found, err := repo.Get(ctx, token)
		require.NoError(t, err)
		require.NotNil(t, found)
		viewer := found.Viewer()
		assert.False(t, viewer.Anonymous())
		assert.Equal(t, user.ID, viewer.UserID)
	})

	t.Run("clear user keeps the session row", func(t *testing.T) {
		testDB.TruncateTables(t, "users", "sessions")
		user := testDB.CreateTestUser(t, "bob")

		token := uuid.New().String()
		_, err := repo.Create(ctx, token)
		require.NoError(t, err)
		require.NoError(t, repo.SetUser(ctx, token, user.ID))

		require.NoError(t, repo.ClearUser(ctx, token))

		found, err := repo.Get(ctx, token)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.True(t, found.Viewer().Anonymous())
	})

	t.Run("binding an unknown session fails", func(t *testing.T) {
		testDB.TruncateTables(t, "users", "sessions")
		user := testDB.CreateTestUser(t, "carol")

		err := repo.SetUser(ctx, uuid.New().String(), user.ID)
		assert.Error(t, err)
	})

	t.Run("clearing an unknown session fails", func(t *testing.T) {
		testDB.TruncateTables(t, "sessions")

		err := repo.ClearUser(ctx, uuid.New().String())
		assert.Error(t, err)
	})

	t.Run("delete idle removes stale sessions", func(t *testing.T) {
		testDB.TruncateTables(t, "sessions")

		stale := uuid.New().String()
		fresh := uuid.New().String()
		_, err := repo.Create(ctx, stale)
		require.NoError(t, err)
		_, err = repo.Create(ctx, fresh)
		require.NoError(t, err)

		_, err = testDB.Pool.Exec(ctx, `
			UPDATE sessions SET updated_at = NOW() - INTERVAL '2 days'
			WHERE token = $1
		`, stale)
		require.NoError(t, err)

		removed, err := repo.DeleteIdle(ctx, 24*3600)
		require.NoError(t, err)
		assert.Equal(t, int64(1), removed)

		found, err := repo.Get(ctx, fresh)
		require.NoError(t, err)
		assert.NotNil(t, found)
	})
}
