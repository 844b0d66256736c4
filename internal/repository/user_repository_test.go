package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"motor-backend/internal/domain"
	"motor-backend/internal/repository"
)

func TestPostgresUserRepository(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	testDB := SetupTestDB(t)
	defer testDB.Cleanup(t)

	repo := repository.NewPostgresUserRepository(testDB.Pool)
	ctx := context.Background()

	t.Run("create assigns id and timestamps", func(t *testing.T) {
		testDB.TruncateTables(t, "users")

		user := &domain.User{Username: "alice", PasswordHash: "$2a$10$hash"}
		err := repo.Create(ctx, user)

		require.NoError(t, err)
		assert.NotZero(t, user.ID)
		assert.False(t, user.CreatedAt.IsZero())
		assert.False(t, user.UpdatedAt.IsZero())
	})

	t.Run("get by username round-trips", func(t *testing.T) {
		testDB.TruncateTables(t, "users")

		created := &domain.User{Username: "bob", PasswordHash: "$2a$10$hash"}
		require.NoError(t, repo.Create(ctx, created))

		found, err := repo.GetByUsername(ctx, "bob")
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, created.ID, found.ID)
		assert.Equal(t, "bob", found.Username)
		assert.Equal(t, "$2a$10$hash", found.PasswordHash)
	})

	t.Run("get by username returns nil when absent", func(t *testing.T) {
		testDB.TruncateTables(t, "users")

		found, err := repo.GetByUsername(ctx, "nobody")
		require.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("get by id returns nil when absent", func(t *testing.T) {
		testDB.TruncateTables(t, "users")

		found, err := repo.GetByID(ctx, 999999)
		require.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("duplicate username is rejected", func(t *testing.T) {
		testDB.TruncateTables(t, "users")

		require.NoError(t, repo.Create(ctx, &domain.User{Username: "carol", PasswordHash: "x"}))
		err := repo.Create(ctx, &domain.User{Username: "carol", PasswordHash: "y"})
		assert.Error(t, err)
	})
}
