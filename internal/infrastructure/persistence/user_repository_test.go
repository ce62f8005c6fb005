package persistence

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/quickbite/backend/internal/domain/identity"
	"github.com/quickbite/backend/internal/domain/shared"
)

// setupUserTestDB creates an in-memory SQLite database for testing
func setupUserTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&identity.User{}))
	return db
}

func TestGormUserRepository_CreateAndFind(t *testing.T) {
	db := setupUserTestDB(t)
	repo := NewGormUserRepository(db)
	ctx := context.Background()

	user := &identity.User{Username: "alice", PasswordHash: "hash", Role: identity.RoleClient}
	require.NoError(t, repo.Create(ctx, user))
	assert.NotZero(t, user.ID)

	found, err := repo.FindByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)
	assert.Equal(t, identity.RoleClient, found.Role)

	byID, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", byID.Username)
}

func TestGormUserRepository_DuplicateUsername(t *testing.T) {
	db := setupUserTestDB(t)
	repo := NewGormUserRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &identity.User{Username: "alice", PasswordHash: "h", Role: identity.RoleClient}))

	err := repo.Create(ctx, &identity.User{Username: "alice", PasswordHash: "h2", Role: identity.RoleClient})
	assert.ErrorIs(t, err, shared.ErrAlreadyExists)
}

func TestGormUserRepository_FindMissing(t *testing.T) {
	db := setupUserTestDB(t)
	repo := NewGormUserRepository(db)
	ctx := context.Background()

	_, err := repo.FindByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, shared.ErrNotFound)

	_, err = repo.FindByID(ctx, 42)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestGormUserRepository_ExistsByUsername(t *testing.T) {
	db := setupUserTestDB(t)
	repo := NewGormUserRepository(db)
	ctx := context.Background()

	alice := &identity.User{Username: "alice", PasswordHash: "h", Role: identity.RoleClient}
	require.NoError(t, repo.Create(ctx, alice))

	exists, err := repo.ExistsByUsername(ctx, "alice", 0)
	require.NoError(t, err)
	assert.True(t, exists)

	// A user renaming to their own current name is not a conflict.
	exists, err = repo.ExistsByUsername(ctx, "alice", alice.ID)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestGormUserRepository_FindAll(t *testing.T) {
	db := setupUserTestDB(t)
	repo := NewGormUserRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &identity.User{Username: "bob", PasswordHash: "h", Role: identity.RoleClient}))
	require.NoError(t, repo.Create(ctx, &identity.User{Username: "admin", PasswordHash: "h", Role: identity.RoleSystemAdmin}))

	users, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "bob", users[0].Username)
}
