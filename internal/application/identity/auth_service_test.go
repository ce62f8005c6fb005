package identity

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/quickbite/backend/internal/domain/identity"
	"github.com/quickbite/backend/internal/domain/shared"
	"github.com/quickbite/backend/internal/infrastructure/auth"
	"github.com/quickbite/backend/internal/infrastructure/config"
	"github.com/quickbite/backend/internal/infrastructure/persistence"
)

func setupAuthService(t *testing.T) (*AuthService, *UserService) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	// One shared connection so every goroutine sees the same in-memory DB.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&identity.User{}))

	repo := persistence.NewGormUserRepository(db)
	tokens := auth.NewTokenService(config.JWTConfig{
		Secret:     "test-secret-key-for-unit-tests-only",
		Expiration: time.Hour,
	})
	logger := zap.NewNop()
	return NewAuthService(repo, tokens, logger), NewUserService(repo, logger)
}

func TestRegisterAndLogin(t *testing.T) {
	authSvc, _ := setupAuthService(t)
	ctx := context.Background()

	user, err := authSvc.Register(ctx, RegisterInput{Username: "alice", Password: "pw12345"})
	require.NoError(t, err)
	assert.Equal(t, identity.RoleClient, user.Role)

	result, err := authSvc.Login(ctx, LoginInput{Username: "alice", Password: "pw12345"})
	require.NoError(t, err)
	assert.NotEmpty(t, result.AccessToken)
	assert.Equal(t, user.ID, result.User.ID)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	authSvc, _ := setupAuthService(t)
	ctx := context.Background()

	_, err := authSvc.Register(ctx, RegisterInput{Username: "alice", Password: "pw12345"})
	require.NoError(t, err)

	_, err = authSvc.Register(ctx, RegisterInput{Username: "alice", Password: "other"})
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "USERNAME_TAKEN", domainErr.Code)
}

func TestConcurrentRegistrationOneWinner(t *testing.T) {
	authSvc, _ := setupAuthService(t)
	ctx := context.Background()

	const attempts = 8
	var wg sync.WaitGroup
	errs := make([]error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = authSvc.Register(ctx, RegisterInput{Username: "race", Password: "pw12345"})
		}(i)
	}
	wg.Wait()

	var won int
	for _, err := range errs {
		if err == nil {
			won++
		}
	}
	assert.Equal(t, 1, won, "exactly one concurrent registration must win")
}

func TestLoginWrongPassword(t *testing.T) {
	authSvc, _ := setupAuthService(t)
	ctx := context.Background()

	_, err := authSvc.Register(ctx, RegisterInput{Username: "alice", Password: "pw12345"})
	require.NoError(t, err)

	_, err = authSvc.Login(ctx, LoginInput{Username: "alice", Password: "wrong"})
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_CREDENTIALS", domainErr.Code)

	// Unknown usernames produce the same error code.
	_, err = authSvc.Login(ctx, LoginInput{Username: "nobody", Password: "pw12345"})
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_CREDENTIALS", domainErr.Code)
}

func TestUpdateMe(t *testing.T) {
	authSvc, userSvc := setupAuthService(t)
	ctx := context.Background()

	alice, err := authSvc.Register(ctx, RegisterInput{Username: "alice", Password: "pw12345"})
	require.NoError(t, err)
	_, err = authSvc.Register(ctx, RegisterInput{Username: "bob", Password: "pw12345"})
	require.NoError(t, err)

	taken := "bob"
	_, err = userSvc.UpdateMe(ctx, alice.ID, UpdateMeInput{Username: &taken})
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "USERNAME_TAKEN", domainErr.Code)

	fresh := "alice2"
	newPw := "newpw123"
	updated, err := userSvc.UpdateMe(ctx, alice.ID, UpdateMeInput{Username: &fresh, Password: &newPw})
	require.NoError(t, err)
	assert.Equal(t, "alice2", updated.Username)

	_, err = authSvc.Login(ctx, LoginInput{Username: "alice2", Password: "newpw123"})
	assert.NoError(t, err)
}

func TestUpdateRole(t *testing.T) {
	authSvc, userSvc := setupAuthService(t)
	ctx := context.Background()

	alice, err := authSvc.Register(ctx, RegisterInput{Username: "alice", Password: "pw12345"})
	require.NoError(t, err)

	updated, err := userSvc.UpdateRole(ctx, alice.ID, "restaurant_admin")
	require.NoError(t, err)
	assert.Equal(t, identity.RoleRestaurantAdmin, updated.Role)

	_, err = userSvc.UpdateRole(ctx, alice.ID, "superuser")
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_ROLE", domainErr.Code)

	_, err = userSvc.UpdateRole(ctx, 9999, "client")
	assert.ErrorIs(t, err, shared.ErrNotFound)
}
