package identity

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/quickbite/backend/internal/domain/identity"
	"github.com/quickbite/backend/internal/domain/shared"
	"github.com/quickbite/backend/internal/infrastructure/auth"
)

// AuthService handles registration and login
type AuthService struct {
	userRepo identity.UserRepository
	tokens   *auth.TokenService
	logger   *zap.Logger
}

// NewAuthService creates a new authentication service
func NewAuthService(userRepo identity.UserRepository, tokens *auth.TokenService, logger *zap.Logger) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		tokens:   tokens,
		logger:   logger,
	}
}

// Register creates a new account with the client role. Uniqueness is decided
// by the users table, so two concurrent registrations of the same name
// resolve to exactly one winner.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*identity.User, error) {
	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		s.logger.Error("Failed to hash password", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to process password")
	}

	user := &identity.User{
		Username:     input.Username,
		PasswordHash: hash,
		Role:         identity.RoleClient,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, shared.ErrAlreadyExists) {
			s.logger.Warn("Registration for taken username", zap.String("username", input.Username))
			return nil, shared.NewDomainError("USERNAME_TAKEN", "Username is already registered")
		}
		return nil, err
	}

	s.logger.Info("User registered",
		zap.Uint("user_id", user.ID),
		zap.String("username", user.Username))
	return user, nil
}

// Login authenticates a user and issues a token
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	user, err := s.userRepo.FindByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			s.logger.Warn("Login for unknown username", zap.String("username", input.Username))
			return nil, shared.NewDomainError("INVALID_CREDENTIALS", "Invalid username or password")
		}
		return nil, err
	}

	if !auth.CheckPassword(user.PasswordHash, input.Password) {
		s.logger.Warn("Invalid password attempt", zap.String("username", input.Username))
		return nil, shared.NewDomainError("INVALID_CREDENTIALS", "Invalid username or password")
	}

	token, err := s.tokens.Generate(user.Username)
	if err != nil {
		s.logger.Error("Failed to sign token", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to issue token")
	}

	s.logger.Info("User logged in", zap.Uint("user_id", user.ID))
	return &LoginResult{AccessToken: token, User: user}, nil
}
