package identity

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/quickbite/backend/internal/domain/identity"
	"github.com/quickbite/backend/internal/domain/shared"
	"github.com/quickbite/backend/internal/infrastructure/auth"
)

// UserService handles user lookups and account management
type UserService struct {
	userRepo identity.UserRepository
	logger   *zap.Logger
}

// NewUserService creates a new user service
func NewUserService(userRepo identity.UserRepository, logger *zap.Logger) *UserService {
	return &UserService{userRepo: userRepo, logger: logger}
}

// GetByID returns a user by ID
func (s *UserService) GetByID(ctx context.Context, id uint) (*identity.User, error) {
	return s.userRepo.FindByID(ctx, id)
}

// GetByUsername returns a user by username
func (s *UserService) GetByUsername(ctx context.Context, username string) (*identity.User, error) {
	return s.userRepo.FindByUsername(ctx, username)
}

// List returns all users
func (s *UserService) List(ctx context.Context) ([]identity.User, error) {
	return s.userRepo.FindAll(ctx)
}

// UpdateMe applies a user's changes to their own account
func (s *UserService) UpdateMe(ctx context.Context, userID uint, input UpdateMeInput) (*identity.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.Username != nil && *input.Username != user.Username {
		taken, err := s.userRepo.ExistsByUsername(ctx, *input.Username, user.ID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, shared.NewDomainError("USERNAME_TAKEN", "Username is already registered")
		}
		user.Username = *input.Username
	}
	if input.Password != nil {
		hash, err := auth.HashPassword(*input.Password)
		if err != nil {
			s.logger.Error("Failed to hash password", zap.Error(err))
			return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to process password")
		}
		user.PasswordHash = hash
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		if errors.Is(err, shared.ErrAlreadyExists) {
			return nil, shared.NewDomainError("USERNAME_TAKEN", "Username is already registered")
		}
		return nil, err
	}

	s.logger.Info("User updated own account", zap.Uint("user_id", user.ID))
	return user, nil
}

// UpdateRole changes a user's role
func (s *UserService) UpdateRole(ctx context.Context, userID uint, roleValue string) (*identity.User, error) {
	role, ok := identity.ParseRole(roleValue)
	if !ok {
		return nil, shared.NewDomainError("INVALID_ROLE",
			fmt.Sprintf("Unknown role %q; valid roles are %v", roleValue, identity.Roles()))
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.Role = role
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("User role changed",
		zap.Uint("user_id", user.ID),
		zap.String("role", string(role)))
	return user, nil
}
