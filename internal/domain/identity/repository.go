package identity

import "context"

// UserRepository defines persistence operations for users
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	Update(ctx context.Context, user *User) error
	FindByID(ctx context.Context, id uint) (*User, error)
	FindByUsername(ctx context.Context, username string) (*User, error)
	ExistsByUsername(ctx context.Context, username string, excludeID uint) (bool, error)
	FindAll(ctx context.Context) ([]User, error)
}
