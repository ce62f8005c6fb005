package identity

import "github.com/quickbite/backend/internal/domain/identity"

// RegisterInput contains input for user registration
type RegisterInput struct {
	Username string
	Password string
}

// LoginInput contains input for user login
type LoginInput struct {
	Username string
	Password string
}

// LoginResult contains the issued token and the authenticated user
type LoginResult struct {
	AccessToken string
	User        *identity.User
}

// UpdateMeInput contains input for a user updating their own account.
// Nil fields are left unchanged.
type UpdateMeInput struct {
	Username *string
	Password *string
}
