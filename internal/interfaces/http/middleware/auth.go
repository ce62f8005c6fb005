package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/quickbite/backend/internal/domain/identity"
	"github.com/quickbite/backend/internal/domain/shared"
	"github.com/quickbite/backend/internal/infrastructure/auth"
	"github.com/quickbite/backend/internal/infrastructure/remote"
	"github.com/quickbite/backend/internal/interfaces/http/dto"
)

const principalKey = "principal"

// Principal is the authenticated caller, rebuilt on every request. Services
// other than authd never persist it; the auth service stays the single
// source of truth for who exists and what role they hold.
type Principal struct {
	ID       uint
	Username string
	Role     identity.Role
}

// PrincipalSource turns a verified token subject into a live principal.
// The auth service resolves against its own users table; the other services
// resolve over the wire.
type PrincipalSource interface {
	Resolve(ctx context.Context, username string) (*Principal, error)
}

// RepositorySource resolves principals from the local users table
type RepositorySource struct {
	userRepo identity.UserRepository
}

// NewRepositorySource creates a PrincipalSource backed by a user repository
func NewRepositorySource(userRepo identity.UserRepository) *RepositorySource {
	return &RepositorySource{userRepo: userRepo}
}

// Resolve implements PrincipalSource
func (s *RepositorySource) Resolve(ctx context.Context, username string) (*Principal, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	return &Principal{ID: user.ID, Username: user.Username, Role: user.Role}, nil
}

// RemoteSource resolves principals against the auth service
type RemoteSource struct {
	authClient *remote.AuthClient
}

// NewRemoteSource creates a PrincipalSource backed by the auth service
func NewRemoteSource(authClient *remote.AuthClient) *RemoteSource {
	return &RemoteSource{authClient: authClient}
}

// Resolve implements PrincipalSource
func (s *RemoteSource) Resolve(ctx context.Context, username string) (*Principal, error) {
	ref, err := s.authClient.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	role, ok := identity.ParseRole(ref.Role)
	if !ok {
		role = identity.RoleClient
	}
	return &Principal{ID: ref.ID, Username: ref.Username, Role: role}, nil
}

// RequireAuth guards a route group. The token is verified locally (HS256
// signature and expiry, no network); the subject is then resolved through
// the source so deleted users are rejected even while their token is still
// within its lifetime. An unreachable auth service answers 503, never 401:
// "we could not check" must stay distinguishable from "you are not valid".
// An empty role list means any authenticated user.
func RequireAuth(tokens *auth.TokenService, source PrincipalSource, roles ...identity.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			abortWithError(c, http.StatusUnauthorized, dto.ErrCodeUnauthorized, "Missing or malformed authorization header")
			return
		}

		username, err := tokens.Verify(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			abortWithError(c, http.StatusUnauthorized, dto.ErrCodeUnauthorized, "Invalid or expired token")
			return
		}

		principal, err := source.Resolve(c.Request.Context(), username)
		if err != nil {
			switch {
			case errors.Is(err, shared.ErrNotFound):
				abortWithError(c, http.StatusUnauthorized, dto.ErrCodeUnauthorized, "Invalid or expired token")
			case errors.Is(err, shared.ErrUpstreamUnavailable):
				abortWithError(c, http.StatusServiceUnavailable, dto.ErrCodeUnavailable, "Authentication service is unavailable")
			default:
				abortWithError(c, http.StatusInternalServerError, dto.ErrCodeInternal, "Failed to resolve credentials")
			}
			return
		}

		if len(roles) > 0 && !roleAllowed(principal.Role, roles) {
			abortWithError(c, http.StatusForbidden, dto.ErrCodeForbidden, "Insufficient permissions")
			return
		}

		c.Set(principalKey, principal)
		c.Next()
	}
}

func roleAllowed(role identity.Role, allowed []identity.Role) bool {
	for _, a := range allowed {
		if role == a {
			return true
		}
	}
	return false
}

func abortWithError(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(code, message))
}

// GetPrincipal returns the authenticated caller set by RequireAuth
func GetPrincipal(c *gin.Context) (*Principal, bool) {
	value, ok := c.Get(principalKey)
	if !ok {
		return nil, false
	}
	principal, ok := value.(*Principal)
	return principal, ok
}
