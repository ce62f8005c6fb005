package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/quickbite/backend/internal/infrastructure/config"
)

// Common errors
var (
	ErrInvalidToken   = errors.New("invalid token")
	ErrExpiredToken   = errors.New("token has expired")
	ErrMissingSubject = errors.New("missing subject in claims")
)

// TokenService issues and verifies the bearer tokens shared by all services.
// Tokens are HS256-signed with a secret every service knows, so any service
// can verify a token locally without a network call. The claims carry only
// the username; role and identity are resolved against the auth service on
// each request.
type TokenService struct {
	secret     []byte
	expiration time.Duration
}

// NewTokenService creates a token service from the JWT configuration
func NewTokenService(cfg config.JWTConfig) *TokenService {
	return &TokenService{
		secret:     []byte(cfg.Secret),
		expiration: cfg.Expiration,
	}
}

// Generate signs a token for the given username
func (s *TokenService) Generate(username string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   username,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.expiration)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify checks the token signature and expiry and returns the subject
// username. It never consults storage; callers decide whether the subject
// still exists.
func (s *TokenService) Verify(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrExpiredToken
		}
		return "", ErrInvalidToken
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return "", ErrInvalidToken
	}
	if claims.Subject == "" {
		return "", ErrMissingSubject
	}
	return claims.Subject, nil
}

// Expiration returns the configured token lifetime
func (s *TokenService) Expiration() time.Duration {
	return s.expiration
}
