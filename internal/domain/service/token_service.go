package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Token verification failures are distinguishable internally for logging, but
// the HTTP boundary collapses both to a single generic unauthorized response.
var (
	// ErrTokenExpired indicates a well-formed, correctly signed token whose expiry has passed.
	ErrTokenExpired = errors.New("token has expired")

	// ErrTokenInvalid indicates a token that is malformed, tampered with, or signed with the wrong key.
	ErrTokenInvalid = errors.New("token is invalid")
)

// Claims defines the custom claims carried by issued tokens.
type Claims struct {
	UserID uuid.UUID
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and verifying bearer tokens.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// Issue creates a signed token for the given user, valid for ttl from now.
	Issue(userID uuid.UUID, ttl time.Duration) (string, error)

	// Validate checks signature and expiry of a token string and returns its claims.
	// Failures are classified as ErrTokenExpired or ErrTokenInvalid.
	Validate(tokenString string) (*Claims, error)

	// TokenTTL returns the configured lifetime for newly issued tokens.
	TokenTTL() time.Duration
}
