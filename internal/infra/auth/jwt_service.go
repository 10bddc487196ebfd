// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"gatekeeper/config"
	"gatekeeper/internal/domain/service"
)

// localDevSecret is only ever used when env.env is "local" and no secret is
// configured. Any other environment must provide AUTH_JWTSECRET.
const localDevSecret = "gatekeeper-local-dev-secret"

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret   string        // Secret key for signing tokens. Process-wide, never rotated at runtime.
	tokenTTL time.Duration // Time-to-live for issued tokens.
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config, logger *slog.Logger) (service.TokenService, error) {
	secret := ""
	ttl := time.Hour
	if cfg != nil && cfg.Auth != nil {
		secret = cfg.Auth.JWTSecret
		if cfg.Auth.TokenTTL > 0 {
			ttl = cfg.Auth.TokenTTL
		}
	}

	if secret == "" {
		if cfg == nil || cfg.Env.Env != "local" {
			return nil, errors.New("jwt secret must be provided")
		}
		logger.Warn("JWT secret not configured, falling back to the built-in local development secret")
		secret = localDevSecret
	}

	return &jwtService{
		secret:   secret,
		tokenTTL: ttl,
	}, nil
}

// Issue creates a signed token encoding the user identity and an absolute expiry of now + ttl.
func (s *jwtService) Issue(userID uuid.UUID, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": userID.String(),     // Subject (who the token is for)
		"iat": now.Unix(),          // Issued At
		"exp": now.Add(ttl).Unix(), // Expiration Time
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// Validate checks the signature and expiry of a token string and returns its claims.
// Expiry and signature failures map to distinct sentinel errors so callers can
// log the difference without exposing it to clients.
func (s *jwtService) Validate(tokenString string) (*service.Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	}, jwt.WithExpirationRequired()) // a token without exp would otherwise validate forever
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, errors.Wrapf(service.ErrTokenExpired, "token validation failed: %v", err)
		}

		return nil, errors.Wrapf(service.ErrTokenInvalid, "token validation failed: %v", err)
	}
	if !token.Valid {
		return nil, errors.WithStack(service.ErrTokenInvalid)
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.Wrap(service.ErrTokenInvalid, "unexpected claims type")
	}

	subject, err := mapClaims.GetSubject()
	if err != nil {
		return nil, errors.Wrap(service.ErrTokenInvalid, "subject missing from token")
	}
	userID, err := uuid.Parse(subject)
	if err != nil {
		return nil, errors.Wrap(service.ErrTokenInvalid, "subject is not a valid user id")
	}

	expiresAt, err := mapClaims.GetExpirationTime()
	if err != nil {
		return nil, errors.Wrap(service.ErrTokenInvalid, "expiry missing from token")
	}

	return &service.Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: expiresAt,
		},
	}, nil
}

// TokenTTL returns the configured lifetime for newly issued tokens.
func (s *jwtService) TokenTTL() time.Duration {
	return s.tokenTTL
}
