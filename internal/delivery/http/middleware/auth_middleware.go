package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "gatekeeper/internal/delivery/context"
	domainerrors "gatekeeper/internal/domain/errors"
	"gatekeeper/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthMiddleware provides middleware for bearer token authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, logger: logger}
}

// Authenticate is the core middleware function that validates the bearer token.
// Every rejection surfaces as the same ErrUnauthorized; the reason (missing
// header, bad signature, expired token) is only visible in the logs.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		log := deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)

		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			log.Info("Request rejected: missing Authorization header",
				slog.String("path", c.Request().URL.Path))

			return errors.WithStack(domainerrors.ErrUnauthorized)
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			log.Info("Request rejected: Authorization header is not a Bearer token",
				slog.String("path", c.Request().URL.Path))

			return errors.WithStack(domainerrors.ErrUnauthorized)
		}

		claims, err := m.tokenSvc.Validate(tokenString)
		if err != nil {
			// Expired and invalid tokens are logged separately but answered identically.
			if errors.Is(err, service.ErrTokenExpired) {
				log.Info("Request rejected: token expired",
					slog.String("path", c.Request().URL.Path))
			} else {
				log.Warn("Request rejected: token invalid",
					slog.String("path", c.Request().URL.Path),
					slog.Any("error", err))
			}

			return domainerrors.ErrUnauthorized.WrapMessage("token validation failed")
		}

		// Set user info on the context for handlers to use
		c.Set("userID", claims.UserID)

		return next(c)
	}
}
