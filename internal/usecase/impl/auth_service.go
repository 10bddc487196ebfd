// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "gatekeeper/internal/delivery/context"
	"gatekeeper/internal/domain/entity"
	domainerrors "gatekeeper/internal/domain/errors"
	"gatekeeper/internal/domain/repository"
	"gatekeeper/internal/domain/service"
	"gatekeeper/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register orchestrates the complete user registration process:
// uniqueness pre-check, password hashing, persistence, token issuance.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email))

	// 1. Pre-check for an existing account. This is an optimization for a clean
	// error path, not a guarantee: the store's unique index on email stays the
	// final authority under concurrent registrations.
	_, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err == nil {
		srv.log(ctx).Warn("Registration rejected, email already registered", slog.String("email", input.Email))

		return nil, domainerrors.ErrEmailAlreadyInUse.WrapMessage("registration failed")
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to look up email during registration")
	}

	// 2. Hash the password. bcrypt salts per call; hashing happens before the
	// single store write so a failure leaves no partial state.
	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash password during registration")
	}

	// 3. Persist. A unique-violation here (lost race against a concurrent
	// registration) surfaces from the repository as ErrEmailAlreadyInUse.
	newUser := &entity.User{
		Email:        input.Email,
		Name:         input.Name,
		PasswordHash: hashedPassword,
	}
	if err := srv.userRepo.Create(ctx, newUser); err != nil {
		srv.log(ctx).Warn("Failed to create user during registration", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create user during registration")
	}

	// 4. Issue the bearer token for the new identity.
	token, err := srv.tokenService.Issue(newUser.ID, srv.tokenService.TokenTTL())
	if err != nil {
		srv.log(ctx).Error("Failed to issue token during registration", slog.Any("userID", newUser.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue token during registration")
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", newUser.ID))

	return &usecase.AuthOutput{User: newUser, Token: token}, nil
}

// Login orchestrates the user login process: lookup, password verification, token issuance.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	srv.log(ctx).Debug("Starting login", slog.String("email", input.Email))

	// 1. Find the user. An unknown email maps to the same error as a wrong
	// password so responses carry no user-enumeration signal.
	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Login failed, unknown email", slog.String("email", input.Email))

			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, errors.Wrap(err, "failed to find user during login")
	}

	// 2. Check the password against the stored hash.
	ok, err := srv.hasher.Check(input.Password, user.PasswordHash)
	if err != nil {
		// A stored hash that bcrypt cannot parse is server-side corruption,
		// not a credential failure.
		srv.log(ctx).Error("Stored password hash unreadable", slog.Any("userID", user.ID), slog.Any("error", err))

		return nil, domainerrors.ErrInternalError.WrapMessage("stored credential unreadable")
	}
	if !ok {
		srv.log(ctx).Warn("Login failed, password mismatch", slog.String("email", input.Email))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	// 3. Issue a fresh token.
	token, err := srv.tokenService.Issue(user.ID, srv.tokenService.TokenTTL())
	if err != nil {
		srv.log(ctx).Error("Failed to issue token during login", slog.Any("userID", user.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue token during login")
	}

	srv.log(ctx).Debug("User logged in successfully", slog.Any("userID", user.ID))

	return &usecase.AuthOutput{User: user, Token: token}, nil
}
