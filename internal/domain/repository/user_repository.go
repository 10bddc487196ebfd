// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"gatekeeper/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the operations the credential service needs from user persistence.
// The application layer depends on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByEmail retrieves a single user by their email address.
	// Returns ErrUserNotFound when no user exists with that email.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new user entity to the storage. The store's unique index
	// on email is the final authority for uniqueness; a violation surfaces as
	// the domain's ErrEmailAlreadyInUse even when a prior lookup saw no user.
	Create(ctx context.Context, user *entity.User) error
}
