// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core entity in the system, representing a single registered account.
type User struct {
	ID           uuid.UUID // The unique identifier for the user, generated at creation.
	Email        string    // The user's login identifier. Exactly one user exists per email.
	Name         string    // The user's display name. Optional.
	PasswordHash string    // The bcrypt hash of the user's password. Never the plaintext, never serialized in responses.
	CreatedAt    time.Time // Timestamp of when this user account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this user's data.
}
