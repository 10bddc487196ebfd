// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

import "errors"

// ErrInvalidHashFormat is returned when a stored hash cannot be parsed by the
// hashing algorithm. A mismatching password is a normal false result, not an error.
var ErrInvalidHashFormat = errors.New("invalid password hash format")

// PasswordHasher defines the interface for password hashing and verification.
// This abstracts the underlying hashing algorithm (e.g., bcrypt), keeping the domain pure.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password. Each call salts
	// independently, so two hashes of the same password differ.
	Hash(password string) (string, error)

	// Check compares a plaintext password with a stored hash. A mismatch returns
	// (false, nil); a malformed hash returns ErrInvalidHashFormat.
	Check(password, hash string) (bool, error)
}
