package auth

import (
	"strings"
	"testing"

	"gatekeeper/config"
	"gatekeeper/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	password := "correct horse battery staple"
	hash, err := hasher.Hash(password)
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)

	// Verify the hash matches the original password
	ok, err := hasher.Check(password, hash)
	assert.NoError(t, err)
	assert.True(t, ok)
}

func TestBcryptHasher_HashesAreSalted(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)
	password := "same input twice"

	first, err := hasher.Hash(password)
	assert.NoError(t, err)
	second, err := hasher.Hash(password)
	assert.NoError(t, err)

	// Each call salts independently, so the hashes differ but both verify
	assert.NotEqual(t, first, second)

	ok, err := hasher.Check(password, first)
	assert.NoError(t, err)
	assert.True(t, ok)
	ok, err = hasher.Check(password, second)
	assert.NoError(t, err)
	assert.True(t, ok)
}

func TestBcryptHasher_CheckMismatch(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	hash, err := hasher.Hash("right password")
	assert.NoError(t, err)

	// A wrong password is a normal negative result, not an error
	ok, err := hasher.Check("wrong password", hash)
	assert.NoError(t, err)
	assert.False(t, ok)

	// Same for an empty password
	ok, err = hasher.Check("", hash)
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestBcryptHasher_CheckOverlongPassword(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	hash, err := hasher.Hash("right password")
	assert.NoError(t, err)

	// A password beyond bcrypt's 72-byte limit cannot match any hash; that is
	// a mismatch, not a server error.
	ok, err := hasher.Check(strings.Repeat("a", 80), hash)
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestBcryptHasher_CheckMalformedHash(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	// A stored value that is not a bcrypt hash is an error, not a mismatch
	ok, err := hasher.Check("any password", "not-a-bcrypt-hash")
	assert.False(t, ok)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, service.ErrInvalidHashFormat))

	ok, err = hasher.Check("any password", "")
	assert.False(t, ok)
	assert.True(t, errors.Is(err, service.ErrInvalidHashFormat))
}

func TestBcryptHasher_CostFromConfig(t *testing.T) {
	cfg := &config.Config{
		Auth: &config.AuthConfig{BcryptCost: 6},
	}
	hasher := NewBcryptHasher(cfg)

	hash, err := hasher.Hash("cost check")
	assert.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	assert.NoError(t, err)
	assert.Equal(t, 6, cost)
}

func TestBcryptHasher_CostOutOfRangeFallsBackToDefault(t *testing.T) {
	cfg := &config.Config{
		Auth: &config.AuthConfig{BcryptCost: 99},
	}
	hasher := NewBcryptHasher(cfg)

	hash, err := hasher.Hash("fallback cost")
	assert.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	assert.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}
