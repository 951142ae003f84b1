// Package security provides password hashing and bearer tokens.
package security

import (
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/petowners/petregistry/internal/core/domain"
)

// BcryptHasher hashes passwords with bcrypt at the given cost.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher returns a hasher; a cost outside bcrypt's range falls back
// to bcrypt.DefaultCost.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

// Hash rejects passwords longer than bcrypt's 72-byte input limit with a
// password validation error.
func (h *BcryptHasher) Hash(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", domain.ValidationFailed(map[string]string{
			"password": "password must be at most 72 bytes long",
		})
	}
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Compare returns domain.ErrInvalidCredentials on mismatch.
func (h *BcryptHasher) Compare(hash, plaintext string) error {
	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) != nil {
		return domain.ErrInvalidCredentials
	}
	return nil
}
