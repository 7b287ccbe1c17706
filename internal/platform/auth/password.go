package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// DefaultBcryptCost balances hashing latency against brute-force resistance.
const DefaultBcryptCost = 12

// ErrPasswordMismatch signals that the supplied password does not match the stored hash.
var ErrPasswordMismatch = errors.New("auth: password mismatch")

// PasswordHasher hashes and verifies user passwords with bcrypt.
type PasswordHasher struct {
	cost int
}

// NewPasswordHasher builds a hasher with the given cost, clamped to bcrypt bounds.
func NewPasswordHasher(cost int) PasswordHasher {
	if cost < bcrypt.MinCost {
		cost = DefaultBcryptCost
	}
	if cost > bcrypt.MaxCost {
		cost = bcrypt.MaxCost
	}
	return PasswordHasher{cost: cost}
}

// Hash derives the bcrypt hash for the given password.
func (h PasswordHasher) Hash(password string) (string, error) {
	if password == "" {
		return "", errors.New("auth: password is required")
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Compare checks the password against the stored hash.
func (h PasswordHasher) Compare(hash, password string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrPasswordMismatch
		}
		return err
	}
	return nil
}
