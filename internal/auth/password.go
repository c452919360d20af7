// Package auth handles password hashing and the JWT session cookie.
package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidPassword = errors.New("invalid password")
	ErrPasswordTooLong = errors.New("password exceeds maximum length of 72 bytes")
)

// HashPassword creates a bcrypt hash of the password. Length rules live in
// the validation package; only bcrypt's own 72-byte ceiling is enforced here.
func HashPassword(password string, cost int) (string, error) {
	if len(password) > 72 {
		return "", ErrPasswordTooLong
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword compares a password with its hash.
func CheckPassword(password, hash string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrInvalidPassword
		}
		return err
	}
	return nil
}

// PasswordHasher adapts the package functions to the hashing capability the
// service layer depends on.
type PasswordHasher struct {
	Cost int
}

func (h PasswordHasher) Hash(plaintext string) (string, error) {
	return HashPassword(plaintext, h.Cost)
}

func (h PasswordHasher) Verify(plaintext, digest string) bool {
	return CheckPassword(plaintext, digest) == nil
}
