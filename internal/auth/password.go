package auth

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidPassword  = errors.New("invalid password")
	ErrPasswordTooShort = errors.New("password must be at least 8 characters")
)

const (
	minPasswordLength = 8
	editorHashCost    = 12
)

// HashPassword produces the EDITOR_PASSWORD_HASH value for an editor password.
func HashPassword(password string) (string, error) {
	if len(password) < minPasswordLength {
		return "", ErrPasswordTooShort
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), editorHashCost)
	if err != nil {
		return "", fmt.Errorf("hash editor password: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword compares a submitted password with the configured hash.
// A mismatch is ErrInvalidPassword; any other error means the configured hash
// itself is unusable.
func VerifyPassword(hashedPassword, password string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	switch {
	case err == nil:
		return nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return ErrInvalidPassword
	default:
		return fmt.Errorf("editor password hash: %w", err)
	}
}
