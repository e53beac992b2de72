// Package auth is a placeholder login gate. It checks one configured
// username/password pair and is not a user management system.
package auth

import (
	"crypto/subtle"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"go.uber.org/zap"
)

// Placeholder credentials used when no password hash is configured.
const (
	PlaceholderUser     = "user"
	PlaceholderPassword = "password"
)

// Verifier decides whether a username/password pair may log in.
type Verifier interface {
	Verify(username, password string) bool
}

// VerifierFunc adapts a plain function to Verifier.
type VerifierFunc func(username, password string) bool

func (f VerifierFunc) Verify(username, password string) bool {
	return f(username, password)
}

// PasswordVerifier accepts a single user whose password matches a bcrypt hash.
type PasswordVerifier struct {
	user string
	hash []byte
}

// NewPasswordVerifier builds a verifier for user and a bcrypt hash. An empty
// hash falls back to the placeholder password and logs a warning.
func NewPasswordVerifier(user, hash string, log *zap.Logger) (*PasswordVerifier, error) {
	if hash == "" {
		log.Warn("No password hash configured, using placeholder credentials",
			zap.String("user", user))
		h, err := bcrypt.GenerateFromPassword([]byte(PlaceholderPassword), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash placeholder password: %w", err)
		}
		return &PasswordVerifier{user: user, hash: h}, nil
	}
	if _, err := bcrypt.Cost([]byte(hash)); err != nil {
		return nil, fmt.Errorf("invalid password hash: %w", err)
	}
	return &PasswordVerifier{user: user, hash: []byte(hash)}, nil
}

func (v *PasswordVerifier) Verify(username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(v.user)) == 1
	passOK := bcrypt.CompareHashAndPassword(v.hash, []byte(password)) == nil
	return userOK && passOK
}

// HashPassword returns a bcrypt hash suitable for the auth.hash setting.
func HashPassword(password string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(h), nil
}
