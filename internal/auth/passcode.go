package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidPasscode = errors.New("invalid passcode")
	ErrWeakPasscode    = errors.New("passcode must be at least 4 characters")
)

// MinPasscodeLength is the shortest passcode HashPasscode accepts.
const MinPasscodeLength = 4

// PasscodeAuthenticator implements single-user passcode authentication using bcrypt.
type PasscodeAuthenticator struct {
	hash []byte
}

// NewPasscodeAuthenticator creates an authenticator for a bcrypt hash.
// An empty hash disables the lock.
func NewPasscodeAuthenticator(hash string) *PasscodeAuthenticator {
	return &PasscodeAuthenticator{hash: []byte(strings.TrimSpace(hash))}
}

// Enabled reports whether a passcode hash is configured.
func (a *PasscodeAuthenticator) Enabled() bool {
	return len(a.hash) > 0
}

// Authenticate compares the passcode against the stored hash.
func (a *PasscodeAuthenticator) Authenticate(_ context.Context, credential string) error {
	if !a.Enabled() {
		return nil
	}
	if err := bcrypt.CompareHashAndPassword(a.hash, []byte(credential)); err != nil {
		return ErrInvalidPasscode
	}
	return nil
}

// HashPasscode returns the bcrypt hash to store in configuration.
func HashPasscode(passcode string) (string, error) {
	if len(passcode) < MinPasscodeLength {
		return "", ErrWeakPasscode
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(passcode), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash passcode: %w", err)
	}
	return string(hashed), nil
}
