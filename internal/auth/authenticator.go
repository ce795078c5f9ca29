package auth

import "context"

// Authenticator defines the interface for unlocking the tracker.
// This abstraction allows swapping the passcode check for another method
// without changing the service layer code.
type Authenticator interface {
	// Enabled reports whether a credential is required at all. When false
	// every caller is treated as the owner.
	Enabled() bool

	// Authenticate verifies the credential. Returns an error if it does not match.
	Authenticate(ctx context.Context, credential string) error
}
