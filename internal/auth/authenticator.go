package auth

import (
	"context"

	"github.com/ventoryhq/ventory/internal/models"
)

// Authenticator defines the interface for authentication implementations.
// This abstraction lets the server swap between the open (trust-any-email)
// mode and real credential checks without changing the handler code.
type Authenticator interface {
	// Register creates a new account with the given email and credential.
	// Returns the created user or an error if registration fails.
	Register(ctx context.Context, email, credential string) (*models.User, error)

	// Authenticate verifies the credential and returns the user on success.
	Authenticate(ctx context.Context, email, credential string) (*models.User, error)

	// ValidateCredential checks if the credential meets the
	// implementation's requirements.
	ValidateCredential(credential string) error
}
