package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/ventoryhq/ventory/internal/models"
)

var (
	ErrInvalidEmail           = errors.New("a valid email is required")
	ErrRegistrationNotEnabled = errors.New("registration requires password auth mode")
)

// OpenAuthenticator issues an identity for any submitted email without
// checking a credential. This is a deliberate trust boundary for development
// and internal deployments: anyone who can reach the login endpoint can claim
// any identity. Production deployments should run in password mode instead.
type OpenAuthenticator struct{}

// NewOpenAuthenticator creates the no-credential authenticator.
func NewOpenAuthenticator() *OpenAuthenticator {
	return &OpenAuthenticator{}
}

// ValidateCredential accepts any credential, including an empty one.
func (a *OpenAuthenticator) ValidateCredential(string) error {
	return nil
}

// Register is not supported in open mode; there are no accounts to create.
func (a *OpenAuthenticator) Register(context.Context, string, string) (*models.User, error) {
	return nil, ErrRegistrationNotEnabled
}

// Authenticate trusts the submitted email and returns a transient user that
// is never persisted. The credential is ignored.
func (a *OpenAuthenticator) Authenticate(_ context.Context, email, _ string) (*models.User, error) {
	if !strings.Contains(email, "@") {
		return nil, ErrInvalidEmail
	}
	return &models.User{Email: email}, nil
}
