package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ventoryhq/ventory/internal/models"
)

// memUserStorage is an in-memory UserStorage for tests.
type memUserStorage struct {
	users map[string]*models.User
}

func newMemUserStorage() *memUserStorage {
	return &memUserStorage{users: make(map[string]*models.User)}
}

func (s *memUserStorage) CreateUser(_ context.Context, user *models.User) error {
	s.users[user.Email] = user
	return nil
}

func (s *memUserStorage) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	return s.users[email], nil
}

func TestPasswordAuthenticator(t *testing.T) {
	ctx := context.Background()

	t.Run("register and authenticate", func(t *testing.T) {
		a := NewPasswordAuthenticator(newMemUserStorage())

		user, err := a.Register(ctx, "alice@example.com", "correct horse battery")
		require.NoError(t, err)
		assert.Equal(t, "alice@example.com", user.Email)
		assert.NotEmpty(t, user.ID)
		assert.NotEqual(t, "correct horse battery", user.PasswordHash)

		got, err := a.Authenticate(ctx, "alice@example.com", "correct horse battery")
		require.NoError(t, err)
		assert.Equal(t, user.ID, got.ID)
	})

	t.Run("wrong password is rejected", func(t *testing.T) {
		a := NewPasswordAuthenticator(newMemUserStorage())

		_, err := a.Register(ctx, "alice@example.com", "correct horse battery")
		require.NoError(t, err)

		_, err = a.Authenticate(ctx, "alice@example.com", "wrong password!")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email is rejected", func(t *testing.T) {
		a := NewPasswordAuthenticator(newMemUserStorage())

		_, err := a.Authenticate(ctx, "nobody@example.com", "whatever12")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("weak password is rejected", func(t *testing.T) {
		a := NewPasswordAuthenticator(newMemUserStorage())

		_, err := a.Register(ctx, "alice@example.com", "short")
		assert.ErrorIs(t, err, ErrWeakPassword)
	})

	t.Run("duplicate email is rejected", func(t *testing.T) {
		a := NewPasswordAuthenticator(newMemUserStorage())

		_, err := a.Register(ctx, "alice@example.com", "correct horse battery")
		require.NoError(t, err)

		_, err = a.Register(ctx, "alice@example.com", "another password")
		assert.ErrorIs(t, err, ErrEmailExists)
	})
}

func TestOpenAuthenticator(t *testing.T) {
	ctx := context.Background()
	a := NewOpenAuthenticator()

	t.Run("trusts any email without a credential", func(t *testing.T) {
		user, err := a.Authenticate(ctx, "anyone@example.com", "")
		require.NoError(t, err)
		assert.Equal(t, "anyone@example.com", user.Email)
		assert.Empty(t, user.ID)
	})

	t.Run("rejects a non-email identity", func(t *testing.T) {
		_, err := a.Authenticate(ctx, "not-an-email", "")
		assert.ErrorIs(t, err, ErrInvalidEmail)
	})

	t.Run("registration is not available", func(t *testing.T) {
		_, err := a.Register(ctx, "anyone@example.com", "password123")
		assert.ErrorIs(t, err, ErrRegistrationNotEnabled)
	})
}
