package auth_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrymomot/uigen/pkg/auth"
)

type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) CreateUser(ctx context.Context, user *auth.User, passwordHash []byte) error {
	args := m.Called(ctx, user, passwordHash)
	return args.Error(0)
}

func (m *MockStorage) GetUserByEmail(ctx context.Context, email string) (*auth.User, error) {
	args := m.Called(ctx, email)
	if u := args.Get(0); u != nil {
		return u.(*auth.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockStorage) GetPasswordHash(ctx context.Context, userID uuid.UUID) ([]byte, error) {
	args := m.Called(ctx, userID)
	if h := args.Get(0); h != nil {
		return h.([]byte), args.Error(1)
	}
	return nil, args.Error(1)
}

func newService(t *testing.T, storage auth.Storage) *auth.PasswordService {
	t.Helper()
	svc, err := auth.NewPasswordService(storage, auth.WithBcryptCost(bcrypt.MinCost))
	require.NoError(t, err)
	return svc
}

func TestPasswordService_Register(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("creates user with normalized email", func(t *testing.T) {
		t.Parallel()
		storage := auth.NewMemoryStorage()
		svc := newService(t, storage)

		user, err := svc.Register(ctx, "  Alice@Example.COM ", "correct horse")
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, user.ID)
		assert.Equal(t, "alice@example.com", user.Email)
		assert.False(t, user.CreatedAt.IsZero())

		hash, err := storage.GetPasswordHash(ctx, user.ID)
		require.NoError(t, err)
		assert.NoError(t, bcrypt.CompareHashAndPassword(hash, []byte("correct horse")))
	})

	t.Run("rejects duplicate email", func(t *testing.T) {
		t.Parallel()
		svc := newService(t, auth.NewMemoryStorage())

		_, err := svc.Register(ctx, "bob@example.com", "password123")
		require.NoError(t, err)

		_, err = svc.Register(ctx, "BOB@example.com", "password456")
		assert.ErrorIs(t, err, auth.ErrEmailAlreadyExists)
	})

	t.Run("rejects invalid email", func(t *testing.T) {
		t.Parallel()
		svc := newService(t, auth.NewMemoryStorage())

		for _, email := range []string{"", "not-an-email", "Bob <bob@example.com>", "@example.com"} {
			_, err := svc.Register(ctx, email, "password123")
			assert.ErrorIs(t, err, auth.ErrInvalidEmail, email)
		}
	})

	t.Run("rejects weak passwords", func(t *testing.T) {
		t.Parallel()
		svc := newService(t, auth.NewMemoryStorage())

		_, err := svc.Register(ctx, "carol@example.com", "short")
		assert.ErrorIs(t, err, auth.ErrWeakPassword)

		_, err = svc.Register(ctx, "carol@example.com", strings.Repeat("a", 73))
		assert.ErrorIs(t, err, auth.ErrWeakPassword)
	})

	t.Run("propagates storage lookup error", func(t *testing.T) {
		t.Parallel()
		storage := &MockStorage{}
		dbErr := errors.New("connection refused")
		storage.On("GetUserByEmail", mock.Anything, "dave@example.com").Return(nil, dbErr)

		svc := newService(t, storage)
		_, err := svc.Register(ctx, "dave@example.com", "password123")
		require.Error(t, err)
		assert.ErrorIs(t, err, dbErr)
		storage.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("maps create race to duplicate", func(t *testing.T) {
		t.Parallel()
		storage := &MockStorage{}
		storage.On("GetUserByEmail", mock.Anything, "erin@example.com").Return(nil, auth.ErrUserNotFound)
		storage.On("CreateUser", mock.Anything, mock.AnythingOfType("*auth.User"), mock.Anything).
			Return(auth.ErrEmailAlreadyExists)

		svc := newService(t, storage)
		_, err := svc.Register(ctx, "erin@example.com", "password123")
		assert.ErrorIs(t, err, auth.ErrEmailAlreadyExists)
		storage.AssertExpectations(t)
	})
}

func TestPasswordService_Authenticate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	storage := auth.NewMemoryStorage()
	svc := newService(t, storage)
	registered, err := svc.Register(ctx, "frank@example.com", "password123")
	require.NoError(t, err)

	t.Run("valid credentials", func(t *testing.T) {
		t.Parallel()
		user, err := svc.Authenticate(ctx, " FRANK@example.com", "password123")
		require.NoError(t, err)
		assert.Equal(t, registered.ID, user.ID)
		assert.Equal(t, "frank@example.com", user.Email)
	})

	t.Run("wrong password", func(t *testing.T) {
		t.Parallel()
		user, err := svc.Authenticate(ctx, "frank@example.com", "password124")
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
		assert.Nil(t, user)
	})

	t.Run("unknown email", func(t *testing.T) {
		t.Parallel()
		user, err := svc.Authenticate(ctx, "nobody@example.com", "password123")
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
		assert.Nil(t, user)
	})

	t.Run("malformed email", func(t *testing.T) {
		t.Parallel()
		_, err := svc.Authenticate(ctx, "frank", "password123")
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})

	t.Run("storage failure is not masked", func(t *testing.T) {
		t.Parallel()
		failing := &MockStorage{}
		dbErr := errors.New("timeout")
		failing.On("GetUserByEmail", mock.Anything, "frank@example.com").Return(nil, dbErr)

		_, err := newService(t, failing).Authenticate(ctx, "frank@example.com", "password123")
		assert.ErrorIs(t, err, dbErr)
		assert.NotErrorIs(t, err, auth.ErrInvalidCredentials)
	})
}
