package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrymomot/uigen/pkg/logger"
)

const (
	// MinPasswordLength is the shortest password Register accepts.
	MinPasswordLength = 8
	// maxPasswordBytes is bcrypt's input limit.
	maxPasswordBytes = 72
)

// PasswordService registers and authenticates users by email and password.
type PasswordService struct {
	storage    Storage
	bcryptCost int
	logger     *slog.Logger
	now        func() time.Time

	// dummyHash keeps Authenticate timing similar for unknown emails.
	dummyHash []byte
}

type PasswordOption func(*PasswordService)

// WithPasswordLogger sets a custom logger for the service
func WithPasswordLogger(l *slog.Logger) PasswordOption {
	return func(s *PasswordService) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithBcryptCost sets the bcrypt cost for password hashing
func WithBcryptCost(cost int) PasswordOption {
	return func(s *PasswordService) {
		s.bcryptCost = cost
	}
}

// NewPasswordService creates a new password authentication service
func NewPasswordService(storage Storage, opts ...PasswordOption) (*PasswordService, error) {
	s := &PasswordService{
		storage:    storage,
		bcryptCost: bcrypt.DefaultCost,
		logger:     logger.Discard(),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With(logger.Component("password"))

	hash, err := bcrypt.GenerateFromPassword([]byte("dummy-password"), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare password hasher: %w", err)
	}
	s.dummyHash = hash

	return s, nil
}

// Register creates a new user with email and password
func (s *PasswordService) Register(ctx context.Context, email, password string) (*User, error) {
	email, err := normalizeEmail(email)
	if err != nil {
		return nil, err
	}
	if err := validatePassword(password); err != nil {
		return nil, err
	}

	_, err = s.storage.GetUserByEmail(ctx, email)
	if err == nil {
		return nil, ErrEmailAlreadyExists
	}
	if !errors.Is(err, ErrUserNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &User{
		ID:        uuid.New(),
		Email:     email,
		CreatedAt: s.now(),
	}

	if err := s.storage.CreateUser(ctx, user, hash); err != nil {
		if errors.Is(err, ErrEmailAlreadyExists) {
			return nil, ErrEmailAlreadyExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.InfoContext(ctx, "user registered", logger.UserID(user.ID.String()))
	return user, nil
}

// Authenticate verifies credentials and returns the user.
// Unknown emails and wrong passwords both yield ErrInvalidCredentials.
func (s *PasswordService) Authenticate(ctx context.Context, email, password string) (*User, error) {
	email, err := normalizeEmail(email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	user, err := s.storage.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			_ = bcrypt.CompareHashAndPassword(s.dummyHash, []byte(password))
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	hash, err := s.storage.GetPasswordHash(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get password hash: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword(hash, []byte(password)); err != nil {
		s.logger.DebugContext(ctx, "password mismatch", logger.UserID(user.ID.String()))
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

func normalizeEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", ErrInvalidEmail
	}
	return email, nil
}

func validatePassword(password string) error {
	if utf8.RuneCountInString(password) < MinPasswordLength {
		return fmt.Errorf("%w: at least %d characters required", ErrWeakPassword, MinPasswordLength)
	}
	if len(password) > maxPasswordBytes {
		return fmt.Errorf("%w: at most %d bytes allowed", ErrWeakPassword, maxPasswordBytes)
	}
	return nil
}
