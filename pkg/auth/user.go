package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// User is a registered account.
type User struct {
	ID        uuid.UUID
	Email     string
	CreatedAt time.Time
}

// Storage persists users and their password hashes.
// GetUserByEmail must return ErrUserNotFound for unknown emails and
// CreateUser must return ErrEmailAlreadyExists for duplicates.
type Storage interface {
	CreateUser(ctx context.Context, user *User, passwordHash []byte) error
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	GetPasswordHash(ctx context.Context, userID uuid.UUID) ([]byte, error)
}
