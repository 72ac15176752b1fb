package auth

import (
	"context"
	"embed"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dmitrymomot/uigen/pkg/pg"
)

// Migrations holds the goose migrations for PostgresStorage under "migrations".
//
//go:embed migrations/*.sql
var Migrations embed.FS

// PostgresStorage is a Storage backed by the users table.
type PostgresStorage struct {
	pool *pgxpool.Pool
}

func NewPostgresStorage(pool *pgxpool.Pool) *PostgresStorage {
	return &PostgresStorage{pool: pool}
}

const (
	insertUserQuery   = `INSERT INTO users (id, email, password_hash, created_at) VALUES ($1, $2, $3, $4)`
	userByEmailQuery  = `SELECT id, email, created_at FROM users WHERE email = $1`
	passwordHashQuery = `SELECT password_hash FROM users WHERE id = $1`
)

func (s *PostgresStorage) CreateUser(ctx context.Context, user *User, passwordHash []byte) error {
	_, err := s.pool.Exec(ctx, insertUserQuery, user.ID, user.Email, passwordHash, user.CreatedAt)
	if err != nil {
		if pg.IsDuplicateKeyError(err) {
			return ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (s *PostgresStorage) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	var u User
	err := s.pool.QueryRow(ctx, userByEmailQuery, email).Scan(&u.ID, &u.Email, &u.CreatedAt)
	if err != nil {
		if pg.IsNotFoundError(err) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("select user: %w", err)
	}
	return &u, nil
}

func (s *PostgresStorage) GetPasswordHash(ctx context.Context, userID uuid.UUID) ([]byte, error) {
	var hash []byte
	err := s.pool.QueryRow(ctx, passwordHashQuery, userID).Scan(&hash)
	if err != nil {
		if pg.IsNotFoundError(err) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("select password hash: %w", err)
	}
	return hash, nil
}
