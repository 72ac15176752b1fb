package auth

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

type memoryRecord struct {
	user *User
	hash []byte
}

// MemoryStorage is an in-process Storage for development and tests.
type MemoryStorage struct {
	mu      sync.RWMutex
	byEmail map[string]*memoryRecord
	byID    map[uuid.UUID]*memoryRecord
}

// NewMemoryStorage creates an empty MemoryStorage.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		byEmail: make(map[string]*memoryRecord),
		byID:    make(map[uuid.UUID]*memoryRecord),
	}
}

func (s *MemoryStorage) CreateUser(_ context.Context, user *User, passwordHash []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byEmail[user.Email]; ok {
		return ErrEmailAlreadyExists
	}

	u := *user
	rec := &memoryRecord{user: &u, hash: append([]byte(nil), passwordHash...)}
	s.byEmail[u.Email] = rec
	s.byID[u.ID] = rec
	return nil
}

func (s *MemoryStorage) GetUserByEmail(_ context.Context, email string) (*User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.byEmail[email]
	if !ok {
		return nil, ErrUserNotFound
	}
	u := *rec.user
	return &u, nil
}

func (s *MemoryStorage) GetPasswordHash(_ context.Context, userID uuid.UUID) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.byID[userID]
	if !ok {
		return nil, ErrUserNotFound
	}
	return append([]byte(nil), rec.hash...), nil
}
