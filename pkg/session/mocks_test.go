package session_test

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/dmitrymomot/uigen/pkg/cookie"
	"github.com/dmitrymomot/uigen/pkg/session"
)

// MockCookieStore is a mock implementation of session.CookieStore.
type MockCookieStore struct {
	mock.Mock
}

func (m *MockCookieStore) Set(name, value string, opts cookie.Options) error {
	args := m.Called(name, value, opts)
	return args.Error(0)
}

func (m *MockCookieStore) Get(name string) (string, error) {
	args := m.Called(name)
	return args.String(0), args.Error(1)
}

func (m *MockCookieStore) Delete(name string, opts cookie.Options) error {
	args := m.Called(name, opts)
	return args.Error(0)
}

// MockTokenCodec is a mock implementation of session.TokenCodec.
type MockTokenCodec struct {
	mock.Mock
}

func (m *MockTokenCodec) Encode(p session.Payload, issuedAt time.Time) (string, error) {
	args := m.Called(p, issuedAt)
	return args.String(0), args.Error(1)
}

func (m *MockTokenCodec) Decode(token string) (*session.Payload, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*session.Payload), args.Error(1)
}

// cookieReaderFunc adapts a function to session.CookieReader.
type cookieReaderFunc func(name string) (*http.Cookie, error)

func (f cookieReaderFunc) Cookie(name string) (*http.Cookie, error) { return f(name) }

// fakeClock is a manually advanced time source.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

var ctx = context.Background()
