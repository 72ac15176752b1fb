package cookie

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

// Manager writes, reads and deletes cookies with a shared set of default
// attributes.
type Manager struct {
	defaults Options
}

// New creates a Manager. Defaults are Path "/", HttpOnly and SameSite=Lax;
// opts override them.
func New(opts ...Option) *Manager {
	defaults := Options{
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}

	return &Manager{defaults: applyOptions(defaults, opts)}
}

// Defaults returns the manager's default cookie attributes.
func (m *Manager) Defaults() Options {
	return m.defaults
}

// Set writes a cookie using the manager defaults overridden by opts.
// It fails with ErrInvalidCookie when the name, value or attributes would
// produce a cookie the browser rejects.
func (m *Manager) Set(w http.ResponseWriter, name, value string, opts ...Option) error {
	return m.write(w, name, value, applyOptions(m.defaults, opts))
}

// Get returns the value of the named request cookie or ErrCookieNotFound.
func (m *Manager) Get(r *http.Request, name string) (string, error) {
	c, err := r.Cookie(name)
	if err != nil {
		if errors.Is(err, http.ErrNoCookie) {
			return "", ErrCookieNotFound
		}
		return "", err
	}
	return c.Value, nil
}

// Delete expires the named cookie. Deleting a cookie the client never had
// is harmless.
func (m *Manager) Delete(w http.ResponseWriter, name string) {
	expire(w, name, m.defaults)
}

// Store binds the manager to a single request/response pair.
func (m *Manager) Store(w http.ResponseWriter, r *http.Request) *Store {
	return &Store{mgr: m, w: w, r: r}
}

// expire overwrites the cookie scoped by o.Path and o.Domain with an
// already expired one.
func expire(w http.ResponseWriter, name string, o Options) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     o.Path,
		Domain:   o.Domain,
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: o.HttpOnly,
		SameSite: o.SameSite,
		Secure:   o.Secure,
	})
}

func (m *Manager) write(w http.ResponseWriter, name, value string, o Options) error {
	c := &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     o.Path,
		Domain:   o.Domain,
		MaxAge:   o.MaxAge,
		Expires:  o.Expires,
		Secure:   o.Secure,
		HttpOnly: o.HttpOnly,
		SameSite: o.SameSite,
	}
	if err := c.Valid(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidCookie, err)
	}

	http.SetCookie(w, c)
	return nil
}

// Store is a per-request cookie store. Writes go to the response, reads come
// from the inbound request, so a cookie set during a request is not visible
// to Get until the client sends it back.
type Store struct {
	mgr *Manager
	w   http.ResponseWriter
	r   *http.Request
}

// Set writes the cookie with exactly the given attributes; an empty Domain
// falls back to the manager default.
func (s *Store) Set(name, value string, opts Options) error {
	if opts.Domain == "" {
		opts.Domain = s.mgr.defaults.Domain
	}
	return s.mgr.write(s.w, name, value, opts)
}

// Get returns the request cookie value or ErrCookieNotFound.
func (s *Store) Get(name string) (string, error) {
	return s.mgr.Get(s.r, name)
}

// Delete expires the cookie on the response. opts must carry the Path and
// Domain the cookie was set with, otherwise the browser keeps the original;
// empty values fall back to the manager defaults.
func (s *Store) Delete(name string, opts Options) error {
	if opts.Path == "" {
		opts.Path = s.mgr.defaults.Path
	}
	if opts.Domain == "" {
		opts.Domain = s.mgr.defaults.Domain
	}
	expire(s.w, name, opts)
	return nil
}
