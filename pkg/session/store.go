package session

import (
	"net/http"

	"github.com/dmitrymomot/uigen/pkg/cookie"
)

// CookieStore is the per-request cookie handle session operations write to
// and read from. *cookie.Store implements it.
//
// Get must return cookie.ErrCookieNotFound when the cookie is absent; any
// other error is treated as an infrastructure failure. Delete receives the
// same Path and Domain the cookie was set with.
type CookieStore interface {
	Set(name, value string, opts cookie.Options) error
	Get(name string) (string, error)
	Delete(name string, opts cookie.Options) error
}

// CookieReader gives read access to inbound request cookies.
// *http.Request implements it.
type CookieReader interface {
	Cookie(name string) (*http.Cookie, error)
}

var _ CookieStore = (*cookie.Store)(nil)
