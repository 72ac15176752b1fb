package cookie_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/uigen/pkg/cookie"
)

func responseCookie(t *testing.T, w *httptest.ResponseRecorder, name string) *http.Cookie {
	t.Helper()
	for _, c := range w.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	t.Fatalf("cookie %q not set", name)
	return nil
}

func TestDefaultSecurityAttributes(t *testing.T) {
	t.Parallel()

	m := cookie.New()
	w := httptest.NewRecorder()
	require.NoError(t, m.Set(w, "test", "value"))

	cookieStr := w.Header().Get("Set-Cookie")
	require.NotEmpty(t, cookieStr)

	assert.Contains(t, cookieStr, "HttpOnly", "Cookies should have HttpOnly by default")
	assert.Contains(t, cookieStr, "SameSite=Lax", "Cookies should have SameSite=Lax by default")
	assert.Contains(t, cookieStr, "Path=/", "Cookies should have Path=/ by default")
	assert.NotContains(t, cookieStr, "Secure", "Cookies should not be Secure by default")
}

func TestManager_SetOptions(t *testing.T) {
	t.Parallel()

	m := cookie.New(cookie.WithDomain("example.com"))
	expires := time.Now().Add(24 * time.Hour).UTC().Truncate(time.Second)

	w := httptest.NewRecorder()
	require.NoError(t, m.Set(w, "opts", "value",
		cookie.WithSecure(true),
		cookie.WithExpires(expires),
		cookie.WithMaxAge(3600),
		cookie.WithSameSite(http.SameSiteStrictMode),
		cookie.WithPath("/app"),
	))

	c := responseCookie(t, w, "opts")
	assert.Equal(t, "value", c.Value)
	assert.True(t, c.Secure)
	assert.True(t, c.HttpOnly)
	assert.Equal(t, "example.com", c.Domain)
	assert.Equal(t, "/app", c.Path)
	assert.Equal(t, 3600, c.MaxAge)
	assert.Equal(t, http.SameSiteStrictMode, c.SameSite)
	assert.True(t, expires.Equal(c.Expires), "expires %v != %v", expires, c.Expires)

	// Per-call options must not leak into the defaults
	assert.False(t, m.Defaults().Secure)
	assert.Equal(t, "/", m.Defaults().Path)
}

func TestManager_SetInvalid(t *testing.T) {
	t.Parallel()

	m := cookie.New()

	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"empty name", "", "value"},
		{"name with space", "bad name", "value"},
		{"value with quote", "quoted", "a\"b"},
		{"value with semicolon", "semi", "a;b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			w := httptest.NewRecorder()
			err := m.Set(w, tt.key, tt.value)
			require.ErrorIs(t, err, cookie.ErrInvalidCookie)
			assert.Empty(t, w.Header().Get("Set-Cookie"))
		})
	}
}

func TestManager_Get(t *testing.T) {
	t.Parallel()

	m := cookie.New()

	t.Run("present", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.AddCookie(&http.Cookie{Name: "test", Value: "value"})

		v, err := m.Get(r, "test")
		require.NoError(t, err)
		assert.Equal(t, "value", v)
	})

	t.Run("empty value", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set("Cookie", "test=")

		v, err := m.Get(r, "test")
		require.NoError(t, err)
		assert.Empty(t, v)
	})

	t.Run("missing", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		_, err := m.Get(r, "test")
		require.ErrorIs(t, err, cookie.ErrCookieNotFound)
	})
}

func TestManager_Delete(t *testing.T) {
	t.Parallel()

	m := cookie.New(cookie.WithDomain("example.com"), cookie.WithSecure(true))
	w := httptest.NewRecorder()
	m.Delete(w, "gone")

	c := responseCookie(t, w, "gone")
	assert.Empty(t, c.Value)
	assert.Equal(t, -1, c.MaxAge)
	assert.Equal(t, "/", c.Path)
	assert.Equal(t, "example.com", c.Domain)
	assert.True(t, c.Secure)
	assert.True(t, c.Expires.Before(time.Unix(1, 0)))
}

func TestStore(t *testing.T) {
	t.Parallel()

	m := cookie.New(cookie.WithDomain("example.com"))

	t.Run("set uses explicit options", func(t *testing.T) {
		w := httptest.NewRecorder()
		store := m.Store(w, httptest.NewRequest(http.MethodGet, "/", nil))

		require.NoError(t, store.Set("s", "v", cookie.Options{Path: "/", HttpOnly: false, SameSite: http.SameSiteNoneMode, Secure: true}))

		c := responseCookie(t, w, "s")
		assert.Equal(t, "v", c.Value)
		assert.False(t, c.HttpOnly)
		assert.True(t, c.Secure)
		assert.Equal(t, http.SameSiteNoneMode, c.SameSite)
		assert.Equal(t, "example.com", c.Domain, "empty domain falls back to manager default")
	})

	t.Run("set invalid", func(t *testing.T) {
		store := m.Store(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
		require.ErrorIs(t, store.Set("bad name", "v", m.Defaults()), cookie.ErrInvalidCookie)
	})

	t.Run("get reads request", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.AddCookie(&http.Cookie{Name: "s", Value: "from-request"})
		store := m.Store(httptest.NewRecorder(), r)

		v, err := store.Get("s")
		require.NoError(t, err)
		assert.Equal(t, "from-request", v)

		_, err = store.Get("other")
		require.ErrorIs(t, err, cookie.ErrCookieNotFound)
	})

	t.Run("delete is idempotent", func(t *testing.T) {
		w := httptest.NewRecorder()
		store := m.Store(w, httptest.NewRequest(http.MethodGet, "/", nil))

		require.NoError(t, store.Delete("s", cookie.Options{}))
		require.NoError(t, store.Delete("s", cookie.Options{}))
		assert.Len(t, w.Result().Cookies(), 2)
	})

	t.Run("delete targets the given path", func(t *testing.T) {
		scoped := cookie.NewFromConfig(cookie.Config{Path: "/app"})
		w := httptest.NewRecorder()
		store := scoped.Store(w, httptest.NewRequest(http.MethodGet, "/", nil))

		require.NoError(t, store.Delete("s", cookie.Options{Path: "/", HttpOnly: true}))

		c := responseCookie(t, w, "s")
		assert.Equal(t, "/", c.Path)
		assert.Equal(t, -1, c.MaxAge)
		assert.True(t, c.HttpOnly)
	})

	t.Run("delete falls back to manager defaults", func(t *testing.T) {
		w := httptest.NewRecorder()
		store := m.Store(w, httptest.NewRequest(http.MethodGet, "/", nil))

		require.NoError(t, store.Delete("s", cookie.Options{}))

		c := responseCookie(t, w, "s")
		assert.Equal(t, "/", c.Path)
		assert.Equal(t, "example.com", c.Domain)
	})
}

func TestNewFromConfig(t *testing.T) {
	t.Parallel()

	m := cookie.NewFromConfig(cookie.Config{Path: "/app", Domain: "example.com"}, cookie.WithSecure(true))
	d := m.Defaults()
	assert.Equal(t, "/app", d.Path)
	assert.Equal(t, "example.com", d.Domain)
	assert.True(t, d.Secure)
	assert.True(t, d.HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, d.SameSite)

	empty := cookie.NewFromConfig(cookie.Config{})
	assert.Equal(t, "/", empty.Defaults().Path)
}
