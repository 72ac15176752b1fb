// Package cookie wraps net/http cookies with a Manager that carries default
// attributes (Path "/", HttpOnly, SameSite=Lax) and a per-request Store.
//
//	man := cookie.New(cookie.WithDomain("example.com"))
//
//	http.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
//	    store := man.Store(w, r)
//	    _ = store.Set("theme", "dark", man.Defaults())
//	    v, err := store.Get("theme")
//	    _ = store.Delete("theme", man.Defaults())
//	})
//
// Set validates cookies before writing them and returns ErrInvalidCookie
// for names, values or attributes a browser would drop. Get returns
// ErrCookieNotFound when the request carries no such cookie.
//
// Config can be populated from the environment (COOKIE_PATH, COOKIE_DOMAIN)
// and turned into a Manager with NewFromConfig.
package cookie
