package account

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/uigen/handler"
	"github.com/dmitrymomot/uigen/pkg/binder"
)

// Router mounts the account endpoints:
//
//	POST /sign-up   register and start a session
//	POST /sign-in   authenticate and start a session
//	POST /sign-out  end the session
//	GET  /session   current session or 401
//
//	r.Mount("/api/auth", svc.Router())
func (s *Service) Router() chi.Router {
	r := chi.NewRouter()
	onError := handler.LoggingErrorHandler(s.logger)

	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		_ = handler.JSONError(handler.NewHTTPError(http.StatusMethodNotAllowed, "method_not_allowed")).Render(w, r)
	})

	r.Post("/sign-up", handler.Wrap(s.signUp,
		handler.WithBinders[CredentialsRequest](binder.JSON()),
		handler.WithErrorHandler[CredentialsRequest](onError),
	))
	r.Post("/sign-in", handler.Wrap(s.signIn,
		handler.WithBinders[CredentialsRequest](binder.JSON()),
		handler.WithErrorHandler[CredentialsRequest](onError),
	))
	r.Post("/sign-out", handler.Wrap(s.signOut,
		handler.WithErrorHandler[struct{}](onError),
	))
	r.Get("/session", handler.Wrap(s.currentSession,
		handler.WithErrorHandler[struct{}](onError),
	))

	return r
}
