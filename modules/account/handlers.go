package account

import (
	"errors"
	"net/http"
	"time"

	"github.com/dmitrymomot/uigen/handler"
	"github.com/dmitrymomot/uigen/pkg/auth"
	"github.com/dmitrymomot/uigen/pkg/logger"
	"github.com/dmitrymomot/uigen/pkg/session"
)

// CredentialsRequest is the body of sign-up and sign-in.
type CredentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SessionResponse describes the current session.
type SessionResponse struct {
	UserID    string    `json:"userId"`
	Email     string    `json:"email"`
	ExpiresAt time.Time `json:"expiresAt"`
}

var (
	errEmailTaken         = handler.NewHTTPError(http.StatusConflict, "email_taken")
	errInvalidEmail       = handler.NewHTTPError(http.StatusUnprocessableEntity, "invalid_email")
	errWeakPassword       = handler.NewHTTPError(http.StatusUnprocessableEntity, "weak_password")
	errInvalidCredentials = handler.NewHTTPError(http.StatusUnauthorized, "invalid_credentials")
	errNoSession          = handler.NewHTTPError(http.StatusUnauthorized, "no_session")
)

func (s *Service) signUp(ctx handler.Context, req CredentialsRequest) handler.Response {
	user, err := s.auth.Register(ctx, req.Email, req.Password)
	switch {
	case errors.Is(err, auth.ErrEmailAlreadyExists):
		return handler.JSONError(errEmailTaken.WithMessage("An account with this email already exists"))
	case errors.Is(err, auth.ErrInvalidEmail):
		return handler.JSONError(errInvalidEmail.WithMessage("Email address is not valid"))
	case errors.Is(err, auth.ErrWeakPassword):
		return handler.JSONError(errWeakPassword.WithMessage(err.Error()))
	case err != nil:
		return s.fail(ctx, "sign up failed", err)
	}

	return s.startSession(ctx, user)
}

func (s *Service) signIn(ctx handler.Context, req CredentialsRequest) handler.Response {
	user, err := s.auth.Authenticate(ctx, req.Email, req.Password)
	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		return handler.JSONError(errInvalidCredentials.WithMessage("Invalid email or password"))
	case err != nil:
		return s.fail(ctx, "sign in failed", err)
	}

	return s.startSession(ctx, user)
}

func (s *Service) signOut(ctx handler.Context, _ struct{}) handler.Response {
	store := s.cookies.Store(ctx.ResponseWriter(), ctx.Request())
	if err := s.sessions.Delete(ctx, store); err != nil {
		return s.fail(ctx, "sign out failed", err)
	}
	return handler.Empty()
}

func (s *Service) currentSession(ctx handler.Context, _ struct{}) handler.Response {
	p, ok := session.FromContext(ctx)
	if !ok {
		store := s.cookies.Store(ctx.ResponseWriter(), ctx.Request())
		var err error
		if p, err = s.sessions.Get(ctx, store); err != nil {
			return s.fail(ctx, "session lookup failed", err)
		}
	}
	if p == nil {
		return handler.JSONError(errNoSession.WithMessage("Not signed in"))
	}
	return handler.JSON(toResponse(p))
}

func (s *Service) startSession(ctx handler.Context, user *auth.User) handler.Response {
	store := s.cookies.Store(ctx.ResponseWriter(), ctx.Request())
	p, err := s.sessions.Issue(ctx, store, user.ID.String(), user.Email)
	if err != nil {
		return s.fail(ctx, "failed to create session", err, logger.UserID(user.ID.String()))
	}
	return handler.JSON(toResponse(p))
}

func (s *Service) fail(ctx handler.Context, msg string, err error, attrs ...any) handler.Response {
	s.logger.ErrorContext(ctx, msg, append(attrs, logger.Error(err))...)
	return handler.JSONError(err)
}

func toResponse(p *session.Payload) SessionResponse {
	return SessionResponse{UserID: p.UserID, Email: p.Email, ExpiresAt: p.ExpiresAt}
}
