package auth

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/campkit/binder"
	"github.com/dmitrymomot/campkit/handler"
	"github.com/dmitrymomot/campkit/pkg/campapi"
	"github.com/dmitrymomot/campkit/pkg/clientip"
	"github.com/dmitrymomot/campkit/pkg/logger"
	"github.com/dmitrymomot/campkit/pkg/ratelimiter"
	"github.com/dmitrymomot/campkit/pkg/sanitizer"
	"github.com/dmitrymomot/campkit/pkg/session"
	"github.com/dmitrymomot/campkit/pkg/validator"
)

// ErrInvalidCredentials is returned for a rejected login.
var ErrInvalidCredentials = handler.ErrUnauthorized.WithKey("errors.invalid_credentials")

// Backend authenticates staff against the backend.
type Backend interface {
	Login(ctx context.Context, creds campapi.Credentials) (campapi.Session, error)
}

// Limiter throttles sign-in attempts per key.
type Limiter interface {
	Allow(ctx context.Context, key string) (ratelimiter.Result, error)
	Reset(ctx context.Context, key string) error
}

// Module serves the sign-in endpoints.
type Module struct {
	backend      Backend
	sessions     *session.Manager
	limiter      Limiter
	errorHandler handler.ErrorHandler
	logger       *slog.Logger
}

// Option configures a Module.
type Option func(*Module)

// WithLoginLimiter throttles failed sign-ins per client IP and username.
// A successful sign-in resets the counter.
func WithLoginLimiter(l Limiter) Option {
	return func(m *Module) { m.limiter = l }
}

// NewModule creates the auth module.
func NewModule(backend Backend, sessions *session.Manager, errorHandler handler.ErrorHandler, log *slog.Logger, opts ...Option) *Module {
	if log == nil {
		log = slog.Default()
	}
	m := &Module{
		backend:      backend,
		sessions:     sessions,
		errorHandler: errorHandler,
		logger:       log.With(logger.Component("auth")),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *Module) Handle() http.Handler {
	r := chi.NewRouter()

	r.Post("/login", handler.Wrap(m.login,
		handler.WithBinders[LoginRequest](binder.JSON(), binder.Form()),
		handler.WithErrorHandler[LoginRequest](m.errorHandler),
	))
	r.Post("/logout", handler.Wrap(m.logout,
		handler.WithErrorHandler[struct{}](m.errorHandler),
	))
	r.Get("/me", handler.Wrap(m.me,
		handler.WithErrorHandler[struct{}](m.errorHandler),
	))

	return r
}

// LoginRequest is posted by the sign-in form.
type LoginRequest struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

// Me is the signed-in identity.
type Me struct {
	ID   int          `json:"id"`
	Name string       `json:"name"`
	Role campapi.Role `json:"role"`
}

func (m *Module) login(ctx handler.Context, req LoginRequest) handler.Response {
	username := sanitizer.Trim(req.Username)
	if err := validator.Apply(
		validator.RequiredString("username", username),
		validator.RequiredString("password", req.Password),
	); err != nil {
		return handler.Error(err)
	}

	attemptKey := clientip.FromContext(ctx) + ":" + strings.ToLower(username)
	if m.limiter != nil {
		res, err := m.limiter.Allow(ctx, attemptKey)
		if err != nil {
			m.logger.ErrorContext(ctx, "login limiter failed", logger.Error(err))
		} else if !res.Allowed() {
			m.logger.WarnContext(ctx, "login throttled", slog.String("username", username))
			if wait := res.RetryAfter(time.Now()); wait > 0 {
				ctx.ResponseWriter().Header().Set("Retry-After", strconv.Itoa(int(wait.Seconds())+1))
			}
			return handler.Error(handler.ErrTooMany)
		}
	}

	s, err := m.backend.Login(ctx, campapi.Credentials{Username: username, Password: req.Password})
	if err != nil {
		if errors.Is(err, campapi.ErrUnauthorized) || errors.Is(err, campapi.ErrInvalidData) {
			m.logger.InfoContext(ctx, "login rejected", slog.String("username", username))
			return handler.Error(errors.Join(ErrInvalidCredentials, err))
		}
		return handler.Error(errors.Join(handler.ErrBadGateway, err))
	}

	saved, err := m.sessions.Save(ctx.ResponseWriter(), session.Session{
		Token:     s.Token,
		UserID:    s.User.ID,
		Name:      s.User.Name,
		Role:      string(s.User.Role),
		ExpiresAt: s.ExpiresAt,
	})
	if err != nil {
		return handler.Error(errors.Join(handler.ErrInternal, err))
	}

	if m.limiter != nil {
		if err := m.limiter.Reset(ctx, attemptKey); err != nil {
			m.logger.WarnContext(ctx, "failed to reset login limiter", logger.Error(err))
		}
	}

	m.logger.InfoContext(ctx, "user signed in",
		slog.Int("user_id", saved.UserID),
		slog.String("role", saved.Role),
	)
	return handler.JSON(Me{ID: saved.UserID, Name: saved.Name, Role: campapi.Role(saved.Role)})
}

func (m *Module) logout(ctx handler.Context, _ struct{}) handler.Response {
	m.sessions.Clear(ctx.ResponseWriter())
	return handler.Empty()
}

func (m *Module) me(ctx handler.Context, _ struct{}) handler.Response {
	s, ok := session.FromContext(ctx)
	if !ok {
		return handler.Error(handler.ErrUnauthorized)
	}
	return handler.JSON(Me{ID: s.UserID, Name: s.Name, Role: campapi.Role(s.Role)})
}
