package badges

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/campkit/binder"
	"github.com/dmitrymomot/campkit/handler"
	"github.com/dmitrymomot/campkit/pkg/campapi"
	"github.com/dmitrymomot/campkit/pkg/logger"
	"github.com/dmitrymomot/campkit/svc/badge"
)

var (
	ErrParticipantNotFound = handler.ErrNotFound.WithKey("errors.participant_not_found")
	ErrInvalidBadge        = handler.ErrBadRequest.WithKey("errors.invalid_badge")
)

// Views renders badge pages. Nil fields use the built-in views.
type Views struct {
	Card func(badge.Preview) templ.Component
}

// Module serves badge previews and badge scans.
type Module struct {
	svc          *badge.Service
	views        Views
	errorHandler handler.ErrorHandler
	logger       *slog.Logger
}

// NewModule creates the badges module.
func NewModule(svc *badge.Service, views *Views, errorHandler handler.ErrorHandler, log *slog.Logger) *Module {
	if log == nil {
		log = slog.Default()
	}
	m := &Module{
		svc:          svc,
		views:        Views{Card: badge.Card},
		errorHandler: errorHandler,
		logger:       log.With(logger.Component("badges")),
	}
	if views != nil && views.Card != nil {
		m.views.Card = views.Card
	}
	return m
}

func (m *Module) Handle() http.Handler {
	r := chi.NewRouter()

	r.Post("/scan", handler.Wrap(m.scan,
		handler.WithBinders[ScanRequest](binder.JSON(), binder.Form()),
		handler.WithErrorHandler[ScanRequest](m.errorHandler),
	))
	r.Get("/{code}", handler.Wrap(m.preview,
		handler.WithBinders[PreviewRequest](binder.Path()),
		handler.WithErrorHandler[PreviewRequest](m.errorHandler),
	))

	return r
}

// PreviewRequest selects a participant badge.
type PreviewRequest struct {
	Code string `path:"code"`
}

func (m *Module) preview(ctx handler.Context, req PreviewRequest) handler.Response {
	p, err := m.svc.Preview(ctx, req.Code)
	if err != nil {
		return handler.Error(httpError(err))
	}
	if strings.Contains(ctx.Request().Header.Get("Accept"), "application/json") {
		return handler.JSON(p)
	}
	return handler.Templ(m.views.Card(p), handler.WithTarget("#badge"))
}

// ScanRequest carries the decoded content of a scanned badge.
type ScanRequest struct {
	Content string `json:"content" form:"content"`
}

func (m *Module) scan(ctx handler.Context, req ScanRequest) handler.Response {
	p, err := m.svc.Scan(ctx, req.Content)
	if err != nil {
		return handler.Error(httpError(err))
	}
	return handler.JSON(p)
}

func httpError(err error) error {
	switch {
	case errors.Is(err, badge.ErrParticipantNotFound):
		return errors.Join(ErrParticipantNotFound, err)
	case errors.Is(err, badge.ErrInvalidCode):
		return errors.Join(ErrInvalidBadge, err)
	case errors.Is(err, campapi.ErrUnauthorized):
		return errors.Join(handler.ErrUnauthorized, err)
	case errors.Is(err, campapi.ErrForbidden):
		return errors.Join(handler.ErrForbidden, err)
	case errors.Is(err, badge.ErrBackend):
		return errors.Join(handler.ErrBadGateway, err)
	}
	return err
}
