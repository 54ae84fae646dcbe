package admin

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/campkit/binder"
	"github.com/dmitrymomot/campkit/handler"
	"github.com/dmitrymomot/campkit/pkg/campapi"
	"github.com/dmitrymomot/campkit/pkg/logger"
	"github.com/dmitrymomot/campkit/svc/admin"
)

var ErrParentNotFound = handler.ErrNotFound.WithKey("errors.parent_not_found")

// Module serves the administrator API.
type Module struct {
	svc          *admin.Service
	errorHandler handler.ErrorHandler
	logger       *slog.Logger
}

// NewModule creates the admin module.
func NewModule(svc *admin.Service, errorHandler handler.ErrorHandler, log *slog.Logger) *Module {
	if log == nil {
		log = slog.Default()
	}
	return &Module{
		svc:          svc,
		errorHandler: errorHandler,
		logger:       log.With(logger.Component("admin")),
	}
}

func (m *Module) Handle() http.Handler {
	r := chi.NewRouter()

	r.Route("/locations", func(r chi.Router) {
		r.Get("/", handler.Wrap(m.locations,
			handler.WithErrorHandler[struct{}](m.errorHandler),
		))
		r.Post("/{kind}", handler.Wrap(m.createLocation,
			handler.WithBinders[CreateLocationRequest](binder.Path(), binder.JSON(), binder.Form()),
			handler.WithErrorHandler[CreateLocationRequest](m.errorHandler),
		))
		r.Delete("/{kind}/{id}", handler.Wrap(m.deleteLocation,
			handler.WithBinders[DeleteLocationRequest](binder.Path()),
			handler.WithErrorHandler[DeleteLocationRequest](m.errorHandler),
		))
	})

	r.Route("/staff", func(r chi.Router) {
		r.Post("/", handler.Wrap(m.createStaff,
			handler.WithBinders[admin.StaffForm](binder.JSON(), binder.Form()),
			handler.WithErrorHandler[admin.StaffForm](m.errorHandler),
		))
		r.Get("/{role}", handler.Wrap(m.staff,
			handler.WithBinders[StaffRequest](binder.Path(), binder.Query()),
			handler.WithErrorHandler[StaffRequest](m.errorHandler),
		))
	})

	r.Get("/participants", handler.Wrap(m.participants,
		handler.WithBinders[admin.ParticipantQuery](binder.Query()),
		handler.WithErrorHandler[admin.ParticipantQuery](m.errorHandler),
	))

	return r
}

func (m *Module) locations(ctx handler.Context, _ struct{}) handler.Response {
	o, err := m.svc.Locations(ctx)
	if err != nil {
		return handler.Error(httpError(err))
	}
	return handler.JSON(o)
}

// CreateLocationRequest creates a country, city or delegation.
type CreateLocationRequest struct {
	Kind string `path:"kind" json:"-" form:"-"`
	admin.LocationInput
}

func (m *Module) createLocation(ctx handler.Context, req CreateLocationRequest) handler.Response {
	kind, err := campapi.ParseLocationKind(req.Kind)
	if err != nil {
		return handler.Error(errors.Join(handler.ErrNotFound, err))
	}
	item, err := m.svc.CreateLocation(ctx, kind, req.LocationInput)
	if err != nil {
		return handler.Error(httpError(err))
	}
	return handler.JSON(item, handler.WithJSONStatus(http.StatusCreated))
}

// DeleteLocationRequest removes a location.
type DeleteLocationRequest struct {
	Kind string `path:"kind"`
	ID   int    `path:"id"`
}

func (m *Module) deleteLocation(ctx handler.Context, req DeleteLocationRequest) handler.Response {
	kind, err := campapi.ParseLocationKind(req.Kind)
	if err != nil {
		return handler.Error(errors.Join(handler.ErrNotFound, err))
	}
	if err := m.svc.DeleteLocation(ctx, kind, req.ID); err != nil {
		return handler.Error(httpError(err))
	}
	return handler.Empty()
}

// StaffRequest lists leaders or treasurers.
type StaffRequest struct {
	Role string `path:"role"`
	admin.ListQuery
}

func (m *Module) staff(ctx handler.Context, req StaffRequest) handler.Response {
	list, err := m.svc.Staff(ctx, campapi.Role(req.Role), req.ListQuery)
	if err != nil {
		return handler.Error(httpError(err))
	}
	return handler.JSON(list)
}

func (m *Module) createStaff(ctx handler.Context, form admin.StaffForm) handler.Response {
	member, err := m.svc.CreateStaff(ctx, form)
	if err != nil {
		return handler.Error(httpError(err))
	}
	return handler.JSON(member, handler.WithJSONStatus(http.StatusCreated))
}

func (m *Module) participants(ctx handler.Context, q admin.ParticipantQuery) handler.Response {
	list, err := m.svc.Participants(ctx, q)
	if err != nil {
		return handler.Error(httpError(err))
	}
	return handler.JSON(list)
}

func httpError(err error) error {
	switch {
	case errors.Is(err, admin.ErrParentNotFound):
		return errors.Join(ErrParentNotFound, err)
	case errors.Is(err, admin.ErrNotFound), errors.Is(err, admin.ErrInvalidKind), errors.Is(err, admin.ErrInvalidRole):
		return errors.Join(handler.ErrNotFound, err)
	case errors.Is(err, admin.ErrDuplicate):
		return errors.Join(handler.ErrConflict, err)
	case errors.Is(err, admin.ErrInvalidData):
		return errors.Join(handler.ErrBadRequest, err)
	case errors.Is(err, campapi.ErrUnauthorized):
		return errors.Join(handler.ErrUnauthorized, err)
	case errors.Is(err, campapi.ErrForbidden):
		return errors.Join(handler.ErrForbidden, err)
	case errors.Is(err, admin.ErrBackend):
		return errors.Join(handler.ErrBadGateway, err)
	}
	return err
}
