package registration

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/campkit/binder"
	"github.com/dmitrymomot/campkit/handler"
	"github.com/dmitrymomot/campkit/pkg/agerange"
	"github.com/dmitrymomot/campkit/pkg/i18n"
	"github.com/dmitrymomot/campkit/pkg/location"
	"github.com/dmitrymomot/campkit/pkg/logger"
	"github.com/dmitrymomot/campkit/svc/registration"
)

// Module serves the participant sign-up form.
type Module struct {
	svc          *registration.Service
	translator   *i18n.Translator
	errorHandler handler.ErrorHandler
	logger       *slog.Logger
}

// NewModule creates the registration module. A nil translator leaves age
// range labels in their compact form ("12-17").
func NewModule(svc *registration.Service, tr *i18n.Translator, errorHandler handler.ErrorHandler, log *slog.Logger) *Module {
	if log == nil {
		log = slog.Default()
	}
	return &Module{
		svc:          svc,
		translator:   tr,
		errorHandler: errorHandler,
		logger:       log.With(logger.Component("registration")),
	}
}

func (m *Module) Handle() http.Handler {
	r := chi.NewRouter()

	r.Get("/camps/{campID}", handler.Wrap(m.camp,
		handler.WithBinders[CampRequest](binder.Path()),
		handler.WithErrorHandler[CampRequest](m.errorHandler),
	))
	r.Post("/validate", handler.Wrap(m.validate,
		handler.WithBinders[registration.Form](binder.JSON(), binder.Form()),
		handler.WithErrorHandler[registration.Form](m.errorHandler),
	))
	r.Post("/location", handler.Wrap(m.location,
		handler.WithBinders[LocationRequest](binder.JSON(), binder.Form()),
		handler.WithErrorHandler[LocationRequest](m.errorHandler),
	))
	r.Post("/", handler.Wrap(m.register,
		handler.WithBinders[registration.Form](binder.JSON(), binder.Form()),
		handler.WithErrorHandler[registration.Form](m.errorHandler),
	))

	return r
}

// CampRequest selects the camp of the form.
type CampRequest struct {
	CampID int `path:"campID"`
}

// CampResponse is the camp with its age range ready for display.
type CampResponse struct {
	registration.CampInfo
	AgeLabel string `json:"age_label"`
}

func (m *Module) camp(ctx handler.Context, req CampRequest) handler.Response {
	info, err := m.svc.Camp(ctx, req.CampID)
	if err != nil {
		return handler.Error(httpError(err))
	}
	return handler.JSON(CampResponse{
		CampInfo: info,
		AgeLabel: m.ageLabel(i18n.GetLocale(ctx), info.AgeRange),
	})
}

func (m *Module) ageLabel(lang string, r agerange.Range) string {
	if m.translator == nil {
		return r.String()
	}
	minAge, maxAge := r.Bounds()
	switch {
	case minAge == nil && maxAge == nil:
		return m.translator.T(lang, "age_range.any", nil)
	case maxAge == nil:
		return m.translator.T(lang, "age_range.or_more", map[string]any{"min": *minAge})
	case minAge == nil:
		return m.translator.T(lang, "age_range.between", map[string]any{"min": 0, "max": *maxAge})
	}
	return m.translator.T(lang, "age_range.between", map[string]any{"min": *minAge, "max": *maxAge})
}

func (m *Module) validate(ctx handler.Context, form registration.Form) handler.Response {
	if err := m.svc.Validate(ctx, form); err != nil {
		return handler.Error(httpError(err))
	}
	if handler.IsDataStar(ctx.Request()) {
		return handler.Signals(map[string]any{"error": "", "fieldErrors": map[string][]string{}})
	}
	return handler.JSON(map[string]bool{"valid": true})
}

// LocationRequest carries the current selection and the change to apply.
// An empty Action only lists the choices.
type LocationRequest struct {
	Country    string `json:"country" form:"country"`
	City       string `json:"city" form:"city"`
	Delegation string `json:"delegation" form:"delegation"`
	Action     string `json:"action" form:"action"`
	Value      string `json:"value" form:"value"`
}

func (m *Module) location(ctx handler.Context, req LocationRequest) handler.Response {
	var action location.Action
	if req.Action != "" {
		a, err := location.ParseAction(req.Action, req.Value)
		if err != nil {
			return handler.Error(httpError(err))
		}
		action = a
	}

	sel := location.Selection{Country: req.Country, City: req.City, Delegation: req.Delegation}
	res, err := m.svc.Options(ctx, sel, action)
	if err != nil {
		return handler.Error(httpError(err))
	}
	if handler.IsDataStar(ctx.Request()) {
		return handler.Signals(map[string]any{
			"country":     res.Selection.Country,
			"city":        res.Selection.City,
			"delegation":  res.Selection.Delegation,
			"countries":   res.Options.Countries,
			"cities":      res.Options.Cities,
			"delegations": res.Options.Delegations,
		})
	}
	return handler.JSON(res)
}

func (m *Module) register(ctx handler.Context, form registration.Form) handler.Response {
	p, err := m.svc.Register(ctx, form)
	if err != nil {
		return handler.Error(httpError(err))
	}
	return handler.JSON(p, handler.WithJSONStatus(http.StatusCreated))
}
