package dashboard

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/campkit/handler"
	"github.com/dmitrymomot/campkit/pkg/broadcast"
	"github.com/dmitrymomot/campkit/pkg/campapi"
	"github.com/dmitrymomot/campkit/pkg/logger"
	"github.com/dmitrymomot/campkit/svc/dashboard"
)

// Subscriber hands out payment version subscriptions.
type Subscriber interface {
	Subscribe(ctx context.Context) *broadcast.Subscription
}

// Module serves the treasurer dashboard.
type Module struct {
	svc          *dashboard.Service
	updates      Subscriber
	errorHandler handler.ErrorHandler
	logger       *slog.Logger
}

// NewModule creates the dashboard module.
func NewModule(svc *dashboard.Service, updates Subscriber, errorHandler handler.ErrorHandler, log *slog.Logger) *Module {
	if log == nil {
		log = slog.Default()
	}
	return &Module{
		svc:          svc,
		updates:      updates,
		errorHandler: errorHandler,
		logger:       log.With(logger.Component("dashboard")),
	}
}

func (m *Module) Handle() http.Handler {
	r := chi.NewRouter()

	r.Get("/", handler.Wrap(m.summary,
		handler.WithErrorHandler[struct{}](m.errorHandler),
	))
	r.Get("/events", handler.Wrap(m.events,
		handler.WithErrorHandler[struct{}](m.errorHandler),
	))

	return r
}

func (m *Module) summary(ctx handler.Context, _ struct{}) handler.Response {
	sum, err := m.svc.Summary(ctx)
	if err != nil {
		return handler.Error(httpError(err))
	}
	return handler.JSON(sum)
}

// events pushes the summary as a "dashboard" signal now and after every
// recorded payment.
func (m *Module) events(_ handler.Context, _ struct{}) handler.Response {
	return handler.SSE(func(s handler.Stream) error {
		sub := m.updates.Subscribe(s)
		defer sub.Close()

		send := func() error {
			sum, err := m.svc.Summary(s)
			if err != nil {
				m.logger.WarnContext(s, "dashboard refresh failed", logger.Error(err))
				return s.SendSignals(map[string]any{"dashboardError": true})
			}
			return s.SendSignals(map[string]any{"dashboard": sum, "dashboardError": false})
		}

		if err := send(); err != nil {
			return nil
		}
		for {
			select {
			case <-s.Done():
				return nil
			case _, ok := <-sub.Updates():
				if !ok {
					return nil
				}
				if err := send(); err != nil {
					return nil
				}
			}
		}
	})
}

func httpError(err error) error {
	switch {
	case errors.Is(err, campapi.ErrUnauthorized):
		return errors.Join(handler.ErrUnauthorized, err)
	case errors.Is(err, campapi.ErrForbidden):
		return errors.Join(handler.ErrForbidden, err)
	case errors.Is(err, dashboard.ErrBackend):
		return errors.Join(handler.ErrBadGateway, err)
	}
	return err
}
