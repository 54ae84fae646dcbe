package payments

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/campkit/binder"
	"github.com/dmitrymomot/campkit/handler"
	"github.com/dmitrymomot/campkit/pkg/broadcast"
	"github.com/dmitrymomot/campkit/pkg/campapi"
	"github.com/dmitrymomot/campkit/pkg/i18n"
	"github.com/dmitrymomot/campkit/pkg/logger"
	"github.com/dmitrymomot/campkit/svc/payment"
)

// Subscriber hands out payment version subscriptions.
type Subscriber interface {
	Subscribe(ctx context.Context) *broadcast.Subscription
	Version() uint64
}

// Module serves the treasurer payment screens.
type Module struct {
	svc          *payment.Service
	updates      Subscriber
	translator   *i18n.Translator
	pageSize     int
	errorHandler handler.ErrorHandler
	logger       *slog.Logger
}

// NewModule creates the payments module.
func NewModule(svc *payment.Service, updates Subscriber, tr *i18n.Translator, pageSize int, errorHandler handler.ErrorHandler, log *slog.Logger) *Module {
	if log == nil {
		log = slog.Default()
	}
	return &Module{
		svc:          svc,
		updates:      updates,
		translator:   tr,
		pageSize:     pageSize,
		errorHandler: errorHandler,
		logger:       log.With(logger.Component("payments")),
	}
}

func (m *Module) Handle() http.Handler {
	r := chi.NewRouter()

	r.Post("/", handler.Wrap(m.record,
		handler.WithBinders[RecordRequest](binder.JSON(), binder.Form()),
		handler.WithErrorHandler[RecordRequest](m.errorHandler),
	))
	r.Get("/methods", handler.Wrap(m.methods,
		handler.WithErrorHandler[struct{}](m.errorHandler),
	))
	r.Get("/events", handler.Wrap(m.events,
		handler.WithErrorHandler[struct{}](m.errorHandler),
	))
	r.Get("/{code}", handler.Wrap(m.history,
		handler.WithBinders[HistoryRequest](binder.Path(), binder.Query()),
		handler.WithErrorHandler[HistoryRequest](m.errorHandler),
	))

	return r
}

// RecordRequest is the payment form.
type RecordRequest struct {
	Code      string `json:"code" form:"code"`
	Amount    int64  `json:"amount" form:"amount"`
	Method    string `json:"method" form:"method"`
	Reference string `json:"reference" form:"reference"`
}

// RecordResponse confirms a recorded payment.
type RecordResponse struct {
	Payment campapi.Payment `json:"payment"`
	Message string          `json:"message"`
}

func (m *Module) record(ctx handler.Context, req RecordRequest) handler.Response {
	p, err := m.svc.Record(ctx, campapi.PaymentInput{
		Code:      req.Code,
		Amount:    req.Amount,
		Method:    campapi.PaymentMethod(req.Method),
		Reference: req.Reference,
	})
	if err != nil {
		return handler.Error(httpError(err))
	}
	return handler.JSON(RecordResponse{
		Payment: p,
		Message: m.t(ctx, "payment.recorded", map[string]any{"amount": p.Amount, "code": p.Code}),
	}, handler.WithJSONStatus(http.StatusCreated))
}

// Method is a payment method with its display label.
type Method struct {
	Value campapi.PaymentMethod `json:"value"`
	Label string                `json:"label"`
}

func (m *Module) methods(ctx handler.Context, _ struct{}) handler.Response {
	out := make([]Method, 0, len(campapi.PaymentMethods))
	for _, pm := range campapi.PaymentMethods {
		out = append(out, Method{Value: pm, Label: m.t(ctx, "payment.methods."+string(pm), nil)})
	}
	return handler.JSON(out)
}

// HistoryRequest selects a page of a participant's payments.
type HistoryRequest struct {
	Code     string `path:"code"`
	Page     int    `query:"page"`
	PageSize int    `query:"size"`
}

func (m *Module) history(ctx handler.Context, req HistoryRequest) handler.Response {
	size := req.PageSize
	if size <= 0 {
		size = m.pageSize
	}
	h, err := m.svc.History(ctx, req.Code, req.Page, size)
	if err != nil {
		return handler.Error(httpError(err))
	}
	return handler.JSON(h)
}

// events streams the payment version to DataStar clients. Each new version
// patches the "paymentVersion" signal, which the page uses to re-fetch.
func (m *Module) events(_ handler.Context, _ struct{}) handler.Response {
	return handler.SSE(func(s handler.Stream) error {
		sub := m.updates.Subscribe(s)
		defer sub.Close()

		if err := s.SendSignals(map[string]any{"paymentVersion": m.updates.Version()}); err != nil {
			return err
		}
		for {
			select {
			case <-s.Done():
				return nil
			case v, ok := <-sub.Updates():
				if !ok {
					return nil
				}
				if err := s.SendSignals(map[string]any{"paymentVersion": v}); err != nil {
					m.logger.DebugContext(s, "payment stream closed", logger.Error(err))
					return nil
				}
			}
		}
	})
}

func (m *Module) t(ctx context.Context, key string, values map[string]any) string {
	if m.translator == nil {
		return key
	}
	return m.translator.T(i18n.GetLocale(ctx), key, values)
}
