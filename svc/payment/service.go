package payment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/dmitrymomot/campkit/pkg/campapi"
	"github.com/dmitrymomot/campkit/pkg/logger"
	"github.com/dmitrymomot/campkit/pkg/pagination"
	"github.com/dmitrymomot/campkit/pkg/sanitizer"
	"github.com/dmitrymomot/campkit/pkg/validator"
)

// Form field names.
const (
	FieldCode      = "code"
	FieldAmount    = "amount"
	FieldMethod    = "method"
	FieldReference = "reference"
)

// ReferenceMaxLength bounds the free-text payment reference.
const ReferenceMaxLength = 64

// Backend records and lists payments.
type Backend interface {
	RecordPayment(ctx context.Context, in campapi.PaymentInput) (campapi.Payment, error)
	ListPayments(ctx context.Context, code string) ([]campapi.Payment, error)
}

// Notifier is told whenever a payment is recorded.
type Notifier interface {
	Notify(ctx context.Context) uint64
}

// Service implements the treasurer payment flow.
type Service struct {
	backend  Backend
	notifier Notifier
	logger   *slog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the service logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewService creates a payment service. Every successful Record bumps the
// notifier version so that dashboards and open payment lists refresh.
func NewService(backend Backend, notifier Notifier, opts ...Option) *Service {
	s := &Service{
		backend:  backend,
		notifier: notifier,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With(logger.Component("payment"))
	return s
}

// Validate checks a payment before it is sent.
func Validate(in campapi.PaymentInput) error {
	code := sanitizer.Trim(in.Code)
	return validator.Collect(
		validator.First(validator.RequiredString(FieldCode, code)),
		validator.First(validator.Positive(FieldAmount, in.Amount)),
		validator.First(validator.InList(FieldMethod, in.Method, campapi.PaymentMethods)),
		validator.First(validator.MaxLenString(FieldReference, sanitizer.Trim(in.Reference), ReferenceMaxLength)),
	)
}

// Record validates and records a payment, then notifies listeners.
func (s *Service) Record(ctx context.Context, in campapi.PaymentInput) (campapi.Payment, error) {
	if err := Validate(in); err != nil {
		return campapi.Payment{}, err
	}
	in.Code = sanitizer.Trim(in.Code)
	in.Reference = sanitizer.SingleLine(sanitizer.Trim(in.Reference))

	p, err := s.backend.RecordPayment(ctx, in)
	if err != nil {
		return campapi.Payment{}, mapBackendError(err)
	}

	version := s.notifier.Notify(ctx)
	s.logger.InfoContext(ctx, "payment recorded",
		logger.ParticipantCode(in.Code),
		slog.Int64("amount", in.Amount),
		slog.String("method", string(in.Method)),
		logger.Version(version),
	)
	return p, nil
}

// History is one page of a participant's payments.
type History struct {
	Code   string                           `json:"code"`
	Total  int64                            `json:"total"`
	Page   pagination.Page[campapi.Payment] `json:"page"`
	Window []pagination.Item                `json:"window"`
}

// History returns the payments of a participant, newest first, paginated.
// Total sums every payment, not only the current page.
func (s *Service) History(ctx context.Context, code string, page, size int) (History, error) {
	code = sanitizer.Trim(code)
	if err := validator.Collect(validator.First(validator.RequiredString(FieldCode, code))); err != nil {
		return History{}, err
	}

	payments, err := s.backend.ListPayments(ctx, code)
	if err != nil {
		return History{}, mapBackendError(err)
	}

	sorted := slices.Clone(payments)
	slices.SortStableFunc(sorted, func(a, b campapi.Payment) int {
		return b.RecordedAt.Compare(a.RecordedAt)
	})

	var total int64
	for _, p := range sorted {
		total += p.Amount
	}

	p := pagination.Paginate(sorted, page, size)
	return History{
		Code:   code,
		Total:  total,
		Page:   p,
		Window: pagination.PageWindow(p.Page, p.TotalPages, pagination.DefaultWindowDelta),
	}, nil
}

func mapBackendError(err error) error {
	switch {
	case errors.Is(err, campapi.ErrNotFound):
		return errors.Join(ErrParticipantNotFound, err)
	case errors.Is(err, campapi.ErrInvalidData):
		return errors.Join(ErrInvalidData, err)
	case errors.Is(err, campapi.ErrForbidden):
		return errors.Join(ErrForbidden, err)
	case errors.Is(err, campapi.ErrUnauthorized):
		return err
	}
	return fmt.Errorf("%w: %w", ErrBackend, err)
}
