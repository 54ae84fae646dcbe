package badge

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/campkit/pkg/agerange"
	"github.com/dmitrymomot/campkit/pkg/campapi"
	"github.com/dmitrymomot/campkit/pkg/logger"
	"github.com/dmitrymomot/campkit/pkg/qrcode"
	"github.com/dmitrymomot/campkit/pkg/sanitizer"
)

// Participants looks up registered participants.
type Participants interface {
	GetParticipant(ctx context.Context, code string) (campapi.Participant, error)
}

// Camps looks up camp metadata.
type Camps interface {
	GetCamp(ctx context.Context, id int) (campapi.Camp, error)
}

// Preview is everything printed on a participant badge.
type Preview struct {
	Participant campapi.Participant `json:"participant"`
	Camp        campapi.Camp        `json:"camp"`
	AgeRange    string              `json:"age_range"`
	QRContent   string              `json:"qr_content"`
	QRDataURI   string              `json:"qr_data_uri"`
	Balance     int64               `json:"balance"`
}

// Paid reports whether the participant paid the full camp price.
func (p Preview) Paid() bool {
	return p.Balance <= 0
}

// Service builds badge previews.
type Service struct {
	participants Participants
	camps        Camps
	ages         *agerange.Resolver
	qrOpts       []qrcode.Option
	logger       *slog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithQROptions sets the QR code rendering options.
func WithQROptions(opts ...qrcode.Option) Option {
	return func(s *Service) { s.qrOpts = append(s.qrOpts, opts...) }
}

// WithLogger sets the service logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewService creates a badge service.
func NewService(participants Participants, camps Camps, opts ...Option) *Service {
	s := &Service{
		participants: participants,
		camps:        camps,
		logger:       slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With(logger.Component("badge"))
	s.ages = agerange.NewResolver(s.logger)
	return s
}

// Preview loads a participant and its camp and encodes the badge QR code.
func (s *Service) Preview(ctx context.Context, code string) (Preview, error) {
	code = sanitizer.Trim(code)
	if code == "" {
		return Preview{}, ErrInvalidCode
	}

	p, err := s.participants.GetParticipant(ctx, code)
	if err != nil {
		return Preview{}, mapBackendError(err)
	}
	camp, err := s.camps.GetCamp(ctx, p.CampID)
	if err != nil {
		// A participant whose camp is gone still gets a badge.
		if !errors.Is(err, campapi.ErrNotFound) {
			return Preview{}, mapBackendError(err)
		}
		s.logger.WarnContext(ctx, "participant camp not found",
			logger.ParticipantCode(code),
			logger.CampID(p.CampID),
		)
		camp = campapi.Camp{ID: p.CampID}
	}

	content := qrcode.BadgeContent(p.Code)
	uri, err := qrcode.DataURI(content, s.qrOpts...)
	if err != nil {
		return Preview{}, errors.Join(ErrInvalidCode, err)
	}

	return Preview{
		Participant: p,
		Camp:        camp,
		AgeRange:    s.ages.Resolve(ctx, camp.TrancheAge).String(),
		QRContent:   content,
		QRDataURI:   uri,
		Balance:     camp.Price - p.AmountPaid,
	}, nil
}

// Scan resolves a scanned badge back to its participant.
func (s *Service) Scan(ctx context.Context, content string) (campapi.Participant, error) {
	code, err := qrcode.ParseBadgeContent(content)
	if err != nil {
		return campapi.Participant{}, errors.Join(ErrInvalidCode, err)
	}
	p, err := s.participants.GetParticipant(ctx, code)
	if err != nil {
		return campapi.Participant{}, mapBackendError(err)
	}
	return p, nil
}

func mapBackendError(err error) error {
	switch {
	case errors.Is(err, campapi.ErrNotFound):
		return errors.Join(ErrParticipantNotFound, err)
	case errors.Is(err, campapi.ErrUnauthorized), errors.Is(err, campapi.ErrForbidden):
		return err
	}
	return fmt.Errorf("%w: %w", ErrBackend, err)
}
