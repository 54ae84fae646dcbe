package registration

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dmitrymomot/campkit/pkg/agerange"
	"github.com/dmitrymomot/campkit/pkg/campapi"
	"github.com/dmitrymomot/campkit/pkg/location"
	"github.com/dmitrymomot/campkit/pkg/logger"
	"github.com/dmitrymomot/campkit/pkg/sanitizer"
	"github.com/dmitrymomot/campkit/pkg/validator"
)

// Catalog provides camp metadata and the location tree, usually a
// campapi.CachedCatalog.
type Catalog interface {
	GetCamp(ctx context.Context, id int) (campapi.Camp, error)
	LocationTree(ctx context.Context) (location.Tree, error)
}

// Backend submits registrations.
type Backend interface {
	RegisterParticipant(ctx context.Context, reg campapi.Registration) (campapi.Participant, error)
}

// Labels are the human-readable field names used in validation messages.
type Labels struct {
	FirstName string
	LastName  string
}

// Service validates and submits participant registrations.
type Service struct {
	catalog Catalog
	backend Backend
	ages    *agerange.Resolver
	now     validator.Clock
	labels  Labels
	logger  *slog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithClock pins "today" for age computations.
func WithClock(now validator.Clock) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithLogger sets the service logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithLabels overrides the field labels used in messages.
func WithLabels(labels Labels) Option {
	return func(s *Service) { s.labels = labels }
}

// NewService creates a registration service.
func NewService(catalog Catalog, backend Backend, opts ...Option) *Service {
	s := &Service{
		catalog: catalog,
		backend: backend,
		now:     time.Now,
		labels:  Labels{FirstName: "Prénom", LastName: "Nom"},
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With(logger.Component("registration"))
	s.ages = agerange.NewResolver(s.logger)
	return s
}

// CampInfo is a camp with its resolved age range.
type CampInfo struct {
	Camp     campapi.Camp   `json:"camp"`
	AgeRange agerange.Range `json:"age_range"`
	Label    string         `json:"age_label"`
}

// Camp returns the camp a form registers for, with its age range.
func (s *Service) Camp(ctx context.Context, campID int) (CampInfo, error) {
	camp, err := s.catalog.GetCamp(ctx, campID)
	if err != nil {
		return CampInfo{}, mapBackendError(err)
	}
	rng := s.ages.Resolve(ctx, camp.TrancheAge)
	return CampInfo{Camp: camp, AgeRange: rng, Label: rng.String()}, nil
}

// Validate checks every field of the form and returns
// validator.ValidationErrors listing each failing field, or nil.
// The birth date is checked against the camp age range.
func (s *Service) Validate(ctx context.Context, form Form) error {
	info, err := s.Camp(ctx, form.CampID)
	if err != nil {
		return err
	}
	return s.validate(form, info.AgeRange)
}

func (s *Service) validate(form Form, rng agerange.Range) error {
	minAge, maxAge := rng.Bounds()
	results := []validator.Result{
		validator.ValidateName(form.FirstName, s.labels.FirstName).For(FieldFirstName),
		validator.ValidateName(form.LastName, s.labels.LastName).For(FieldLastName),
		validator.ValidateInternationalPhone(form.Phone).For(FieldPhone),
		validator.ValidateBirthDateAt(form.BirthDate, minAge, maxAge, s.now()).For(FieldBirthDate),
		validator.First(validator.InList(FieldGender, form.Gender, Genders)),
		validator.First(validator.RequiredString(FieldCountry, form.Country)),
		validator.First(validator.RequiredString(FieldCity, form.City)),
		validator.First(validator.RequiredString(FieldDelegation, form.Delegation)),
	}
	if sanitizer.Trim(form.GuardianPhone) != "" {
		results = append(results, validator.ValidatePhoneField(FieldGuardianPhone, form.GuardianPhone))
	}
	return validator.Collect(results...)
}

// LocationOptions is the cascading selection after an action, with the
// choices available at each level.
type LocationOptions struct {
	Selection location.Selection `json:"selection"`
	Options   location.Options   `json:"options"`
}

// Options applies a selection action to the current selection against the
// cached location tree. A nil action only lists the choices.
func (s *Service) Options(ctx context.Context, sel location.Selection, action location.Action) (LocationOptions, error) {
	tree, err := s.catalog.LocationTree(ctx)
	if err != nil {
		return LocationOptions{}, mapBackendError(err)
	}
	next := location.Reduce(sel, action)
	return LocationOptions{Selection: next, Options: tree.OptionsFor(next)}, nil
}

// Register validates the form, resolves the location ids against the current
// tree and submits the registration.
func (s *Service) Register(ctx context.Context, form Form) (campapi.Participant, error) {
	info, err := s.Camp(ctx, form.CampID)
	if err != nil {
		return campapi.Participant{}, err
	}
	if err := s.validate(form, info.AgeRange); err != nil {
		return campapi.Participant{}, err
	}

	tree, err := s.catalog.LocationTree(ctx)
	if err != nil {
		return campapi.Participant{}, mapBackendError(err)
	}
	ids, err := tree.Resolve(form.Selection())
	if err != nil {
		s.logger.InfoContext(ctx, "stale location selection", logger.CampID(form.CampID), logger.Error(err))
		return campapi.Participant{}, errors.Join(ErrSelectionStale, err)
	}

	reg, err := s.payload(form, ids)
	if err != nil {
		return campapi.Participant{}, err
	}
	p, err := s.backend.RegisterParticipant(ctx, reg)
	if err != nil {
		return campapi.Participant{}, mapBackendError(err)
	}

	s.logger.InfoContext(ctx, "participant registered",
		logger.CampID(form.CampID),
		logger.ParticipantCode(p.Code),
	)
	return p, nil
}

func (s *Service) payload(form Form, ids location.IDs) (campapi.Registration, error) {
	birth, err := validator.ParseBirthDate(form.BirthDate)
	if err != nil {
		return campapi.Registration{}, errors.Join(ErrInvalidData, err)
	}
	reg := campapi.Registration{
		CampID:       form.CampID,
		FirstName:    sanitizer.Title(sanitizer.Name(form.FirstName)),
		LastName:     sanitizer.Title(sanitizer.Name(form.LastName)),
		Phone:        validator.NormalizePhone(form.Phone),
		BirthDate:    birth.Format(time.DateOnly),
		Gender:       form.Gender,
		CountryID:    ids.CountryID,
		CityID:       ids.CityID,
		DelegationID: ids.DelegationID,
	}
	if sanitizer.Trim(form.GuardianPhone) != "" {
		reg.GuardianPhone = validator.NormalizePhone(form.GuardianPhone)
	}
	return reg, nil
}

// mapBackendError converts backend status errors into registration errors.
func mapBackendError(err error) error {
	switch {
	case errors.Is(err, campapi.ErrNotFound):
		return errors.Join(ErrCampNotFound, err)
	case errors.Is(err, campapi.ErrDuplicate):
		return errors.Join(ErrAlreadyRegistered, err)
	case errors.Is(err, campapi.ErrInvalidData):
		return errors.Join(ErrInvalidData, err)
	case errors.Is(err, campapi.ErrUnauthorized), errors.Is(err, campapi.ErrForbidden):
		return err
	}
	return fmt.Errorf("%w: %w", ErrBackend, err)
}
