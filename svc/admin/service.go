package admin

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/campkit/pkg/campapi"
	"github.com/dmitrymomot/campkit/pkg/location"
	"github.com/dmitrymomot/campkit/pkg/logger"
	"github.com/dmitrymomot/campkit/pkg/pagination"
	"github.com/dmitrymomot/campkit/pkg/sanitizer"
)

// Backend is the subset of the backend API used by the admin area.
type Backend interface {
	CreateCountry(ctx context.Context, name string) (campapi.LocationItem, error)
	CreateCity(ctx context.Context, countryID int, name string) (campapi.LocationItem, error)
	CreateDelegation(ctx context.Context, cityID int, name string) (campapi.LocationItem, error)
	DeleteLocation(ctx context.Context, kind campapi.LocationKind, id int) error

	ListStaff(ctx context.Context, role campapi.Role) ([]campapi.StaffMember, error)
	CreateStaff(ctx context.Context, in campapi.StaffInput) (campapi.StaffMember, error)

	ListParticipants(ctx context.Context, filter campapi.ParticipantFilter) ([]campapi.Participant, error)
}

// Catalog serves the cached location tree.
type Catalog interface {
	LocationTree(ctx context.Context) (location.Tree, error)
	InvalidateLocations(ctx context.Context)
}

// Service implements the administrator screens.
type Service struct {
	backend  Backend
	catalog  Catalog
	pageSize int
	logger   *slog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithPageSize sets the default list page size.
func WithPageSize(size int) Option {
	return func(s *Service) {
		if size > 0 {
			s.pageSize = size
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

// NewService creates an admin service.
func NewService(backend Backend, catalog Catalog, opts ...Option) *Service {
	s := &Service{
		backend:  backend,
		catalog:  catalog,
		pageSize: pagination.DefaultPageSize,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With(logger.Component("admin"))
	return s
}

// ListQuery is a searchable, paginated list request.
type ListQuery struct {
	Query    string `query:"q" json:"q"`
	Page     int    `query:"page" json:"page"`
	PageSize int    `query:"size" json:"size"`
}

// List is one page of a filtered collection.
type List[T any] struct {
	Query  string             `json:"q"`
	Page   pagination.Page[T] `json:"page"`
	Window []pagination.Item  `json:"window"`
}

func paginate[T any](items []T, q ListQuery, defaultSize int, fields func(T) []string) List[T] {
	size := q.PageSize
	if size <= 0 {
		size = defaultSize
	}
	p := pagination.Paginate(sanitizer.Filter(items, q.Query, fields), q.Page, size)
	return List[T]{
		Query:  q.Query,
		Page:   p,
		Window: pagination.PageWindow(p.Page, p.TotalPages, pagination.DefaultWindowDelta),
	}
}

func mapBackendError(err error) error {
	switch {
	case errors.Is(err, campapi.ErrNotFound):
		return errors.Join(ErrNotFound, err)
	case errors.Is(err, campapi.ErrDuplicate):
		return errors.Join(ErrDuplicate, err)
	case errors.Is(err, campapi.ErrInvalidData):
		return errors.Join(ErrInvalidData, err)
	case errors.Is(err, campapi.ErrUnauthorized), errors.Is(err, campapi.ErrForbidden):
		return err
	}
	return fmt.Errorf("%w: %w", ErrBackend, err)
}
