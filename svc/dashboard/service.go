package dashboard

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/dmitrymomot/campkit/pkg/agerange"
	"github.com/dmitrymomot/campkit/pkg/campapi"
	"github.com/dmitrymomot/campkit/pkg/logger"
)

// Backend provides the raw figures.
type Backend interface {
	Statistics(ctx context.Context) (campapi.Statistics, error)
	ListCamps(ctx context.Context) ([]campapi.Camp, error)
}

// Versioner exposes the payment notifier version.
type Versioner interface {
	Version() uint64
}

// CampSummary is the per-camp line of the dashboard.
type CampSummary struct {
	CampID          int    `json:"camp_id"`
	Type            string `json:"type"`
	AgeRange        string `json:"age_range"`
	Participants    int    `json:"participants"`
	Price           int64  `json:"price"`
	FondationAmount int64  `json:"fondation_amount"`
	Expected        int64  `json:"expected"`
}

// Summary is the treasurer dashboard.
type Summary struct {
	TotalParticipants int                    `json:"total_participants"`
	TotalCollected    int64                  `json:"total_collected"`
	TotalExpected     int64                  `json:"total_expected"`
	Outstanding       int64                  `json:"outstanding"`
	CollectionRate    float64                `json:"collection_rate"`
	Camps             []CampSummary          `json:"camps"`
	Countries         []campapi.CountryCount `json:"countries"`
	Version           uint64                 `json:"version"`
	GeneratedAt       time.Time              `json:"generated_at"`
}

// Service computes the dashboard summary. The last summary is reused until
// the payment version changes or it gets older than the max age.
type Service struct {
	backend  Backend
	versions Versioner
	ages     *agerange.Resolver
	maxAge   time.Duration
	now      func() time.Time
	logger   *slog.Logger

	mu      sync.Mutex
	cached  *Summary
	version uint64
}

// Option configures a Service.
type Option func(*Service)

// WithMaxAge bounds how long a summary is reused when no payment was
// recorded locally. Zero disables the bound.
func WithMaxAge(d time.Duration) Option {
	return func(s *Service) { s.maxAge = d }
}

// WithClock overrides time.Now.
func WithClock(now func() time.Time) Option {
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

// NewService creates a dashboard service.
func NewService(backend Backend, versions Versioner, opts ...Option) *Service {
	s := &Service{
		backend:  backend,
		versions: versions,
		maxAge:   time.Minute,
		now:      time.Now,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With(logger.Component("dashboard"))
	s.ages = agerange.NewResolver(s.logger)
	return s
}

// Summary returns the dashboard, recomputing it when stale.
func (s *Service) Summary(ctx context.Context) (Summary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	version := s.versions.Version()
	if s.cached != nil && s.version == version && !s.expired() {
		return *s.cached, nil
	}

	start := s.now()
	sum, err := s.compute(ctx)
	if err != nil {
		return Summary{}, err
	}
	sum.Version = version
	sum.GeneratedAt = s.now()

	s.cached = &sum
	s.version = version
	s.logger.DebugContext(ctx, "dashboard recomputed",
		logger.Version(version),
		logger.Duration(s.now().Sub(start)),
	)
	return sum, nil
}

// Invalidate drops the cached summary.
func (s *Service) Invalidate() {
	s.mu.Lock()
	s.cached = nil
	s.mu.Unlock()
}

func (s *Service) expired() bool {
	return s.maxAge > 0 && s.now().Sub(s.cached.GeneratedAt) >= s.maxAge
}

func (s *Service) compute(ctx context.Context) (Summary, error) {
	stats, err := s.backend.Statistics(ctx)
	if err != nil {
		return Summary{}, mapBackendError(err)
	}
	camps, err := s.backend.ListCamps(ctx)
	if err != nil {
		return Summary{}, mapBackendError(err)
	}

	counts := make(map[int]int, len(stats.ByCamp))
	for _, c := range stats.ByCamp {
		counts[c.CampID] += c.Participants
	}

	sum := Summary{
		TotalParticipants: stats.TotalParticipants,
		TotalCollected:    stats.TotalCollected,
		Camps:             make([]CampSummary, 0, len(camps)),
		Countries:         slices.Clone(stats.ByCountry),
	}
	for _, camp := range camps {
		n := counts[camp.ID]
		line := CampSummary{
			CampID:          camp.ID,
			Type:            camp.Type,
			AgeRange:        s.ages.Resolve(ctx, camp.TrancheAge).String(),
			Participants:    n,
			Price:           camp.Price,
			FondationAmount: camp.FondationAmount,
			Expected:        camp.Price * int64(n),
		}
		sum.TotalExpected += line.Expected
		sum.Camps = append(sum.Camps, line)
	}
	if sum.TotalParticipants == 0 {
		for _, n := range counts {
			sum.TotalParticipants += n
		}
	}

	sum.Outstanding = max(sum.TotalExpected-sum.TotalCollected, 0)
	if sum.TotalExpected > 0 {
		sum.CollectionRate = float64(sum.TotalCollected) / float64(sum.TotalExpected)
	}

	slices.SortStableFunc(sum.Countries, func(a, b campapi.CountryCount) int {
		if c := cmp.Compare(b.Participants, a.Participants); c != 0 {
			return c
		}
		return cmp.Compare(a.Country, b.Country)
	})
	return sum, nil
}

func mapBackendError(err error) error {
	if errors.Is(err, campapi.ErrUnauthorized) || errors.Is(err, campapi.ErrForbidden) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrBackend, err)
}
