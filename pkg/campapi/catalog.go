package campapi

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/dmitrymomot/campkit/pkg/cache"
	"github.com/dmitrymomot/campkit/pkg/location"
	"github.com/dmitrymomot/campkit/pkg/logger"
)

// CatalogSource is the subset of Client that CachedCatalog memoises.
type CatalogSource interface {
	ListCamps(ctx context.Context) ([]Camp, error)
	GetCamp(ctx context.Context, id int) (Camp, error)
	LocationTree(ctx context.Context) (location.Tree, error)
}

const (
	campsKey     = "camps"
	locationsKey = "locations"
)

func campKey(id int) string { return "camp:" + strconv.Itoa(id) }

// CachedCatalog serves camp metadata and the location tree from a cache
// store, falling back to the backend on a miss. Backend errors are never
// cached.
type CachedCatalog struct {
	src       CatalogSource
	camps     cache.Store[[]Camp]
	camp      cache.Store[Camp]
	locations cache.Store[location.Tree]
	logger    *slog.Logger
}

// CatalogStores groups the stores of a CachedCatalog so that memory and
// Redis stores can be mixed.
type CatalogStores struct {
	Camps     cache.Store[[]Camp]
	Camp      cache.Store[Camp]
	Locations cache.Store[location.Tree]
}

// NewCachedCatalog wraps src with the given stores.
func NewCachedCatalog(src CatalogSource, stores CatalogStores, log *slog.Logger) *CachedCatalog {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &CachedCatalog{
		src:       src,
		camps:     stores.Camps,
		camp:      stores.Camp,
		locations: stores.Locations,
		logger:    log.With(logger.Component("catalog")),
	}
}

// ListCamps returns every camp.
func (c *CachedCatalog) ListCamps(ctx context.Context) ([]Camp, error) {
	return cache.GetOrLoad(ctx, c.camps, campsKey, c.src.ListCamps)
}

// GetCamp returns one camp.
func (c *CachedCatalog) GetCamp(ctx context.Context, id int) (Camp, error) {
	return cache.GetOrLoad(ctx, c.camp, campKey(id), func(ctx context.Context) (Camp, error) {
		return c.src.GetCamp(ctx, id)
	})
}

// LocationTree returns the location hierarchy.
func (c *CachedCatalog) LocationTree(ctx context.Context) (location.Tree, error) {
	return cache.GetOrLoad(ctx, c.locations, locationsKey, c.src.LocationTree)
}

// InvalidateLocations drops the cached tree after an admin change. The next
// read reloads it; forms holding an older tree detect staleness on submit.
func (c *CachedCatalog) InvalidateLocations(ctx context.Context) {
	if err := c.locations.Invalidate(ctx, locationsKey); err != nil {
		c.logger.WarnContext(ctx, "failed to invalidate location tree", logger.Error(err))
	}
}

// InvalidateCamps drops the cached camp list and the given camps.
func (c *CachedCatalog) InvalidateCamps(ctx context.Context, ids ...int) {
	if err := c.camps.Invalidate(ctx, campsKey); err != nil {
		c.logger.WarnContext(ctx, "failed to invalidate camps", logger.Error(err))
	}
	for _, id := range ids {
		if err := c.camp.Invalidate(ctx, campKey(id)); err != nil {
			c.logger.WarnContext(ctx, "failed to invalidate camp", logger.CampID(id), logger.Error(err))
		}
	}
}
