package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/campkit/handler"
	adminmod "github.com/dmitrymomot/campkit/modules/admin"
	authmod "github.com/dmitrymomot/campkit/modules/auth"
	badgesmod "github.com/dmitrymomot/campkit/modules/badges"
	dashboardmod "github.com/dmitrymomot/campkit/modules/dashboard"
	paymentsmod "github.com/dmitrymomot/campkit/modules/payments"
	registrationmod "github.com/dmitrymomot/campkit/modules/registration"
	"github.com/dmitrymomot/campkit/pkg/broadcast"
	"github.com/dmitrymomot/campkit/pkg/cache"
	"github.com/dmitrymomot/campkit/pkg/campapi"
	"github.com/dmitrymomot/campkit/pkg/clientip"
	"github.com/dmitrymomot/campkit/pkg/environment"
	"github.com/dmitrymomot/campkit/pkg/httpserver"
	"github.com/dmitrymomot/campkit/pkg/i18n"
	"github.com/dmitrymomot/campkit/pkg/location"
	"github.com/dmitrymomot/campkit/pkg/metrics"
	"github.com/dmitrymomot/campkit/pkg/ratelimiter"
	"github.com/dmitrymomot/campkit/pkg/redis"
	"github.com/dmitrymomot/campkit/pkg/requestid"
	"github.com/dmitrymomot/campkit/pkg/session"
	"github.com/dmitrymomot/campkit/svc/admin"
	"github.com/dmitrymomot/campkit/svc/badge"
	"github.com/dmitrymomot/campkit/svc/dashboard"
	"github.com/dmitrymomot/campkit/svc/payment"
	"github.com/dmitrymomot/campkit/svc/registration"
)

// app holds the assembled HTTP handler and what must be released on
// shutdown.
type app struct {
	handler http.Handler
	closers []func()
}

// Close releases resources in reverse order of acquisition.
func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
}

func newApp(ctx context.Context, cfg Config, env environment.Environment, log *slog.Logger) (_ *app, err error) {
	a := &app{}
	defer func() {
		if err != nil {
			a.Close()
		}
	}()

	client, err := campapi.New(cfg.API, campapi.WithLogger(log))
	if err != nil {
		return nil, fmt.Errorf("backend client: %w", err)
	}
	checks := []httpserver.Check{{Name: "backend", Fn: client.Ping}}

	stores := campapi.CatalogStores{
		Camps:     cache.NewMemory[[]campapi.Camp](1, cfg.CacheTTL),
		Camp:      cache.NewMemory[campapi.Camp](cfg.CacheSize, cfg.CacheTTL),
		Locations: cache.NewMemory[location.Tree](1, cfg.CacheTTL),
	}
	if cfg.Redis.Enabled() {
		rdb, err := redis.Connect(ctx, cfg.Redis)
		if err != nil {
			return nil, fmt.Errorf("redis: %w", err)
		}
		a.closers = append(a.closers, func() {
			if err := rdb.Close(); err != nil {
				log.Error("failed to close redis client", slog.Any("error", err))
			}
		})
		prefix := cfg.Redis.KeyPrefix + "catalog:"
		stores = campapi.CatalogStores{
			Camps:     redis.NewStore[[]campapi.Camp](rdb, prefix, cfg.CacheTTL),
			Camp:      redis.NewStore[campapi.Camp](rdb, prefix, cfg.CacheTTL),
			Locations: redis.NewStore[location.Tree](rdb, prefix, cfg.CacheTTL),
		}
		checks = append(checks, httpserver.Check{Name: "redis", Fn: redis.Healthcheck(rdb)})
	}
	catalog := campapi.NewCachedCatalog(client, stores, log)

	translations, err := i18n.LoadDefault(ctx)
	if err != nil {
		return nil, fmt.Errorf("translations: %w", err)
	}
	tr, err := i18n.NewTranslator(translations,
		i18n.WithDefaultLanguage(cfg.DefaultLang),
		i18n.WithLogger(log),
	)
	if err != nil {
		return nil, fmt.Errorf("translator: %w", err)
	}
	negotiator := i18n.NewNegotiator(tr.SupportedLanguages(), tr.DefaultLanguage())

	sessions, err := session.NewManager(cfg.Session)
	if err != nil {
		return nil, fmt.Errorf("sessions: %w", err)
	}

	payments := broadcast.NewNotifier()
	a.closers = append(a.closers, func() { _ = payments.Close() })

	m := metrics.New("campkit")
	watchCtx, stopWatch := context.WithCancel(context.WithoutCancel(ctx))
	a.closers = append(a.closers, stopWatch)
	go m.ObservePayments(watchCtx, payments.Subscribe(watchCtx).Updates())

	attempts := ratelimiter.NewMemoryStore()
	a.closers = append(a.closers, attempts.Close)
	loginLimiter, err := ratelimiter.NewBucket(attempts, cfg.Login)
	if err != nil {
		return nil, fmt.Errorf("login limiter: %w", err)
	}

	errorHandler := handler.NewErrorHandler(log, tr)

	registrationSvc := registration.NewService(catalog, client, registration.WithLogger(log))
	paymentSvc := payment.NewService(client, payments, payment.WithLogger(log))
	badgeSvc := badge.NewService(client, catalog,
		badge.WithQROptions(cfg.Badge.Options()...),
		badge.WithLogger(log),
	)
	dashboardSvc := dashboard.NewService(client, payments,
		dashboard.WithMaxAge(cfg.DashboardMaxAge),
		dashboard.WithLogger(log),
	)
	adminSvc := admin.NewService(client, catalog,
		admin.WithPageSize(cfg.PageSize),
		admin.WithLogger(log),
	)

	r := chi.NewRouter()
	r.Use(
		m.Middleware,
		middleware.Recoverer,
		requestid.Middleware,
		clientip.Middleware,
		environment.Middleware(env),
		i18n.Middleware(negotiator),
		session.Middleware(sessions),
		authmod.BackendToken,
	)

	r.Get("/healthz", httpserver.HealthCheckHandler(log, checks...))
	r.Get("/livez", httpserver.HealthCheckHandler(log))
	r.Method(http.MethodGet, "/metrics", m.Handler())

	r.Mount("/auth", authmod.NewModule(client, sessions, errorHandler, log,
		authmod.WithLoginLimiter(loginLimiter),
	).Handle())
	r.Mount("/registration", registrationmod.NewModule(registrationSvc, tr, errorHandler, log).Handle())
	r.With(authmod.RequireRole(errorHandler, campapi.RoleTreasurer)).
		Mount("/payments", paymentsmod.NewModule(paymentSvc, payments, tr, cfg.PageSize, errorHandler, log).Handle())
	r.With(authmod.RequireRole(errorHandler, campapi.RoleLeader, campapi.RoleTreasurer)).
		Mount("/badges", badgesmod.NewModule(badgeSvc, nil, errorHandler, log).Handle())
	r.With(authmod.RequireRole(errorHandler, campapi.RoleTreasurer)).
		Mount("/dashboard", dashboardmod.NewModule(dashboardSvc, payments, errorHandler, log).Handle())
	r.With(authmod.RequireRole(errorHandler)).
		Mount("/admin", adminmod.NewModule(adminSvc, errorHandler, log).Handle())

	a.handler = r
	return a, nil
}
