package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	committeeHandler "dsld/internal/committee/handler"
	committeeService "dsld/internal/committee/service"
	committeeStore "dsld/internal/committee/store"
	defenderHandler "dsld/internal/defender/handler"
	defenderService "dsld/internal/defender/service"
	defenderStore "dsld/internal/defender/store"
	locationHandler "dsld/internal/location/handler"
	locationService "dsld/internal/location/service"
	locationStore "dsld/internal/location/store"
	officeHandler "dsld/internal/office/handler"
	officeService "dsld/internal/office/service"
	officeStore "dsld/internal/office/store"
	"dsld/internal/platform/cache"
	"dsld/internal/platform/config"
	"dsld/internal/platform/database"
	"dsld/internal/platform/httpserver"
	"dsld/internal/platform/logger"
	"dsld/internal/platform/metrics"
	"dsld/internal/platform/redis"
	"dsld/internal/platform/tracing"
	ratelimitMiddleware "dsld/internal/ratelimit/middleware"
	ratelimitService "dsld/internal/ratelimit/service"
	"dsld/internal/ratelimit/store/window"
	trainingHandler "dsld/internal/training/handler"
	trainingService "dsld/internal/training/service"
	trainingStore "dsld/internal/training/store"
	httptransport "dsld/internal/transport/http"
	"dsld/internal/validity"
	"dsld/pkg/platform/circuit"
)

// main wires configuration, backing services and the dataset modules, then
// serves until SIGINT or SIGTERM.
func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(cfg.Log)

	shutdownTracing, err := tracing.Setup(cfg.Tracing, os.Stdout)
	if err != nil {
		log.Error("tracing setup failed", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = run(ctx, cfg, log)
	flushCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if ferr := shutdownTracing(flushCtx); ferr != nil {
		log.Error("flush traces", "error", ferr)
	}
	if err != nil {
		log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, log *slog.Logger) error {
	db, err := database.Open(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	rdb, err := redis.New(ctx, cfg.Redis)
	if err != nil {
		return err
	}
	if rdb != nil {
		defer rdb.Close()
	}

	m := metrics.New()
	optionCache := buildCache(rdb, cfg.Cache, log)
	clock := validity.NewClock(cfg.Dashboard.Location())
	ttl := cfg.Cache.OptionsTTL
	exportLimit := cfg.Dashboard.ExportRowCap

	locations, err := locationService.New(locationStore.NewPostgres(db),
		locationService.WithLogger(log),
		locationService.WithMetrics(m),
		locationService.WithCache(optionCache, ttl),
	)
	if err != nil {
		return err
	}
	offices, err := officeService.New(officeStore.NewPostgres(db),
		officeService.WithLogger(log),
		officeService.WithMetrics(m),
		officeService.WithCache(optionCache, ttl),
		officeService.WithExportLimit(exportLimit),
	)
	if err != nil {
		return err
	}
	trainings, err := trainingService.New(trainingStore.NewPostgres(db),
		trainingService.WithLogger(log),
		trainingService.WithMetrics(m),
		trainingService.WithCache(optionCache, ttl),
		trainingService.WithClock(clock),
		trainingService.WithExportLimit(exportLimit),
	)
	if err != nil {
		return err
	}
	defenders, err := defenderService.New(defenderStore.NewPostgres(db),
		defenderService.WithLogger(log),
		defenderService.WithMetrics(m),
		defenderService.WithCache(optionCache, ttl),
		defenderService.WithClock(clock),
		defenderService.WithExportLimit(exportLimit),
	)
	if err != nil {
		return err
	}
	committees, err := committeeService.New(committeeStore.NewPostgres(db), locations,
		committeeService.WithLogger(log),
		committeeService.WithMetrics(m),
		committeeService.WithCache(optionCache, ttl),
		committeeService.WithClock(clock),
		committeeService.WithExportLimit(exportLimit),
	)
	if err != nil {
		return err
	}

	memoryWindows := window.NewInMemory()
	go sweepWindows(ctx, memoryWindows)
	limiter, err := buildLimiter(rdb, memoryWindows, cfg.RateLimit, log)
	if err != nil {
		return err
	}
	lookupGate := ratelimitMiddleware.New(limiter, log,
		ratelimitMiddleware.WithMetrics(m),
		ratelimitMiddleware.WithDisabled(!cfg.RateLimit.Enabled),
	)

	officeRoutes := officeHandler.New(offices, log, m)
	trainingRoutes := trainingHandler.New(trainings, log, m)
	defenderRoutes := defenderHandler.New(defenders, log, m)
	committeeRoutes := committeeHandler.New(committees, log, m)

	router := httptransport.NewRouter(httptransport.Dependencies{
		Logger:  log,
		Metrics: m,
		Modules: []httptransport.Module{
			locationHandler.New(locations, log, m),
			officeRoutes,
			trainingRoutes,
			defenderRoutes,
			committeeRoutes,
		},
		Lookups:    []httptransport.LookupModule{officeRoutes, trainingRoutes, defenderRoutes, committeeRoutes},
		LookupGate: lookupGate.Lookups,
		Cache:      optionCache,
		AdminToken: cfg.Server.AdminToken,
		Checks:     healthChecks(db, rdb),
	})

	srv := httpserver.New(cfg.Server.Addr, router)
	errCh := make(chan error, 1)
	go func() {
		log.Info("starting dsld dashboard", "addr", cfg.Server.Addr, "env", cfg.Server.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}

// buildCache prefers Redis so replicas share option lists.
func buildCache(rdb *redis.Client, cfg config.CacheConfig, log *slog.Logger) cache.Cache {
	if rdb == nil {
		log.Info("redis not configured, using in-process option cache")
		return cache.NewMemory()
	}
	return cache.NewRedis(rdb.Client, cfg.KeyPrefix)
}

// buildLimiter counts lookups in Redis when available, falling back to an
// in-process window while Redis keeps failing.
func buildLimiter(rdb *redis.Client, memory *window.InMemoryStore, cfg config.RateLimitConfig, log *slog.Logger) (*ratelimitService.Service, error) {
	opts := []ratelimitService.Option{
		ratelimitService.WithLogger(log),
		ratelimitService.WithLimit(cfg.LookupRequests, cfg.LookupWindow),
	}
	if rdb == nil {
		return ratelimitService.New(memory, opts...)
	}
	opts = append(opts, ratelimitService.WithFallback(memory, circuit.New("lookup-limiter")))
	return ratelimitService.New(window.NewRedis(rdb.Client, "dsld:ratelimit:"), opts...)
}

func healthChecks(db *sql.DB, rdb *redis.Client) []httptransport.HealthCheck {
	checks := []httptransport.HealthCheck{{
		Name: "database",
		Check: func(ctx context.Context) error {
			return database.Health(ctx, db)
		},
	}}
	if rdb != nil {
		checks = append(checks, httptransport.HealthCheck{Name: "redis", Check: rdb.Health})
	}
	return checks
}

// sweepEvery bounds the memory held by idle in-process rate limit windows.
const sweepEvery = 5 * time.Minute

func sweepWindows(ctx context.Context, store *window.InMemoryStore) {
	ticker := time.NewTicker(sweepEvery)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			store.Sweep()
		}
	}
}
