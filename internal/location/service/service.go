// Package service resolves cascading location options and ubigeo names.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"dsld/internal/filter"
	"dsld/internal/location/models"
	"dsld/internal/platform/cache"
	"dsld/internal/platform/metrics"
	"dsld/internal/views"
	"dsld/pkg/platform/sentinel"
)

// Store reads the ubigeo table.
type Store interface {
	List(ctx context.Context, scope models.Scope) ([]models.Option, error)
	Name(ctx context.Context, code string) (string, error)
}

type Service struct {
	store    Store
	cache    cache.Cache
	cacheTTL time.Duration
	logger   *slog.Logger
	metrics  *metrics.Metrics
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// WithCache caches option lists for ttl.
func WithCache(c cache.Cache, ttl time.Duration) Option {
	return func(s *Service) {
		s.cache = c
		s.cacheTTL = ttl
	}
}

func New(store Store, opts ...Option) (*Service, error) {
	if store == nil {
		return nil, errors.New("location store is required")
	}
	svc := &Service{
		store:  store,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc, nil
}

// Options lists the options at level under parent. A failing store yields
// an empty, degraded list.
func (s *Service) Options(ctx context.Context, level filter.Level, parent string) models.OptionList {
	parent = strings.TrimSpace(parent)
	scope := models.ScopeFor(level, parent)
	if scope.IsEmpty() {
		return models.OptionList{Options: []models.Option{}}
	}

	key := cache.Key("locations", string(level), parent)
	start := time.Now()
	options, err := cache.Remember(ctx, s.cacheOptions(), key, func(ctx context.Context) ([]models.Option, error) {
		opts, err := s.store.List(ctx, scope)
		if err != nil {
			return nil, err
		}
		if level == filter.LevelDepartment {
			opts = models.SplitLima(opts)
		}
		return opts, nil
	})
	if s.recorder().Observe(ctx, "options_"+string(level), start, err) {
		return models.OptionList{Options: []models.Option{}, Degraded: true}
	}
	return models.OptionList{Options: options}
}

// NameFor returns the display name of code. Synthetic Lima codes have fixed
// names; unknown codes and failed lookups yield "".
func (s *Service) NameFor(ctx context.Context, code string) string {
	name, _ := s.resolve(ctx, code)
	return name
}

// Names resolves a department/province/district code selection to the
// names stored in the datasets. Unknown codes resolve to ""; a failing
// store is returned as an error so callers never widen the selection.
func (s *Service) Names(ctx context.Context, codes filter.Location) (filter.Location, error) {
	var names filter.Location
	var err error
	if names.Department, err = s.resolve(ctx, codes.Department); err != nil {
		return filter.Location{}, err
	}
	if names.Province, err = s.resolve(ctx, codes.Province); err != nil {
		return filter.Location{}, err
	}
	if names.District, err = s.resolve(ctx, codes.District); err != nil {
		return filter.Location{}, err
	}
	return names, nil
}

func (s *Service) resolve(ctx context.Context, code string) (string, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return "", nil
	}
	if name, ok := models.SyntheticName(code); ok {
		return name, nil
	}

	start := time.Now()
	name, err := s.store.Name(ctx, code)
	if errors.Is(err, sentinel.ErrNotFound) {
		return "", nil
	}
	if s.recorder().Observe(ctx, "name", start, err) {
		return "", fmt.Errorf("resolve location %s: %w", code, err)
	}
	return name, nil
}

func (s *Service) cacheOptions() cache.Options {
	return cache.Options{Cache: s.cache, TTL: s.cacheTTL, Metrics: s.metrics, Logger: s.logger}
}

func (s *Service) recorder() views.Recorder {
	return views.Recorder{Dataset: "locations", Logger: s.logger, Metrics: s.metrics}
}
