// Package service decides whether a client may run another identifier
// lookup. A shared store is preferred; while it fails repeatedly the
// in-memory fallback keeps limits enforced per instance.
package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"dsld/internal/ratelimit/models"
	"dsld/pkg/platform/circuit"
)

// Store counts requests per key within a window.
type Store interface {
	Allow(ctx context.Context, key string, limit int, window time.Duration) (*models.Result, error)
}

type Service struct {
	primary  Store
	fallback Store
	breaker  *circuit.Breaker
	limit    int
	window   time.Duration
	logger   *slog.Logger
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithFallback sets the store used while the primary's breaker is open.
func WithFallback(store Store, breaker *circuit.Breaker) Option {
	return func(s *Service) {
		s.fallback = store
		s.breaker = breaker
	}
}

// WithLimit sets the requests allowed per window for one client.
func WithLimit(requests int, window time.Duration) Option {
	return func(s *Service) {
		s.limit = requests
		s.window = window
	}
}

func New(primary Store, opts ...Option) (*Service, error) {
	if primary == nil {
		return nil, errors.New("rate limit store is required")
	}
	svc := &Service{
		primary: primary,
		limit:   30,
		window:  time.Minute,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(svc)
	}
	if svc.fallback != nil && svc.breaker == nil {
		svc.breaker = circuit.New("ratelimit")
	}
	return svc, nil
}

// CheckLookup counts one lookup from ip. An error means neither store could
// decide; callers let the request through.
func (s *Service) CheckLookup(ctx context.Context, ip string) (*models.Result, error) {
	key := models.LookupKey(ip)
	result, err := s.primary.Allow(ctx, key, s.limit, s.window)
	if s.fallback == nil {
		return result, err
	}

	if err != nil {
		useFallback, change := s.breaker.RecordFailure()
		if change.Opened {
			s.logger.WarnContext(ctx, "rate limit store failing, using in-memory fallback",
				"breaker", s.breaker.Name(),
				"error", err,
			)
		}
		if !useFallback {
			return nil, err
		}
		return s.fallback.Allow(ctx, key, s.limit, s.window)
	}

	usePrimary, change := s.breaker.RecordSuccess()
	if change.Closed {
		s.logger.InfoContext(ctx, "rate limit store recovered", "breaker", s.breaker.Name())
	}
	if !usePrimary {
		return s.fallback.Allow(ctx, key, s.limit, s.window)
	}
	return result, nil
}

// Degraded reports whether decisions currently come from the fallback.
func (s *Service) Degraded() bool {
	return s.breaker != nil && s.breaker.IsOpen()
}
