package cache

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"

	"dsld/internal/platform/metrics"
	"dsld/pkg/platform/sentinel"
	"dsld/pkg/requestcontext"
)

type option struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type CacheSuite struct {
	suite.Suite
	cache   *MemoryCache
	metrics *metrics.Metrics
	opts    Options
}

func TestCacheSuite(t *testing.T) {
	suite.Run(t, new(CacheSuite))
}

func (s *CacheSuite) SetupTest() {
	s.cache = NewMemory()
	s.metrics = metrics.NewWithRegistry(prometheus.NewRegistry())
	s.opts = Options{
		Cache:   s.cache,
		TTL:     time.Minute,
		Metrics: s.metrics,
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func (s *CacheSuite) TestRememberLoadsOnceThenHits() {
	ctx := context.Background()
	calls := 0
	load := func(context.Context) ([]option, error) {
		calls++
		return []option{{Label: "AMAZONAS", Value: "010000"}}, nil
	}

	first, err := Remember(ctx, s.opts, "departments", load)
	s.Require().NoError(err)
	second, err := Remember(ctx, s.opts, "departments", load)
	s.Require().NoError(err)

	s.Equal(1, calls)
	s.Equal(first, second)
	s.Equal(1.0, testutil.ToFloat64(s.metrics.CacheResults.WithLabelValues("hit")))
	s.Equal(1.0, testutil.ToFloat64(s.metrics.CacheResults.WithLabelValues("miss")))
}

func (s *CacheSuite) TestRememberDoesNotCacheErrors() {
	ctx := context.Background()
	calls := 0
	load := func(context.Context) ([]option, error) {
		calls++
		return nil, errors.New("db down")
	}

	_, err := Remember(ctx, s.opts, "k", load)
	s.Error(err)
	_, err = Remember(ctx, s.opts, "k", load)
	s.Error(err)
	s.Equal(2, calls)
}

func (s *CacheSuite) TestEntriesExpire() {
	start := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	ctx := requestcontext.WithTime(context.Background(), start)
	s.Require().NoError(s.cache.Set(ctx, "k", []option{{Label: "a"}}, time.Minute))

	var got []option
	s.Require().NoError(s.cache.Get(ctx, "k", &got))

	later := requestcontext.WithTime(context.Background(), start.Add(2*time.Minute))
	s.ErrorIs(s.cache.Get(later, "k", &got), sentinel.ErrCacheMiss)
}

func (s *CacheSuite) TestFlush() {
	ctx := context.Background()
	s.Require().NoError(s.cache.Set(ctx, "a", 1, time.Minute))
	s.Require().NoError(s.cache.Set(ctx, "b", 2, time.Minute))

	n, err := s.cache.Flush(ctx)
	s.Require().NoError(err)
	s.Equal(2, n)

	var v int
	s.ErrorIs(s.cache.Get(ctx, "a", &v), sentinel.ErrCacheMiss)
}

func (s *CacheSuite) TestRememberWithoutCacheAlwaysLoads() {
	calls := 0
	load := func(context.Context) (int, error) { calls++; return 7, nil }
	for range 3 {
		v, err := Remember(context.Background(), Options{}, "k", load)
		s.Require().NoError(err)
		s.Equal(7, v)
	}
	s.Equal(3, calls)
}

func (s *CacheSuite) TestKeyEscapesSeparators() {
	s.NotEqual(Key("trainings", "types", "a:b", "c"), Key("trainings", "types", "a", "b:c"))
	s.Equal("locations:province:080000", Key("locations", "province", "080000"))
	s.Equal("trainings:locations:district:LIMA:", Key("trainings", "locations", "district", "LIMA", ""))
}

func (s *CacheSuite) TestRememberSeparatesEscapedKeys() {
	ctx := context.Background()
	first, err := Remember(ctx, s.opts, Key("defenders", "a:b", "c"), func(context.Context) (int, error) { return 1, nil })
	s.Require().NoError(err)
	second, err := Remember(ctx, s.opts, Key("defenders", "a", "b:c"), func(context.Context) (int, error) { return 2, nil })
	s.Require().NoError(err)
	s.Equal(1, first)
	s.Equal(2, second)
}
