//go:build integration

package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"dsld/internal/platform/cache"
	"dsld/pkg/platform/sentinel"
	"dsld/pkg/testutil/containers"
)

type RedisCacheSuite struct {
	suite.Suite
	redis *containers.RedisContainer
	cache *cache.RedisCache
}

func TestRedisCacheSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(RedisCacheSuite))
}

func (s *RedisCacheSuite) SetupSuite() {
	mgr := containers.GetManager()
	s.redis = mgr.GetRedis(s.T())
	s.cache = cache.NewRedis(s.redis.Client, "dsld:options:")
}

func (s *RedisCacheSuite) SetupTest() {
	s.Require().NoError(s.redis.FlushAll(context.Background()))
}

func (s *RedisCacheSuite) TestSetGetRoundTrip() {
	ctx := context.Background()
	s.Require().NoError(s.cache.Set(ctx, "courses", []string{"ABC", "XYZ"}, time.Minute))

	var got []string
	s.Require().NoError(s.cache.Get(ctx, "courses", &got))
	s.Equal([]string{"ABC", "XYZ"}, got)

	keys, err := s.redis.Keys(ctx, "dsld:options:*")
	s.Require().NoError(err)
	s.Len(keys, 1)
}

func (s *RedisCacheSuite) TestMiss() {
	var got []string
	s.ErrorIs(s.cache.Get(context.Background(), "absent", &got), sentinel.ErrCacheMiss)
}

func (s *RedisCacheSuite) TestFlushOnlyTouchesPrefix() {
	ctx := context.Background()
	s.Require().NoError(s.cache.Set(ctx, "a", 1, time.Minute))
	s.Require().NoError(s.cache.Set(ctx, "b", 2, time.Minute))
	s.Require().NoError(s.redis.Client.Set(ctx, "other:key", "x", time.Minute).Err())

	n, err := s.cache.Flush(ctx)
	s.Require().NoError(err)
	s.Equal(2, n)

	exists, err := s.redis.Client.Exists(ctx, "other:key").Result()
	s.Require().NoError(err)
	s.Equal(int64(1), exists)
}
