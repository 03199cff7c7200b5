package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type CacheTestSuite struct {
	suite.Suite
	mr     *miniredis.Miniredis
	client *redis.Client
	cache  *Cache
	ctx    context.Context
}

func (s *CacheTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{Addr: s.mr.Addr()})
	s.cache = NewWithClient(s.client, time.Minute)
	s.ctx = context.Background()
}

func (s *CacheTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestCacheTestSuite(t *testing.T) {
	suite.Run(t, new(CacheTestSuite))
}

func (s *CacheTestSuite) TestSetAndGet() {
	s.cache.Set(s.ctx, KeyScheduleDates, []string{"2025-06-15", "2025-07-20"})

	var dates []string
	s.True(s.cache.Get(s.ctx, KeyScheduleDates, &dates))
	s.Equal([]string{"2025-06-15", "2025-07-20"}, dates)
}

func (s *CacheTestSuite) TestGetMiss() {
	var dates []string
	s.False(s.cache.Get(s.ctx, KeyScheduleDates, &dates))
}

func (s *CacheTestSuite) TestEntryExpires() {
	s.cache.Set(s.ctx, KeyScheduleDates, []string{"2025-06-15"})

	s.mr.FastForward(2 * time.Minute)

	var dates []string
	s.False(s.cache.Get(s.ctx, KeyScheduleDates, &dates))
}

func (s *CacheTestSuite) TestInvalidate() {
	s.cache.Set(s.ctx, KeyAvailableSessions, []string{"a"})
	s.cache.Set(s.ctx, KeyAvailableSessionsAll, []string{"b"})

	s.cache.Invalidate(s.ctx, KeyAvailableSessions, KeyAvailableSessionsAll)

	var out []string
	s.False(s.cache.Get(s.ctx, KeyAvailableSessions, &out))
	s.False(s.cache.Get(s.ctx, KeyAvailableSessionsAll, &out))
}

func (s *CacheTestSuite) TestNilCacheIsNoOp() {
	var nilCache *Cache

	nilCache.Set(s.ctx, KeyScheduleDates, []string{"x"})
	nilCache.Invalidate(s.ctx, KeyScheduleDates)

	var out []string
	s.False(nilCache.Get(s.ctx, KeyScheduleDates, &out))
	s.NoError(nilCache.Close())
}
