//go:build integration

package store_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/suite"

	"sportreg/internal/catalog/store"
	"sportreg/pkg/testutil/containers"
)

type CachedStoreSuite struct {
	suite.Suite
	redis  *containers.RedisContainer
	inner  *store.MemoryStore
	cached *store.CachedStore
}

func TestCachedStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(CachedStoreSuite))
}

func (s *CachedStoreSuite) SetupSuite() {
	s.redis = containers.GetRedis(s.T())
}

func (s *CachedStoreSuite) SetupTest() {
	s.Require().NoError(s.redis.FlushAll(context.Background()))
	s.inner = store.NewMemory("Basketball", "Volleyball")
	s.cached = store.NewCached(s.inner, s.redis.Client, slog.New(slog.DiscardHandler))
}

func (s *CachedStoreSuite) TestReadThrough() {
	ctx := context.Background()

	// First read populates the cache.
	sports, err := s.cached.List(ctx)
	s.Require().NoError(err)
	s.Require().Len(sports, 2)

	// A write bypassing the cache is invisible until the TTL or an
	// invalidation, proving the second read was served from Redis.
	_, err = s.inner.Create(ctx, "Chess")
	s.Require().NoError(err)

	sports, err = s.cached.List(ctx)
	s.Require().NoError(err)
	s.Len(sports, 2, "second read should come from the cache")
}

func (s *CachedStoreSuite) TestCreateInvalidates() {
	ctx := context.Background()

	_, err := s.cached.List(ctx)
	s.Require().NoError(err)

	_, err = s.cached.Create(ctx, "Chess")
	s.Require().NoError(err)

	sports, err := s.cached.List(ctx)
	s.Require().NoError(err)
	s.Len(sports, 3, "create must invalidate the cached list")
}

func (s *CachedStoreSuite) TestCorruptEntryFallsBack() {
	ctx := context.Background()

	s.Require().NoError(s.redis.Client.Set(ctx, "catalog:sports", "{corrupt", 0).Err())

	sports, err := s.cached.List(ctx)
	s.Require().NoError(err)
	s.Len(sports, 2, "corrupt cache entries degrade to the store")
}
