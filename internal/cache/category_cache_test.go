package cache

import (
	"context"
	"testing"
	"time"

	"shop/internal/dto"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type CategoryCacheTestSuite struct {
	suite.Suite
	miniRedis *miniredis.Miniredis
	client    *redis.Client
	cache     *RedisCategoryCache
}

func TestCategoryCacheSuite(t *testing.T) {
	suite.Run(t, new(CategoryCacheTestSuite))
}

func (s *CategoryCacheTestSuite) SetupSuite() {
	var err error
	s.miniRedis, err = miniredis.Run()
	require.NoError(s.T(), err)

	s.client = redis.NewClient(&redis.Options{
		Addr: s.miniRedis.Addr(),
	})
	s.cache = NewRedisCategoryCache(s.client, 10*time.Minute)
}

func (s *CategoryCacheTestSuite) SetupTest() {
	s.miniRedis.FlushAll()
}

func (s *CategoryCacheTestSuite) TearDownSuite() {
	s.client.Close()
	s.miniRedis.Close()
}

func (s *CategoryCacheTestSuite) TestGetAll_Miss() {
	categories, ok, err := s.cache.GetAll(context.Background())

	s.NoError(err)
	s.False(ok)
	s.Nil(categories)
}

func (s *CategoryCacheTestSuite) TestSetAll_ThenGetAll() {
	ctx := context.Background()
	id := uuid.New()
	input := []dto.CategoryDTO{{Audit: dto.Audit{ID: id}, Name: "Shoes"}}

	s.Require().NoError(s.cache.SetAll(ctx, input))

	categories, ok, err := s.cache.GetAll(ctx)
	s.NoError(err)
	s.True(ok)
	s.Require().Len(categories, 1)
	s.Equal(id, categories[0].ID)
	s.Equal("Shoes", categories[0].Name)
}

func (s *CategoryCacheTestSuite) TestSetAll_Expires() {
	ctx := context.Background()
	s.Require().NoError(s.cache.SetAll(ctx, []dto.CategoryDTO{{Name: "Hats"}}))

	s.miniRedis.FastForward(11 * time.Minute)

	_, ok, err := s.cache.GetAll(ctx)
	s.NoError(err)
	s.False(ok)
}

func (s *CategoryCacheTestSuite) TestInvalidate() {
	ctx := context.Background()
	s.Require().NoError(s.cache.SetAll(ctx, []dto.CategoryDTO{{Name: "Hats"}}))

	s.NoError(s.cache.Invalidate(ctx))
	s.False(s.miniRedis.Exists(categoriesCacheKey))
}

func (s *CategoryCacheTestSuite) TestGetAll_CorruptPayload() {
	s.Require().NoError(s.miniRedis.Set(categoriesCacheKey, "{not json"))

	_, ok, err := s.cache.GetAll(context.Background())
	s.Error(err)
	s.False(ok)
}
