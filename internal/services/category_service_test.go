package services_test

import (
	"context"
	"testing"
	"time"

	"shop/internal/cache"
	"shop/internal/constants"
	"shop/internal/dto"
	ierr "shop/internal/errors"
	"shop/internal/models"
	"shop/internal/repositories"
	"shop/internal/services"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type CategoryServiceTestSuite struct {
	suite.Suite
	miniRedis *miniredis.Miniredis
	client    *redis.Client
	store     *repositories.MemoryStore
}

func TestCategoryServiceSuite(t *testing.T) {
	suite.Run(t, new(CategoryServiceTestSuite))
}

func (s *CategoryServiceTestSuite) SetupSuite() {
	var err error
	s.miniRedis, err = miniredis.Run()
	require.NoError(s.T(), err)
	s.client = redis.NewClient(&redis.Options{Addr: s.miniRedis.Addr()})
}

func (s *CategoryServiceTestSuite) SetupTest() {
	s.miniRedis.FlushAll()
	s.store = repositories.NewMemoryStore()
}

func (s *CategoryServiceTestSuite) TearDownSuite() {
	s.client.Close()
	s.miniRedis.Close()
}

// service returns a CategoryService over a fresh session, like one request would get.
func (s *CategoryServiceTestSuite) service() *services.CategoryService {
	session := s.store.NewSession()
	return services.NewCategoryService(
		repositories.For[models.Category](session),
		repositories.For[models.Product](session),
		session,
		cache.NewRedisCategoryCache(s.client, time.Minute),
	)
}

func (s *CategoryServiceTestSuite) create(name string) dto.CategoryDTO {
	res, err := s.service().Create(context.Background(), &dto.CategoryDTO{Name: name})
	s.Require().NoError(err)
	s.Require().False(res.HasError)
	return *res.Data
}

func (s *CategoryServiceTestSuite) TestCreate_BlankName() {
	res, err := s.service().Create(context.Background(), &dto.CategoryDTO{Name: "   "})

	s.NoError(err)
	s.True(res.HasError)
	s.Equal(constants.InvalidString, res.Message)
}

func (s *CategoryServiceTestSuite) TestList_CachesAndInvalidates() {
	ctx := context.Background()
	s.create("Shoes")
	s.create("Hats")

	res, err := s.service().List(ctx)
	s.Require().NoError(err)
	s.Require().Len(*res.Data, 2)
	s.Equal("Hats", (*res.Data)[0].Name)
	s.True(s.miniRedis.Exists("categories:all"))

	// writes drop the cached list
	s.create("Bags")
	s.False(s.miniRedis.Exists("categories:all"))

	res, err = s.service().List(ctx)
	s.Require().NoError(err)
	s.Len(*res.Data, 3)
}

func (s *CategoryServiceTestSuite) TestList_ServedFromCache() {
	ctx := context.Background()
	cached := []dto.CategoryDTO{{Name: "From cache"}}
	s.Require().NoError(cache.NewRedisCategoryCache(s.client, time.Minute).SetAll(ctx, cached))

	res, err := s.service().List(ctx)

	s.Require().NoError(err)
	s.Require().Len(*res.Data, 1)
	s.Equal("From cache", (*res.Data)[0].Name)
}

func (s *CategoryServiceTestSuite) TestList_CacheDown() {
	s.create("Shoes")
	s.miniRedis.SetError("server down")
	defer s.miniRedis.SetError("")

	res, err := s.service().List(context.Background())

	s.Require().NoError(err)
	s.False(res.HasError)
	s.Len(*res.Data, 1)
}

func (s *CategoryServiceTestSuite) TestUpdate() {
	ctx := context.Background()
	created := s.create("Shoes")

	created.Name = "Footwear"
	res, err := s.service().Update(ctx, &created)
	s.Require().NoError(err)
	s.False(res.HasError)
	s.Equal(constants.UpdateSuccess, res.Message)

	got, err := s.service().GetByID(ctx, created.ID)
	s.Require().NoError(err)
	s.Equal("Footwear", got.Data.Name)

	missing := dto.CategoryDTO{Audit: dto.Audit{ID: uuid.New()}, Name: "Ghost"}
	res, err = s.service().Update(ctx, &missing)
	s.Require().NoError(err)
	s.True(res.HasError)
	s.True(ierr.IsNotFound(res.Err))
}

func (s *CategoryServiceTestSuite) TestDelete() {
	ctx := context.Background()
	empty := s.create("Empty")
	used := s.create("Used")

	session := s.store.NewSession()
	repositories.For[models.Product](session).Add(&models.Product{Name: "Mug", Description: "Blue", CategoryID: used.ID})
	_, err := session.Commit(ctx)
	s.Require().NoError(err)

	res, err := s.service().Delete(ctx, used.ID)
	s.Require().NoError(err)
	s.True(res.HasError)
	s.Equal(constants.InvalidData, res.Message)
	s.True(ierr.IsValidation(res.Err))

	res, err = s.service().Delete(ctx, empty.ID)
	s.Require().NoError(err)
	s.False(res.HasError)
	s.Equal(constants.DeleteSuccess, res.Message)

	got, err := s.service().GetByID(ctx, empty.ID)
	s.Require().NoError(err)
	s.True(got.HasError)

	res, err = s.service().Delete(ctx, empty.ID)
	s.Require().NoError(err)
	s.True(res.HasError)
	s.True(ierr.IsNotFound(res.Err))
}
