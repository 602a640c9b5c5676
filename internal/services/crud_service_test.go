package services_test

import (
	"context"
	"testing"
	"time"

	"shop/internal/actor"
	"shop/internal/constants"
	"shop/internal/dto"
	ierr "shop/internal/errors"
	"shop/internal/mapper"
	"shop/internal/models"
	"shop/internal/repositories"
	"shop/internal/services"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCouponService(store repositories.Store) *services.CrudService[models.Coupon, dto.CouponDTO] {
	session := store.NewSession()
	return services.NewCrudService("coupon", repositories.For[models.Coupon](session), session,
		services.CrudMapper[models.Coupon, dto.CouponDTO]{ToDTO: mapper.CouponToDTO, FromDTO: mapper.CouponFromDTO})
}

func validCoupon(code string) *dto.CouponDTO {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	return &dto.CouponDTO{
		Audit:     dto.Audit{IsActive: true},
		Code:      code,
		Name:      "New year",
		Value:     decimal.NewFromInt(10),
		StartDate: start,
		EndDate:   start.AddDate(0, 1, 0),
	}
}

func TestCrudService_CreateAndGet(t *testing.T) {
	store := repositories.NewMemoryStore()
	ctx := actor.WithActor(context.Background(), actor.Actor{ID: uuid.New(), Name: "alice"})

	res, err := newCouponService(store).Create(ctx, validCoupon("NY10"))
	require.NoError(t, err)
	require.False(t, res.HasError)
	assert.Equal(t, constants.CreateSuccess, res.Message)
	assert.NotEqual(t, uuid.Nil, res.Data.ID)
	assert.Equal(t, "alice", res.Data.CreatedByName)

	got, err := newCouponService(store).GetByID(context.Background(), res.Data.ID)
	require.NoError(t, err)
	require.False(t, got.HasError)
	assert.Equal(t, "NY10", got.Data.Code)
	assert.True(t, got.Data.Value.Equal(decimal.NewFromInt(10)))
}

func TestCrudService_Create_Invalid(t *testing.T) {
	store := repositories.NewMemoryStore()
	svc := newCouponService(store)

	res, err := svc.Create(context.Background(), nil)
	require.NoError(t, err)
	assert.True(t, res.HasError)
	assert.Equal(t, constants.InvalidData, res.Message)

	bad := validCoupon("BAD")
	bad.EndDate = bad.StartDate.AddDate(0, 0, -1)
	res, err = svc.Create(context.Background(), bad)
	require.NoError(t, err)
	assert.True(t, res.HasError)
	assert.True(t, ierr.IsValidation(res.Err))
}

func TestCrudService_Update(t *testing.T) {
	store := repositories.NewMemoryStore()
	creator := actor.WithActor(context.Background(), actor.Actor{ID: uuid.New(), Name: "alice"})
	editor := actor.WithActor(context.Background(), actor.Actor{ID: uuid.New(), Name: "bob"})

	created, err := newCouponService(store).Create(creator, validCoupon("NY10"))
	require.NoError(t, err)

	input := *created.Data
	input.Name = "Renamed"
	res, err := newCouponService(store).Update(editor, &input)
	require.NoError(t, err)
	require.False(t, res.HasError)

	got, err := newCouponService(store).GetByID(context.Background(), input.ID)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.Data.Name)
	assert.Equal(t, "alice", got.Data.CreatedByName)
	assert.Equal(t, "bob", got.Data.UpdatedByName)

	missing := *validCoupon("GHOST")
	missing.ID = uuid.New()
	res, err = newCouponService(store).Update(editor, &missing)
	require.NoError(t, err)
	assert.True(t, res.HasError)
	assert.Equal(t, constants.NotFound, res.Message)
	assert.True(t, ierr.IsNotFound(res.Err))
}

func TestCrudService_Delete(t *testing.T) {
	store := repositories.NewMemoryStore()
	created, err := newCouponService(store).Create(context.Background(), validCoupon("NY10"))
	require.NoError(t, err)

	res, err := newCouponService(store).Delete(context.Background(), created.Data.ID)
	require.NoError(t, err)
	require.False(t, res.HasError)
	assert.True(t, res.Data.IsDeleted)

	got, err := newCouponService(store).GetByID(context.Background(), created.Data.ID)
	require.NoError(t, err)
	assert.True(t, got.HasError)

	res, err = newCouponService(store).Delete(context.Background(), created.Data.ID)
	require.NoError(t, err)
	assert.True(t, ierr.IsNotFound(res.Err))
}

func TestCrudService_List(t *testing.T) {
	store := repositories.NewMemoryStore()
	svc := newCouponService(store)
	for _, code := range []string{"A", "B", "C"} {
		res, err := svc.Create(context.Background(), validCoupon(code))
		require.NoError(t, err)
		require.False(t, res.HasError)
	}
	page1, err := svc.List(context.Background(), 0, 2)
	require.NoError(t, err)

	res, err := svc.Delete(context.Background(), page1.Data.Items[0].ID)
	require.NoError(t, err)
	require.False(t, res.HasError)

	page, err := svc.List(context.Background(), 0, 2)
	require.NoError(t, err)
	require.False(t, page.HasError)
	assert.Equal(t, int64(2), page.Data.TotalCount)
	assert.Len(t, page.Data.Items, 2)
	assert.False(t, page.Data.HasNextPage())

	page, err = svc.List(context.Background(), 5, 0)
	require.NoError(t, err)
	assert.Empty(t, page.Data.Items)
	assert.Equal(t, 10, page.Data.PageSize)
}
