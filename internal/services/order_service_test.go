package services_test

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"shop/internal/constants"
	"shop/internal/dto"
	ierr "shop/internal/errors"
	"shop/internal/models"
	"shop/internal/repositories"
	"shop/internal/services"
	"shop/pkg/rabbitmq"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type orderFixture struct {
	store     *repositories.MemoryStore
	publisher *MockPublisher
	mug       models.Product
	hat       models.Product
}

func newOrderFixture(t *testing.T) *orderFixture {
	f := &orderFixture{
		store:     repositories.NewMemoryStore(),
		publisher: new(MockPublisher),
	}

	session := f.store.NewSession()
	category := &models.Category{Name: "Kitchen"}
	repositories.For[models.Category](session).Add(category)

	mug := &models.Product{Name: "Mug", Description: "Blue", CategoryID: category.ID, Price: decimal.RequireFromString("12.50"), SaleCount: 3}
	hat := &models.Product{Name: "Hat", Description: "Red", CategoryID: category.ID, Price: decimal.RequireFromString("20.00")}
	products := repositories.For[models.Product](session)
	products.Add(mug)
	products.Add(hat)

	now := time.Now().UTC()
	coupons := repositories.For[models.Coupon](session)
	percent := &models.Coupon{Code: "TENOFF", Name: "Ten percent", HasPercent: true, Value: decimal.NewFromInt(10), StartDate: now.Add(-time.Hour), EndDate: now.Add(time.Hour)}
	percent.IsActive = true
	big := &models.Coupon{Code: "HUGE", Name: "Huge", Value: decimal.NewFromInt(1000), StartDate: now.Add(-time.Hour), EndDate: now.Add(time.Hour)}
	big.IsActive = true
	expired := &models.Coupon{Code: "OLD", Name: "Old", Value: decimal.NewFromInt(5), StartDate: now.Add(-48 * time.Hour), EndDate: now.Add(-24 * time.Hour)}
	expired.IsActive = true
	coupons.Add(percent)
	coupons.Add(big)
	coupons.Add(expired)

	_, err := session.Commit(context.Background())
	require.NoError(t, err)

	f.mug, f.hat = *mug, *hat
	return f
}

func (f *orderFixture) service(publisher services.EventPublisher) *services.OrderService {
	session := f.store.NewSession()
	products := repositories.For[models.Product](session)
	return services.NewOrderService(services.OrderRepositories{
		Orders:   repositories.For[models.Order](session),
		Details:  repositories.For[models.OrderDetail](session),
		Products: products,
		Coupons:  repositories.For[models.Coupon](session),
	}, session, services.NewProductService(products, repositories.For[models.Category](session), session), publisher)
}

func (f *orderFixture) request(items ...dto.OrderItemRequest) *dto.CreateOrderRequest {
	return &dto.CreateOrderRequest{
		FullName: "Jane Doe",
		Email:    "jane@example.com",
		Phone:    "0812345678",
		Address:  "1 Main St",
		Items:    items,
	}
}

func (f *orderFixture) product(t *testing.T, id uuid.UUID) *models.Product {
	p, err := repositories.For[models.Product](f.store.NewSession()).Find(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, p)
	return p
}

func TestOrderService_CreateOrder(t *testing.T) {
	f := newOrderFixture(t)
	var published []byte
	f.publisher.On("Publish", rabbitmq.DefaultExchange, rabbitmq.RoutingOrderCreated, mock.Anything).
		Run(func(args mock.Arguments) { published = args.Get(2).([]byte) }).
		Return(nil).Once()

	req := f.request(
		dto.OrderItemRequest{ProductID: f.mug.ID, Quantity: 2},
		dto.OrderItemRequest{ProductID: f.hat.ID, Quantity: 1},
		dto.OrderItemRequest{ProductID: f.mug.ID, Quantity: 1},
	)
	res, err := f.service(f.publisher).CreateOrder(context.Background(), req)

	require.NoError(t, err)
	require.False(t, res.HasError, res.Message)
	order := res.Data
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Contains(t, order.Code, "ORD-")
	assert.Equal(t, 4, order.TotalItem)
	assert.True(t, order.TotalAmount.Equal(decimal.RequireFromString("57.50")), order.TotalAmount.String())
	assert.Len(t, order.Details, 3)

	assert.Equal(t, 6, f.product(t, f.mug.ID).SaleCount)
	assert.Equal(t, 1, f.product(t, f.hat.ID).SaleCount)

	var event rabbitmq.OrderCreatedEvent
	require.NoError(t, json.Unmarshal(published, &event))
	assert.Equal(t, order.ID, event.OrderID)
	assert.Equal(t, order.Code, event.Code)
	f.publisher.AssertExpectations(t)

	got, err := f.service(nil).GetOrder(context.Background(), order.ID)
	require.NoError(t, err)
	require.False(t, got.HasError)
	assert.Len(t, got.Data.Details, 3)
	for _, d := range got.Data.Details {
		assert.NotEqual(t, uuid.Nil, d.ID)
	}
}

// rendezvousProducts holds every Find until all parties have read, so
// concurrent checkouts see the same stored sale count.
type rendezvousProducts struct {
	repositories.Repository[models.Product]
	arrived *sync.WaitGroup
}

func (r rendezvousProducts) Find(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	p, err := r.Repository.Find(ctx, id)
	r.arrived.Done()
	r.arrived.Wait()
	return p, err
}

func TestOrderService_CreateOrder_ConcurrentCheckoutsAddUp(t *testing.T) {
	f := newOrderFixture(t)
	const buyers = 2
	var arrived sync.WaitGroup
	arrived.Add(buyers)

	var wg sync.WaitGroup
	errs := make([]error, buyers)
	for i := 0; i < buyers; i++ {
		session := f.store.NewSession()
		products := rendezvousProducts{Repository: repositories.For[models.Product](session), arrived: &arrived}
		svc := services.NewOrderService(services.OrderRepositories{
			Orders:   repositories.For[models.Order](session),
			Details:  repositories.For[models.OrderDetail](session),
			Products: products,
			Coupons:  repositories.For[models.Coupon](session),
		}, session, services.NewProductService(products, repositories.For[models.Category](session), session), nil)

		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			res, err := svc.CreateOrder(context.Background(), f.request(dto.OrderItemRequest{ProductID: f.mug.ID, Quantity: 1}))
			if err == nil && res.HasError {
				err = res.Err
			}
			errs[i] = err
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		require.NoError(t, err)
	}
	assert.Equal(t, 5, f.product(t, f.mug.ID).SaleCount)
}

func TestOrderService_CreateOrder_Coupons(t *testing.T) {
	cases := []struct {
		code    string
		total   string
		failure bool
		check   func(error) bool
	}{
		{code: "TENOFF", total: "22.50"},
		{code: "HUGE", total: "0"},
		{code: "OLD", failure: true, check: ierr.IsValidation},
		{code: "MISSING", failure: true, check: ierr.IsNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.code, func(t *testing.T) {
			f := newOrderFixture(t)
			req := f.request(dto.OrderItemRequest{ProductID: f.mug.ID, Quantity: 2})
			req.CouponCode = tc.code

			res, err := f.service(nil).CreateOrder(context.Background(), req)

			require.NoError(t, err)
			if tc.failure {
				assert.True(t, res.HasError)
				assert.True(t, tc.check(res.Err))
				assert.Equal(t, 3, f.product(t, f.mug.ID).SaleCount)
				return
			}
			require.False(t, res.HasError, res.Message)
			assert.True(t, res.Data.TotalAmount.Equal(decimal.RequireFromString(tc.total)), res.Data.TotalAmount.String())
			assert.Equal(t, tc.code, res.Data.CouponCode)
		})
	}
}

func TestOrderService_CreateOrder_Invalid(t *testing.T) {
	f := newOrderFixture(t)
	svc := f.service(nil)

	res, err := svc.CreateOrder(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, constants.InvalidData, res.Message)

	res, err = svc.CreateOrder(context.Background(), f.request())
	require.NoError(t, err)
	assert.True(t, res.HasError)
	assert.True(t, ierr.IsValidation(res.Err))

	res, err = svc.CreateOrder(context.Background(), f.request(dto.OrderItemRequest{ProductID: f.mug.ID, Quantity: 0}))
	require.NoError(t, err)
	assert.True(t, ierr.IsValidation(res.Err))

	res, err = svc.CreateOrder(context.Background(), f.request(dto.OrderItemRequest{ProductID: uuid.New(), Quantity: 1}))
	require.NoError(t, err)
	assert.True(t, res.HasError)
	assert.True(t, ierr.IsNotFound(res.Err))
}

func TestOrderService_CreateOrder_PublishFailureKeepsOrder(t *testing.T) {
	f := newOrderFixture(t)
	f.publisher.On("Publish", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("broker down")).Once()

	res, err := f.service(f.publisher).CreateOrder(context.Background(), f.request(dto.OrderItemRequest{ProductID: f.hat.ID, Quantity: 1}))

	require.NoError(t, err)
	require.False(t, res.HasError)
	got, err := f.service(nil).GetOrder(context.Background(), res.Data.ID)
	require.NoError(t, err)
	assert.False(t, got.HasError)
	f.publisher.AssertExpectations(t)
}

func TestOrderService_UpdateOrderStatus(t *testing.T) {
	f := newOrderFixture(t)
	created, err := f.service(nil).CreateOrder(context.Background(), f.request(dto.OrderItemRequest{ProductID: f.hat.ID, Quantity: 1}))
	require.NoError(t, err)
	id := created.Data.ID

	res, err := f.service(nil).UpdateOrderStatus(context.Background(), id, "teleported")
	require.NoError(t, err)
	assert.True(t, ierr.IsValidation(res.Err))

	res, err = f.service(nil).UpdateOrderStatus(context.Background(), uuid.New(), models.OrderStatusShipped)
	require.NoError(t, err)
	assert.True(t, ierr.IsNotFound(res.Err))

	res, err = f.service(nil).UpdateOrderStatus(context.Background(), id, models.OrderStatusShipped)
	require.NoError(t, err)
	require.False(t, res.HasError)

	got, err := f.service(nil).GetOrder(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusShipped, got.Data.Status)
}

func TestOrderService_ListOrders(t *testing.T) {
	f := newOrderFixture(t)
	for i := 0; i < 3; i++ {
		res, err := f.service(nil).CreateOrder(context.Background(), f.request(dto.OrderItemRequest{ProductID: f.hat.ID, Quantity: 1}))
		require.NoError(t, err)
		require.False(t, res.HasError)
	}

	page, err := f.service(nil).ListOrders(context.Background(), 1, 2)

	require.NoError(t, err)
	assert.Equal(t, int64(3), page.Data.TotalCount)
	assert.Len(t, page.Data.Items, 1)
	assert.True(t, page.Data.HasPreviousPage())
}
