package services

import (
	"context"
	"encoding/json"
	"time"

	"shop/internal/actor"
	"shop/internal/constants"
	"shop/internal/dto"
	ierr "shop/internal/errors"
	"shop/internal/logger"
	"shop/internal/mapper"
	"shop/internal/models"
	"shop/internal/pagination"
	"shop/internal/repositories"
	"shop/internal/validation"
	"shop/pkg/rabbitmq"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
)

type (
	OrderResult     = dto.Result[dto.OrderDTO]
	OrderPageResult = dto.Result[pagination.PaginatedList[dto.OrderDTO]]
)

// EventPublisher sends a message to a broker exchange.
type EventPublisher interface {
	Publish(exchange, routingKey string, body []byte) error
}

var validStatuses = map[string]bool{
	models.OrderStatusPending:    true,
	models.OrderStatusProcessing: true,
	models.OrderStatusShipped:    true,
	models.OrderStatusDelivered:  true,
	models.OrderStatusCancelled:  true,
}

// OrderRepositories groups the repositories an OrderService works with. They
// must all belong to the same session as the unit of work.
type OrderRepositories struct {
	Orders   repositories.Repository[models.Order]
	Details  repositories.Repository[models.OrderDetail]
	Products repositories.Repository[models.Product]
	Coupons  repositories.Repository[models.Coupon]
}

// OrderService handles business logic related to orders.
type OrderService struct {
	repos     OrderRepositories
	uow       repositories.UnitOfWork
	products  *ProductService
	publisher EventPublisher
	validate  *validator.Validate
	now       func() time.Time
}

// NewOrderService creates a new OrderService. publisher may be nil, in which
// case no events are sent.
func NewOrderService(repos OrderRepositories, uow repositories.UnitOfWork, products *ProductService, publisher EventPublisher) *OrderService {
	return &OrderService{
		repos:     repos,
		uow:       uow,
		products:  products,
		publisher: publisher,
		validate:  validation.New(),
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// CreateOrder prices the requested items from the stored products, applies
// the coupon if any, bumps the sale count of every ordered product and
// commits everything at once. An order.created event follows the commit.
func (s *OrderService) CreateOrder(ctx context.Context, req *dto.CreateOrderRequest) (OrderResult, error) {
	if req == nil {
		return dto.Failure[dto.OrderDTO](constants.InvalidData, ierr.NewValidation("order is required")), nil
	}
	if err := s.validate.Struct(req); err != nil {
		return dto.Failure[dto.OrderDTO](constants.InvalidData, ierr.NewValidation("%s", validation.Summary(err))), nil
	}

	now := s.now()
	a := actor.FromContext(ctx)

	products := make(map[uuid.UUID]*models.Product)
	sold := make(map[uuid.UUID]int)
	var productOrder []uuid.UUID
	details := make([]models.OrderDetail, 0, len(req.Items))
	total := decimal.Zero
	totalItem := 0

	for _, item := range req.Items {
		product, ok := products[item.ProductID]
		if !ok {
			found, err := s.repos.Products.Find(ctx, item.ProductID)
			if err != nil {
				return OrderResult{}, err
			}
			if found == nil || found.IsDeleted {
				return dto.Failure[dto.OrderDTO](constants.NotFound, ierr.NewNotFound("product with ID %s not found", item.ProductID)), nil
			}
			product = found
			products[item.ProductID] = product
			productOrder = append(productOrder, item.ProductID)
		}

		lineTotal := product.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
		detail := models.OrderDetail{
			ProductID:   item.ProductID,
			Price:       product.Price,
			Quantity:    item.Quantity,
			TotalAmount: lineTotal,
		}
		detail.IsActive = true
		detail.MarkCreated(a.ID, a.Name, now)
		details = append(details, detail)

		total = total.Add(lineTotal)
		totalItem += item.Quantity
		sold[item.ProductID] += item.Quantity
	}

	order := &models.Order{
		Code:       "ORD-" + ulid.Make().String(),
		CustomerID: req.CustomerID,
		FullName:   req.FullName,
		Email:      req.Email,
		Phone:      req.Phone,
		Address:    req.Address,
		Note:       req.Note,
		Status:     models.OrderStatusPending,
		TotalItem:  totalItem,
	}
	order.IsActive = true
	order.MarkCreated(a.ID, a.Name, now)

	if !validation.Blank(req.CouponCode) {
		coupon, res, err := s.findCoupon(ctx, req.CouponCode, now)
		if err != nil || coupon == nil {
			return res, err
		}
		order.CouponID = &coupon.ID
		order.CouponCode = coupon.Code
		order.CouponName = coupon.Name
		order.CouponPercent = coupon.HasPercent
		order.CouponValue = coupon.Value
		total = total.Sub(coupon.Discount(total))
	}
	if total.IsNegative() {
		total = decimal.Zero
	}
	order.TotalAmount = total

	for _, id := range productOrder {
		current := mapper.ProductToDTO(products[id])
		if counted := s.products.UpdateCount(&current, sold[id]); counted.HasError {
			return dto.Failure[dto.OrderDTO](counted.Message, counted.Err), nil
		}
		s.repos.Products.Increment(id, saleCount, sold[id])
	}

	s.repos.Orders.Add(order)
	for i := range details {
		details[i].OrderID = order.ID
		s.repos.Details.Add(&details[i])
	}

	if _, err := s.uow.Commit(ctx); err != nil {
		return OrderResult{}, err
	}

	order.Details = details
	s.publishCreated(order)

	out := mapper.OrderToDTO(order)
	return dto.Success(constants.CreateSuccess, &out), nil
}

// GetOrder returns a live order with its details.
func (s *OrderService) GetOrder(ctx context.Context, id uuid.UUID) (OrderResult, error) {
	order, err := s.repos.Orders.Find(ctx, id)
	if err != nil {
		return OrderResult{}, err
	}
	if order == nil || order.IsDeleted {
		return dto.Failure[dto.OrderDTO](constants.NotFound, ierr.NewNotFound("order with ID %s not found", id)), nil
	}

	details, err := s.repos.Details.Query().
		Where(repositories.Eq("order_id", id, func(d *models.OrderDetail) uuid.UUID { return d.OrderID })).
		Where(repositories.NotDeleted[models.OrderDetail]()).
		All(ctx)
	if err != nil {
		return OrderResult{}, err
	}
	order.Details = details

	out := mapper.OrderToDTO(order)
	return dto.Success(constants.ListSuccess, &out), nil
}

// ListOrders returns a page of live orders, newest first. Details are not loaded.
func (s *OrderService) ListOrders(ctx context.Context, pageIndex, pageSize int) (OrderPageResult, error) {
	q := s.repos.Orders.Query().
		Where(repositories.NotDeleted[models.Order]()).
		OrderBy(repositories.NewestFirst[models.Order]())

	page, err := pagination.Paginate(ctx, q, pageIndex, pageSize)
	if err != nil {
		return OrderPageResult{}, err
	}

	out := pagination.Map(page, func(o models.Order) dto.OrderDTO { return mapper.OrderToDTO(&o) })
	return dto.Success(constants.ListSuccess, &out), nil
}

// UpdateOrderStatus moves an order to one of the known statuses.
func (s *OrderService) UpdateOrderStatus(ctx context.Context, id uuid.UUID, status string) (OrderResult, error) {
	if !validStatuses[status] {
		return dto.Failure[dto.OrderDTO](constants.InvalidData, ierr.NewValidation("invalid order status: %s", status)), nil
	}

	order, err := s.repos.Orders.Find(ctx, id)
	if err != nil {
		return OrderResult{}, err
	}
	if order == nil || order.IsDeleted {
		return dto.Failure[dto.OrderDTO](constants.NotFound, ierr.NewNotFound("order with ID %s not found", id)), nil
	}

	order.Status = status
	a := actor.FromContext(ctx)
	order.MarkUpdated(a.ID, a.Name, s.now())
	s.repos.Orders.Update(order)
	if _, err := s.uow.Commit(ctx); err != nil {
		return OrderResult{}, err
	}

	out := mapper.OrderToDTO(order)
	return dto.Success(constants.UpdateSuccess, &out), nil
}

// findCoupon returns the live coupon with the given code if it can be used
// at now. Otherwise the returned result carries the reason.
func (s *OrderService) findCoupon(ctx context.Context, code string, now time.Time) (*models.Coupon, OrderResult, error) {
	coupon, err := s.repos.Coupons.Query().
		Where(repositories.Eq("code", code, func(c *models.Coupon) string { return c.Code })).
		Where(repositories.NotDeleted[models.Coupon]()).
		First(ctx)
	if err != nil {
		return nil, OrderResult{}, err
	}
	if coupon == nil {
		return nil, dto.Failure[dto.OrderDTO](constants.NotFound, ierr.NewNotFound("coupon %s not found", code)), nil
	}
	if !coupon.ValidAt(now) {
		return nil, dto.Failure[dto.OrderDTO](constants.InvalidData, ierr.NewValidation("coupon %s is not valid now", code)), nil
	}
	return coupon, OrderResult{}, nil
}

func (s *OrderService) publishCreated(order *models.Order) {
	if s.publisher == nil {
		logger.Debug().Str("order_id", order.ID.String()).Msg("RabbitMQ client is not initialized. Skipping message publication")
		return
	}

	body, err := json.Marshal(rabbitmq.OrderCreatedEvent{
		OrderID:     order.ID,
		Code:        order.Code,
		CustomerID:  order.CustomerID,
		Email:       order.Email,
		Status:      order.Status,
		TotalItem:   order.TotalItem,
		TotalAmount: order.TotalAmount,
		CreatedAt:   order.CreateByDate,
	})
	if err != nil {
		logger.Error().Err(err).Msg("Failed to marshal order created event")
		return
	}

	if err := s.publisher.Publish(rabbitmq.DefaultExchange, rabbitmq.RoutingOrderCreated, body); err != nil {
		logger.Warn().Err(err).Str("order_id", order.ID.String()).Msg("Failed to publish order created event")
		return
	}
	logger.Info().Str("order_id", order.ID.String()).Msg("Published order created event")
}
