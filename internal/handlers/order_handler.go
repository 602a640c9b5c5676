package handlers

import (
	"shop/internal/dto"
	"shop/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// OrderHandler handles HTTP requests for orders.
type OrderHandler struct {
	services *services.Factory
	validate *validator.Validate
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(factory *services.Factory) *OrderHandler {
	return &OrderHandler{
		services: factory,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the order routes. Checkout is public; reading and
// changing orders needs auth.
func (h *OrderHandler) RegisterRoutes(router fiber.Router, auth fiber.Handler) {
	orderRoutes := router.Group("/orders")
	orderRoutes.Post("/", h.HandleCreateOrder)
	orderRoutes.Get("/", auth, h.HandleGetOrders)
	orderRoutes.Get("/:id", auth, h.HandleGetOrderByID)
	orderRoutes.Patch("/:id/status", auth, h.HandleUpdateOrderStatus)
}

// HandleGetOrders returns a page of orders, newest first.
func (h *OrderHandler) HandleGetOrders(c *fiber.Ctx) error {
	res, err := h.services.Orders().ListOrders(c.UserContext(), c.QueryInt("pageIndex", 0), c.QueryInt("pageSize", 0))
	return respond(c, res, err, fiber.StatusOK)
}

// HandleGetOrderByID retrieves a single order with its details.
func (h *OrderHandler) HandleGetOrderByID(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return invalidParam(c, "id", err)
	}
	res, err := h.services.Orders().GetOrder(c.UserContext(), id)
	return respond(c, res, err, fiber.StatusOK)
}

// HandleCreateOrder places a new order.
func (h *OrderHandler) HandleCreateOrder(c *fiber.Ctx) error {
	var req dto.CreateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c, err)
	}
	res, err := h.services.Orders().CreateOrder(c.UserContext(), &req)
	return respond(c, res, err, fiber.StatusCreated)
}

// HandleUpdateOrderStatus updates the status of an existing order.
func (h *OrderHandler) HandleUpdateOrderStatus(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return invalidParam(c, "id", err)
	}

	var req dto.UpdateOrderStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return validationFailed(c, err)
	}

	res, err := h.services.Orders().UpdateOrderStatus(c.UserContext(), id, req.Status)
	return respond(c, res, err, fiber.StatusOK)
}
