package handlers

import (
	"shop/internal/dto"
	"shop/internal/services"

	"github.com/gofiber/fiber/v2"
)

// ProductHandler handles HTTP requests for products.
type ProductHandler struct {
	services *services.Factory
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(factory *services.Factory) *ProductHandler {
	return &ProductHandler{services: factory}
}

// RegisterRoutes registers the product routes. Reads are public, writes go
// through auth.
func (h *ProductHandler) RegisterRoutes(router fiber.Router, auth fiber.Handler) {
	productRoutes := router.Group("/products")
	productRoutes.Get("/category/:categoryId", h.HandleGetByCategory)
	productRoutes.Post("/search", h.HandleSearch)
	productRoutes.Get("/:id", h.HandleGetProductByID)
	productRoutes.Post("/", auth, h.HandleCreateProduct)
	productRoutes.Put("/:id", auth, h.HandleUpdateProduct)
	productRoutes.Delete("/:id", auth, h.HandleDeleteProduct)
	productRoutes.Patch("/:id/sale-count", auth, h.HandleUpdateSaleCount)
}

func (h *ProductHandler) HandleGetProductByID(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return invalidParam(c, "id", err)
	}
	res, err := h.services.Products().GetByID(c.UserContext(), id)
	return respond(c, res, err, fiber.StatusOK)
}

func (h *ProductHandler) HandleGetByCategory(c *fiber.Ctx) error {
	categoryID, err := paramID(c, "categoryId")
	if err != nil {
		return invalidParam(c, "categoryId", err)
	}
	res, err := h.services.Products().GetByCategory(c.UserContext(), categoryID)
	return respond(c, res, err, fiber.StatusOK)
}

// HandleSearch returns one page of products. An empty body searches everything.
func (h *ProductHandler) HandleSearch(c *fiber.Ctx) error {
	var req services.ProductSearch
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return badBody(c, err)
		}
	}
	res, err := h.services.Products().SearchPagination(c.UserContext(), &req)
	return respond(c, res, err, fiber.StatusOK)
}

func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	var product dto.ProductDTO
	if err := c.BodyParser(&product); err != nil {
		return badBody(c, err)
	}
	res, err := h.services.Products().Create(c.UserContext(), &product)
	return respond(c, res, err, fiber.StatusCreated)
}

func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return invalidParam(c, "id", err)
	}
	var product dto.ProductDTO
	if err := c.BodyParser(&product); err != nil {
		return badBody(c, err)
	}
	product.ID = id
	res, err := h.services.Products().Update(c.UserContext(), &product)
	return respond(c, res, err, fiber.StatusOK)
}

func (h *ProductHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return invalidParam(c, "id", err)
	}
	res, err := h.services.Products().Delete(c.UserContext(), &dto.ProductDTO{Audit: dto.Audit{ID: id}})
	return respond(c, res, err, fiber.StatusOK)
}

type saleCountRequest struct {
	Delta int `json:"delta"`
}

// HandleUpdateSaleCount adds delta to the stored sale count of a product.
func (h *ProductHandler) HandleUpdateSaleCount(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return invalidParam(c, "id", err)
	}
	var req saleCountRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c, err)
	}

	res, err := h.services.Products().AddSaleCount(c.UserContext(), id, req.Delta)
	return respond(c, res, err, fiber.StatusOK)
}
