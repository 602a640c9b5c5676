package handlers

import (
	"shop/internal/dto"
	"shop/internal/services"

	"github.com/gofiber/fiber/v2"
)

// CategoryHandler handles HTTP requests for categories.
type CategoryHandler struct {
	services *services.Factory
}

func NewCategoryHandler(factory *services.Factory) *CategoryHandler {
	return &CategoryHandler{services: factory}
}

func (h *CategoryHandler) RegisterRoutes(router fiber.Router, auth fiber.Handler) {
	categoryRoutes := router.Group("/categories")
	categoryRoutes.Get("/", h.HandleGetCategories)
	categoryRoutes.Get("/:id", h.HandleGetCategoryByID)
	categoryRoutes.Post("/", auth, h.HandleCreateCategory)
	categoryRoutes.Put("/:id", auth, h.HandleUpdateCategory)
	categoryRoutes.Delete("/:id", auth, h.HandleDeleteCategory)
}

func (h *CategoryHandler) HandleGetCategories(c *fiber.Ctx) error {
	res, err := h.services.Categories().List(c.UserContext())
	return respond(c, res, err, fiber.StatusOK)
}

func (h *CategoryHandler) HandleGetCategoryByID(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return invalidParam(c, "id", err)
	}
	res, err := h.services.Categories().GetByID(c.UserContext(), id)
	return respond(c, res, err, fiber.StatusOK)
}

func (h *CategoryHandler) HandleCreateCategory(c *fiber.Ctx) error {
	var category dto.CategoryDTO
	if err := c.BodyParser(&category); err != nil {
		return badBody(c, err)
	}
	res, err := h.services.Categories().Create(c.UserContext(), &category)
	return respond(c, res, err, fiber.StatusCreated)
}

func (h *CategoryHandler) HandleUpdateCategory(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return invalidParam(c, "id", err)
	}
	var category dto.CategoryDTO
	if err := c.BodyParser(&category); err != nil {
		return badBody(c, err)
	}
	category.ID = id
	res, err := h.services.Categories().Update(c.UserContext(), &category)
	return respond(c, res, err, fiber.StatusOK)
}

func (h *CategoryHandler) HandleDeleteCategory(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return invalidParam(c, "id", err)
	}
	res, err := h.services.Categories().Delete(c.UserContext(), id)
	return respond(c, res, err, fiber.StatusOK)
}
