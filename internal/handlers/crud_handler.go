package handlers

import (
	"shop/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// CrudHandler exposes a CrudService under one path: paged list, lookup by
// id and protected create, update and delete.
type CrudHandler[E, D any] struct {
	path    string
	service func() *services.CrudService[E, D]
}

// NewCrudHandler creates a CrudHandler. service is called once per request.
func NewCrudHandler[E, D any](path string, service func() *services.CrudService[E, D]) *CrudHandler[E, D] {
	return &CrudHandler[E, D]{path: path, service: service}
}

func (h *CrudHandler[E, D]) RegisterRoutes(router fiber.Router, auth fiber.Handler) {
	routes := router.Group(h.path)
	routes.Get("/", h.HandleList)
	routes.Get("/:id", h.HandleGetByID)
	routes.Post("/", auth, h.HandleCreate)
	routes.Put("/:id", auth, h.HandleUpdate)
	routes.Delete("/:id", auth, h.HandleDelete)
}

func (h *CrudHandler[E, D]) HandleList(c *fiber.Ctx) error {
	res, err := h.service().List(c.UserContext(), c.QueryInt("pageIndex", 0), c.QueryInt("pageSize", 0))
	return respond(c, res, err, fiber.StatusOK)
}

func (h *CrudHandler[E, D]) HandleGetByID(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return invalidParam(c, "id", err)
	}
	res, err := h.service().GetByID(c.UserContext(), id)
	return respond(c, res, err, fiber.StatusOK)
}

func (h *CrudHandler[E, D]) HandleCreate(c *fiber.Ctx) error {
	var body D
	if err := c.BodyParser(&body); err != nil {
		return badBody(c, err)
	}
	res, err := h.service().Create(c.UserContext(), &body)
	return respond(c, res, err, fiber.StatusCreated)
}

func (h *CrudHandler[E, D]) HandleUpdate(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return invalidParam(c, "id", err)
	}
	var body D
	if err := c.BodyParser(&body); err != nil {
		return badBody(c, err)
	}
	setID(&body, id)
	res, err := h.service().Update(c.UserContext(), &body)
	return respond(c, res, err, fiber.StatusOK)
}

func (h *CrudHandler[E, D]) HandleDelete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return invalidParam(c, "id", err)
	}
	res, err := h.service().Delete(c.UserContext(), id)
	return respond(c, res, err, fiber.StatusOK)
}

// setID overwrites the ID promoted from the embedded dto.Audit with the one
// taken from the path.
func setID[D any](body *D, id uuid.UUID) {
	if a, ok := any(body).(interface{ SetID(uuid.UUID) }); ok {
		a.SetID(id)
	}
}
