package handlers

import (
	"shop/internal/dto"
	ierr "shop/internal/errors"
	"shop/internal/logger"
	"shop/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// respond writes a service result. A non-nil err is a storage fault and
// becomes a 500; an error result takes its status from the classified cause.
func respond[T any](c *fiber.Ctx, res dto.Result[T], err error, okStatus int) error {
	if err != nil {
		logger.Error().Err(err).Str("path", c.Path()).Msg("Request failed")
		return c.Status(ierr.HTTPStatus(err)).JSON(fiber.Map{
			"message": "Internal server error",
			"error":   err.Error(),
		})
	}
	if res.HasError {
		status := ierr.HTTPStatus(res.Err)
		if res.Err == nil {
			status = fiber.StatusBadRequest
		}
		body := fiber.Map{"hasError": true, "message": res.Message}
		if res.Err != nil {
			body["error"] = res.Err.Error()
		}
		return c.Status(status).JSON(body)
	}
	return c.Status(okStatus).JSON(res)
}

func paramID(c *fiber.Ctx, name string) (uuid.UUID, error) {
	return uuid.Parse(c.Params(name))
}

func invalidParam(c *fiber.Ctx, name string, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message": "Invalid " + name,
		"error":   err.Error(),
	})
}

func badBody(c *fiber.Ctx, err error) error {
	logger.Debug().Err(err).Str("path", c.Path()).Msg("Error parsing request body")
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message": "Invalid request body",
		"error":   err.Error(),
	})
}

func validationFailed(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message": "Validation failed",
		"errors":  validation.FieldErrors(err),
	})
}
