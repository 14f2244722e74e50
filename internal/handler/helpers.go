package handler

import (
	"errors"

	"agrostock-backend/internal/model"
	"agrostock-backend/internal/service"

	"github.com/gofiber/fiber/v2"
)

// actorFrom builds the acting user from JWT context (set by RequireAuth).
func actorFrom(c *fiber.Ctx) service.Actor {
	actor := service.Actor{ID: "system", Name: "Unknown"}
	if id, ok := c.Locals("user_id").(string); ok {
		actor.ID = id
	}
	if name, ok := c.Locals("user_name").(string); ok {
		actor.Name = name
	}
	if role, ok := c.Locals("user_role").(string); ok {
		actor.Role = model.Role(role)
	}
	return actor
}

// fail maps the service error taxonomy onto HTTP statuses.
func fail(c *fiber.Ctx, err error) error {
	status := fiber.StatusBadRequest
	switch {
	case errors.Is(err, service.ErrPermissionDenied):
		status = fiber.StatusForbidden
	case errors.Is(err, service.ErrNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, service.ErrInvalidTransition):
		status = fiber.StatusConflict
	case errors.Is(err, service.ErrInsufficientStock):
		status = fiber.StatusUnprocessableEntity
	case errors.Is(err, service.ErrInvalidInput):
		status = fiber.StatusBadRequest
	case errors.Is(err, service.ErrInvalidCredentials), errors.Is(err, service.ErrUserInactive):
		status = fiber.StatusUnauthorized
	default:
		status = fiber.StatusInternalServerError
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}
