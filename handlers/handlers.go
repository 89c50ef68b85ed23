// handlers/handlers.go - shared handler state and error mapping
package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"neuroleaf/services"
	"neuroleaf/storage"
)

var svc *services.Service

// Init injects the service layer. Called once from main before routes are
// served.
func Init(s *services.Service) {
	svc = s
}

// fail maps service errors onto HTTP responses. Anything unrecognized is a
// persistence failure and surfaces as a generic 500.
func fail(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrInsufficientFunds):
		return c.Status(400).JSON(fiber.Map{"error": "Insufficient coins"})
	case errors.Is(err, services.ErrItemUnavailable):
		return c.Status(404).JSON(fiber.Map{"error": "Item unavailable"})
	case errors.Is(err, services.ErrInvalidInput):
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, storage.ErrNotFound):
		return c.Status(404).JSON(fiber.Map{"error": "Not found"})
	default:
		return c.Status(500).JSON(fiber.Map{"error": "Something went wrong. Please try again."})
	}
}
