package handlers

import (
	"errors"

	"pelari/internal/services"

	"github.com/gofiber/fiber/v2"
)

// Response is the uniform envelope wrapping every payload, success or
// failure. Failures carry a human-readable message and a null payload.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Payload interface{} `json:"payload"`
}

func respondSuccess(c *fiber.Ctx, status int, message string, payload interface{}) error {
	return c.Status(status).JSON(Response{
		Success: true,
		Message: message,
		Payload: payload,
	})
}

func respondFailure(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(Response{
		Success: false,
		Message: message,
	})
}

// respondBusinessError maps service-layer sentinel errors to HTTP statuses.
// Unknown errors become a generic 500 so internals never leak.
func respondBusinessError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrPowerUpNotFound):
		return respondFailure(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrUsernameTaken),
		errors.Is(err, services.ErrEmailTaken),
		errors.Is(err, services.ErrInvalidCredentials),
		errors.Is(err, services.ErrInsufficientCoins):
		return respondFailure(c, fiber.StatusBadRequest, err.Error())
	default:
		return respondFailure(c, fiber.StatusInternalServerError, "internal server error")
	}
}
