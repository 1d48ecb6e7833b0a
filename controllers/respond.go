package controllers

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/op/go-logging"
	"gorm.io/gorm"
	"restaurante-api/models"
)

var log = logging.MustGetLogger("controllers")

// fail converts a service error into one JSON error response. Unclassified
// errors are logged and reported as a generic 500 so internals never leak.
func fail(ctx *fiber.Ctx, err error) error {
	status := statusFor(err)
	if status == fiber.StatusInternalServerError {
		log.Errorf("%s %s: %v", ctx.Method(), ctx.Path(), err)
		return ctx.Status(status).JSON(fiber.Map{"error": "internal server error"})
	}
	return ctx.Status(status).JSON(fiber.Map{"error": err.Error()})
}

func statusFor(err error) int {
	switch {
	// ErrDuplicatedKey is the backstop for duplicates that race past the
	// application-level uniqueness checks.
	case errors.Is(err, models.ErrInvalid), errors.Is(err, models.ErrConflict),
		errors.Is(err, gorm.ErrDuplicatedKey):
		return fiber.StatusBadRequest
	case errors.Is(err, models.ErrUnauthorized):
		return fiber.StatusUnauthorized
	case errors.Is(err, models.ErrForbidden):
		return fiber.StatusForbidden
	case errors.Is(err, models.ErrNotFound):
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}

// idParam parses a numeric path parameter.
func idParam(ctx *fiber.Ctx, name string) (uint, error) {
	id, err := ctx.ParamsInt(name)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s parameter: %w", name, models.ErrInvalid)
	}
	return uint(id), nil
}
