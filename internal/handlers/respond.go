package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"onboard_panel/dto"
	"onboard_panel/services"
)

// failJSON maps service errors onto HTTP statuses and the uniform result
// shape. Backend failures are logged here and surfaced only as a message;
// nothing raises past a handler.
func failJSON(c *fiber.Ctx, err error) error {
	var (
		vErr *services.ValidationError
		nErr *services.NotFoundError
		tErr *services.InvalidTransitionError
		bErr *services.BackendError
	)
	switch {
	case errors.As(err, &vErr):
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail(vErr.Error()))
	case errors.As(err, &nErr):
		return c.Status(fiber.StatusNotFound).JSON(dto.Fail(nErr.Error()))
	case errors.As(err, &tErr):
		return c.Status(fiber.StatusConflict).JSON(dto.Fail(tErr.Error()))
	case errors.As(err, &bErr):
		zap.L().Error("backend failure", zap.String("op", bErr.Op), zap.Error(bErr.Err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail(bErr.Error()))
	default:
		zap.L().Error("unexpected failure", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail(err.Error()))
	}
}
