package serverutils

import (
	"errors"

	"bizchat-be/internal/pkg/apperr"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware maps domain errors bubbling out of controllers
// to HTTP statuses so handlers can return errors directly.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		switch {
		case apperr.IsNotFound(err):
			return ctx.Status(fiber.StatusNotFound).JSON(ErrorResponse(404, err.Error()))
		case apperr.IsValidation(err):
			var verr *apperr.ValidationError
			if errors.As(err, &verr) {
				return ctx.Status(fiber.StatusBadRequest).JSON(ValidationErrorResponse(err.Error(), verr.Fields))
			}
			return ctx.Status(fiber.StatusBadRequest).JSON(ErrorResponse(400, err.Error()))
		case apperr.IsConflict(err):
			return ctx.Status(fiber.StatusConflict).JSON(ErrorResponse(409, err.Error()))
		case apperr.IsParse(err):
			return ctx.Status(fiber.StatusBadGateway).JSON(ErrorResponse(502, err.Error()))
		case apperr.IsUpstream(err):
			return ctx.Status(fiber.StatusBadGateway).JSON(ErrorResponse(502, err.Error()))
		}

		if fe, ok := err.(*fiber.Error); ok {
			return ctx.Status(fe.Code).JSON(ErrorResponse(fe.Code, fe.Message))
		}

		return ctx.Status(fiber.StatusInternalServerError).JSON(ErrorResponse(500, "Internal server error"))
	}
}
