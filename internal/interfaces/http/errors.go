package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/revendix/revendix-api/internal/application/dto"
	"github.com/revendix/revendix-api/internal/domain"
	"github.com/revendix/revendix-api/pkg/i18n"
)

// respondError mapea un error de dominio al status + cuerpo HTTP, con el mensaje
// en el idioma negociado. Los errores tipados aportan detalles estructurados
// (cantidades en INSUFFICIENT_STOCK, campo en VALIDATION).
func respondError(c *fiber.Ctx, err error) error {
	lang := Lang(c)

	var insufficientStock *domain.InsufficientStockError
	if errors.As(err, &insufficientStock) {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Code:    "INSUFFICIENT_STOCK",
			Message: i18n.T(lang, "error.insufficient_stock"),
			Details: map[string]interface{}{
				"available": insufficientStock.Available,
				"requested": insufficientStock.Requested,
			},
		})
	}
	var validation *domain.ValidationError
	if errors.As(err, &validation) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code:    "VALIDATION",
			Message: i18n.T(lang, "error.validation"),
			Details: map[string]interface{}{
				"field":  validation.Field,
				"reason": validation.Reason,
			},
		})
	}

	switch {
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrUserNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: i18n.T(lang, "error.not_found")})
	case errors.Is(err, domain.ErrDuplicate), errors.Is(err, domain.ErrEmailAlreadyExists):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: i18n.T(lang, "error.duplicate")})
	case errors.Is(err, domain.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: i18n.T(lang, "error.conflict")})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: i18n.T(lang, "error.unauthorized")})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: i18n.T(lang, "error.forbidden")})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: i18n.T(lang, "error.validation")})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: i18n.T(lang, "error.internal")})
	}
}

// respondInvalidBody respuesta estándar para un body que no parsea.
func respondInvalidBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
		Code:    "INVALID_BODY",
		Message: i18n.T(Lang(c), "error.invalid_body"),
	})
}
