package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Barkeeper-api/internal/application/dto"
	"github.com/jhoicas/Barkeeper-api/internal/domain"
)

type errorMapping struct {
	target error
	status int
	code   string
}

// El orden importa: ErrSessionNotFound antes que ErrNotFound.
var errorMappings = []errorMapping{
	{domain.ErrSessionNotFound, fiber.StatusNotFound, "SESSION_NOT_FOUND"},
	{domain.ErrNotFound, fiber.StatusNotFound, "NOT_FOUND"},
	{domain.ErrInvalidInput, fiber.StatusBadRequest, "VALIDATION"},
	{domain.ErrMissingColumns, fiber.StatusUnprocessableEntity, "MISSING_COLUMNS"},
	{domain.ErrUnreadableReport, fiber.StatusUnprocessableEntity, "UNREADABLE_REPORT"},
	{domain.ErrMissingMasterData, fiber.StatusConflict, "MISSING_MASTER_DATA"},
	{domain.ErrNoSalesImported, fiber.StatusConflict, "NO_SALES_IMPORTED"},
	{domain.ErrConflict, fiber.StatusConflict, "CONFLICT"},
}

// respondError traduce un error de dominio a la respuesta HTTP.
func respondError(c *fiber.Ctx, err error) error {
	for _, m := range errorMappings {
		if !errors.Is(err, m.target) {
			continue
		}
		body := dto.ErrorResponse{Code: m.code, Message: err.Error()}
		var verr *dto.ValidationError
		if errors.As(err, &verr) {
			body.Details = verr.Fields
		}
		return c.Status(m.status).JSON(body)
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}

func invalidBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
}
