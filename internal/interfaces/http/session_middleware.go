package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jhoicas/Barkeeper-api/internal/application/dto"
	appinventory "github.com/jhoicas/Barkeeper-api/internal/application/inventory"
)

// LocalSessionID clave en c.Locals del ID de sesión validado.
const LocalSessionID = "session_id"

// SessionMiddleware valida el parámetro :session_id (UUID de una sesión existente)
// y lo deja en c.Locals.
func SessionMiddleware(uc *appinventory.BarUseCase) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("session_id")
		if _, err := uuid.Parse(id); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_SESSION", Message: "session_id debe ser un UUID"})
		}
		if _, err := uc.State(c.UserContext(), id); err != nil {
			return respondError(c, err)
		}
		c.Locals(LocalSessionID, id)
		return c.Next()
	}
}

// GetSessionID devuelve el ID de sesión del contexto (después de SessionMiddleware).
func GetSessionID(c *fiber.Ctx) string {
	v := c.Locals(LocalSessionID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
