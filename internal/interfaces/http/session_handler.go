package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Barkeeper-api/internal/application/dto"
	appinventory "github.com/jhoicas/Barkeeper-api/internal/application/inventory"
)

// SessionHandler crea y elimina sesiones de trabajo.
type SessionHandler struct {
	uc *appinventory.BarUseCase
}

// NewSessionHandler construye el handler.
func NewSessionHandler(uc *appinventory.BarUseCase) *SessionHandler {
	return &SessionHandler{uc: uc}
}

// Create abre una sesión vacía.
// POST /api/sessions
func (h *SessionHandler) Create(c *fiber.Ctx) error {
	id, err := h.uc.CreateSession(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.SessionResponse{SessionID: id})
}

// Delete descarta la sesión y todo su estado.
// DELETE /api/sessions/:session_id
func (h *SessionHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.ResetSession(c.UserContext(), GetSessionID(c)); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
