package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	appinventory "github.com/jhoicas/Barkeeper-api/internal/application/inventory"
)

// ShoppingListHandler expone la lista de compras en JSON, CSV y PDF.
type ShoppingListHandler struct {
	uc *appinventory.ShoppingListUseCase
}

// NewShoppingListHandler construye el handler.
func NewShoppingListHandler(uc *appinventory.ShoppingListUseCase) *ShoppingListHandler {
	return &ShoppingListHandler{uc: uc}
}

// Get GET /api/sessions/:session_id/shopping-list
func (h *ShoppingListHandler) Get(c *fiber.Ctx) error {
	list, err := h.uc.GenerateShoppingList(c.UserContext(), GetSessionID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// CSV GET /api/sessions/:session_id/shopping-list.csv (404 si no hay alertas)
func (h *ShoppingListHandler) CSV(c *fiber.Ctx) error {
	out, err := h.uc.ExportCSV(c.UserContext(), GetSessionID(c))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, attachment("csv"))
	return c.Send(out)
}

// PDF GET /api/sessions/:session_id/shopping-list.pdf (404 si no hay alertas)
func (h *ShoppingListHandler) PDF(c *fiber.Ctx) error {
	out, err := h.uc.ExportPDF(c.UserContext(), GetSessionID(c))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, attachment("pdf"))
	return c.Send(out)
}

func attachment(ext string) string {
	return fmt.Sprintf(`attachment; filename="einkaufsliste_%s.%s"`, time.Now().Format("2006-01-02"), ext)
}
