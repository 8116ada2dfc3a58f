package http

import (
	"bytes"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Barkeeper-api/internal/application/dto"
	appinventory "github.com/jhoicas/Barkeeper-api/internal/application/inventory"
	"github.com/jhoicas/Barkeeper-api/internal/domain/entity"
)

// InventoryHandler maneja la tabla de inventario de la sesión.
type InventoryHandler struct {
	uc *appinventory.BarUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *appinventory.BarUseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// Get devuelve la tabla de inventario.
// GET /api/sessions/:session_id/inventory
func (h *InventoryHandler) Get(c *fiber.Ctx) error {
	st, err := h.uc.State(c.UserContext(), GetSessionID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(inventoryDTO(st))
}

// Update reemplaza la tabla con las filas editadas.
// PUT /api/sessions/:session_id/inventory
//
// Los números aceptan formato JSON o texto alemán ("1.250,5"); vacío vale 0.
func (h *InventoryHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateInventoryRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := dto.Validate(in); err != nil {
		return respondError(c, err)
	}
	ingredients, err := appinventory.IngredientsFromRows(in.Rows)
	if err != nil {
		return respondError(c, err)
	}
	st, err := h.uc.ReplaceInventory(c.UserContext(), GetSessionID(c), ingredients)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(inventoryDTO(st))
}

// Import carga el inventario desde el CSV de la hoja de cálculo.
// POST /api/sessions/:session_id/inventory/import (multipart "file" o cuerpo crudo)
func (h *InventoryHandler) Import(c *fiber.Ctx) error {
	raw, err := uploadedFile(c)
	if err != nil {
		return respondError(c, err)
	}
	st, err := h.uc.ImportInventoryCSV(c.UserContext(), GetSessionID(c), bytes.NewReader(raw))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(inventoryDTO(st))
}

func inventoryDTO(st *appinventory.BarState) dto.InventoryDTO {
	out := dto.InventoryDTO{Loaded: st.InventoryLoaded, Ingredients: st.Inventory}
	if out.Ingredients == nil {
		out.Ingredients = []entity.Ingredient{}
	}
	return out
}
