package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Barkeeper-api/internal/application/dto"
	appinventory "github.com/jhoicas/Barkeeper-api/internal/application/inventory"
)

// SalesHandler importa el reporte diario de la caja y lo descuenta del inventario.
type SalesHandler struct {
	uc *appinventory.BarUseCase
}

// NewSalesHandler construye el handler.
func NewSalesHandler(uc *appinventory.BarUseCase) *SalesHandler {
	return &SalesHandler{uc: uc}
}

// Import interpreta el reporte y lo deja pendiente de aplicar. No modifica el inventario.
// POST /api/sessions/:session_id/sales/import (multipart "file" o cuerpo crudo)
//
// 409 si faltan inventario o recetas; 422 si el contenido no es texto legible.
func (h *SalesHandler) Import(c *fiber.Ctx) error {
	raw, err := uploadedFile(c)
	if err != nil {
		return respondError(c, err)
	}
	st, err := h.uc.ImportSalesReport(c.UserContext(), GetSessionID(c), raw)
	if err != nil {
		return respondError(c, err)
	}

	skipped := make([]dto.SkippedLineDTO, 0, len(st.Skipped))
	for _, s := range st.Skipped {
		skipped = append(skipped, dto.SkippedLineDTO{Line: s.Line, Content: s.Content, Reason: s.Reason})
	}
	return c.JSON(dto.SalesImportDTO{
		Sales:        st.Sales,
		Summary:      st.SalesSummary,
		Strategy:     st.Strategy,
		SectionFound: st.SectionFound,
		SkippedLines: skipped,
	})
}

// Apply descuenta del inventario el último reporte importado (una sola vez).
// POST /api/sessions/:session_id/sales/apply
func (h *SalesHandler) Apply(c *fiber.Ctx) error {
	st, res, err := h.uc.ApplySales(c.UserContext(), GetSessionID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.SalesApplyDTO{
		Inventory:          res.Inventory,
		MissingIngredients: res.MissingIngredients,
		LowStockWarnings:   st.Derived.Warnings,
	})
}
