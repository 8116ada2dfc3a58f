package dto

import "github.com/jhoicas/Barkeeper-api/internal/domain/entity"

// SkippedLineDTO línea del reporte que no se pudo interpretar.
type SkippedLineDTO struct {
	Line    int    `json:"line"`
	Content string `json:"content"`
	Reason  string `json:"reason"`
}

// SalesImportDTO respuesta de POST /api/sessions/:session_id/sales/import.
type SalesImportDTO struct {
	Sales        *entity.SalesRecord `json:"sales"`
	Summary      entity.SalesSummary `json:"summary"`
	Strategy     string              `json:"strategy,omitempty"`
	SectionFound bool                `json:"section_found"`
	SkippedLines []SkippedLineDTO    `json:"skipped_lines"`
}

// SalesApplyDTO respuesta de POST /api/sessions/:session_id/sales/apply.
type SalesApplyDTO struct {
	Inventory          []entity.Ingredient      `json:"inventory"`
	MissingIngredients []string                 `json:"missing_ingredients"`
	LowStockWarnings   []entity.LowStockWarning `json:"low_stock_warnings"`
}
