package inventory

import (
	"time"

	"github.com/jhoicas/Barkeeper-api/internal/domain/entity"
	"github.com/jhoicas/Barkeeper-api/internal/domain/salesreport"
)

// Snapshot datos derivados de inventario + recetas. Se recalcula completo en cada cambio.
type Snapshot struct {
	Costs        []entity.DrinkCost         `json:"drink_costs"`
	Availability []entity.DrinkAvailability `json:"available_drinks"`
	Warnings     []entity.LowStockWarning   `json:"low_stock_warnings"`
}

// BarState estado de una sesión. Cada operación construye un BarState nuevo y lo
// reemplaza entero en el store; las tablas de un estado guardado no se modifican.
type BarState struct {
	Inventory       []entity.Ingredient
	Recipes         []entity.RecipeLine
	InventoryLoaded bool
	RecipesLoaded   bool

	Sales        *entity.SalesRecord // último reporte importado
	SalesSummary entity.SalesSummary
	SalesApplied bool
	Skipped      []salesreport.SkippedLine
	Strategy     string // matcher que reconoció los productos
	SectionFound bool

	Derived   Snapshot
	UpdatedAt time.Time
}

// NewBarState estado vacío de una sesión recién creada.
func NewBarState(now time.Time) *BarState {
	return &BarState{UpdatedAt: now}
}

// MasterDataLoaded true si hay inventario y recetas cargados.
func (s *BarState) MasterDataLoaded() bool {
	return s.InventoryLoaded && s.RecipesLoaded
}

// next copia superficial para construir el siguiente estado.
func (s *BarState) next(now time.Time) *BarState {
	n := *s
	n.UpdatedAt = now
	return &n
}
