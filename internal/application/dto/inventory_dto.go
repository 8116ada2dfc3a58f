package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Barkeeper-api/internal/domain/entity"
)

// IngredientRow fila editada del inventario.
type IngredientRow struct {
	IngredientName string       `json:"ingredient_name" validate:"max=200"`
	CurrentStockML LocaleNumber `json:"current_stock_ml"`
	PricePerLiter  LocaleNumber `json:"price_per_liter"`
	TargetStockML  LocaleNumber `json:"target_stock_ml"`
}

// UpdateInventoryRequest body para PUT /api/sessions/:session_id/inventory.
// Reemplaza la tabla completa; las filas sin nombre se descartan.
type UpdateInventoryRequest struct {
	Rows []IngredientRow `json:"rows" validate:"max=5000,dive"`
}

// ShoppingItemDTO línea de la lista de compras generada a partir de las alertas de stock bajo.
type ShoppingItemDTO struct {
	IngredientName      string          `json:"ingredient_name"`
	CurrentStockML      decimal.Decimal `json:"current_stock_ml"`
	TargetStockML       decimal.Decimal `json:"target_stock_ml"`
	NeededML            decimal.Decimal `json:"needed_ml"`     // max(0, objetivo - actual)
	NeededLiters        decimal.Decimal `json:"needed_liters"` // NeededML / 1000
	NeededBottles       decimal.Decimal `json:"needed_bottles"`
	MaxServingsPossible int64           `json:"max_drinks_possible"`
	LimitingDrink       string          `json:"most_limiting_drink"`
	Priority            int             `json:"priority"` // 1 = mayor cantidad a comprar
}

// ShoppingListDTO respuesta de GET /api/sessions/:session_id/shopping-list.
type ShoppingListDTO struct {
	BottleSizeML  int               `json:"bottle_size_ml"`
	Threshold     int               `json:"threshold"`
	Items         []ShoppingItemDTO `json:"items"`
	TotalNeededML decimal.Decimal   `json:"total_needed_ml"`
}

// InventoryDTO respuesta de GET/PUT /api/sessions/:session_id/inventory.
type InventoryDTO struct {
	Loaded      bool                `json:"loaded"`
	Ingredients []entity.Ingredient `json:"ingredients"`
}
