package entity

import "github.com/shopspring/decimal"

// IngredientCost aporte de un ingrediente al costo de una porción.
type IngredientCost struct {
	IngredientName string          `json:"ingredient_name"`
	AmountML       decimal.Decimal `json:"amount_ml"`
	Cost           decimal.Decimal `json:"cost"`
}

// DrinkCost costo de una porción. Los ingredientes ausentes del inventario no suman (costo subestimado).
type DrinkCost struct {
	DrinkName string           `json:"drink_name"`
	TotalCost decimal.Decimal  `json:"total_cost"`
	Breakdown []IngredientCost `json:"cost_breakdown"`
}

// DrinkAvailability cuántas porciones se pueden servir con el stock actual.
// MissingIngredient=true cuando el ingrediente limitante no existe en inventario (MaxServings=0).
// Unlimited=true cuando ninguna línea de la receta consume stock.
type DrinkAvailability struct {
	DrinkName          string `json:"drink_name"`
	MaxServings        int64  `json:"max_drinks_possible"`
	LimitingIngredient string `json:"limiting_ingredient"`
	MissingIngredient  bool   `json:"missing_ingredient"`
	Unlimited          bool   `json:"unlimited"`
}

// LowStockWarning alerta para un ingrediente con el que se sirven menos porciones que el umbral.
// TargetStockML ya viene ajustado al mínimo necesario para alcanzar el umbral en todas las bebidas.
type LowStockWarning struct {
	IngredientName      string          `json:"ingredient_name"`
	CurrentStockML      decimal.Decimal `json:"current_stock_ml"`
	TargetStockML       decimal.Decimal `json:"target_stock_ml"`
	MaxServingsPossible int64           `json:"max_drinks_possible"`
	LimitingDrink       string          `json:"most_limiting_drink"`
}

// SalesSummary resumen del reporte de ventas.
type SalesSummary struct {
	TotalValue       decimal.Decimal `json:"total_value"`
	TotalQuantity    int             `json:"total_quantity"`
	MostSoldDrink    string          `json:"most_sold_drink"`
	MostSoldQuantity int             `json:"most_sold_quantity"`
}
