package entity

import "github.com/shopspring/decimal"

// Ingredient representa una fila del inventario del bar (clave natural: Name).
// Las cantidades van en ml y el precio en EUR por litro.
type Ingredient struct {
	Name           string          `json:"ingredient_name"`
	CurrentStockML decimal.Decimal `json:"current_stock_ml"`
	PricePerLiter  decimal.Decimal `json:"price_per_liter"`
	TargetStockML  decimal.Decimal `json:"target_stock_ml"` // nivel deseado de stock
}

// PricePerML precio por mililitro.
func (i Ingredient) PricePerML() decimal.Decimal {
	return i.PricePerLiter.Div(decimal.NewFromInt(1000))
}

// CloneIngredients copia la tabla de inventario; los casos de uso nunca mutan la tabla recibida.
func CloneIngredients(in []Ingredient) []Ingredient {
	if in == nil {
		return nil
	}
	out := make([]Ingredient, len(in))
	copy(out, in)
	return out
}
