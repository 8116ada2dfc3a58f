package entity

import "github.com/shopspring/decimal"

// RecipeLine una línea de receta: cuántos ml de un ingrediente lleva una porción de la bebida.
// Varias líneas comparten DrinkName; los pares (bebida, ingrediente) repetidos son válidos
// y cada línea cuenta por separado.
type RecipeLine struct {
	DrinkName      string          `json:"drink_name"`
	IngredientName string          `json:"ingredient_name"`
	AmountML       decimal.Decimal `json:"amount_ml"`
}

// DrinkNames devuelve los nombres de bebida únicos en orden de primera aparición.
func DrinkNames(lines []RecipeLine) []string {
	seen := make(map[string]struct{}, len(lines))
	names := make([]string, 0, len(lines))
	for _, l := range lines {
		if _, ok := seen[l.DrinkName]; ok {
			continue
		}
		seen[l.DrinkName] = struct{}{}
		names = append(names, l.DrinkName)
	}
	return names
}
