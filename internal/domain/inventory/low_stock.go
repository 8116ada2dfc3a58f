package inventory

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Barkeeper-api/internal/domain/entity"
)

type ingredientUsage struct {
	ingredient  entity.Ingredient
	minServings int64
	drink       string
	perServing  decimal.Decimal // Σ ml por porción en todas las bebidas que lo usan
}

// LowStockWarnings alerta los ingredientes con los que se sirven menos de threshold porciones
// de alguna bebida. Por ingrediente se toma la bebida más limitante (en empate, la primera).
// El TargetStockML reportado es max(objetivo configurado, threshold × Σ ml por porción) para que
// el umbral sea alcanzable en todas las bebidas que comparten el ingrediente.
// threshold <= 0 usa DefaultLowStockThreshold.
func (idx *Index) LowStockWarnings(threshold int) []entity.LowStockWarning {
	if threshold <= 0 {
		threshold = DefaultLowStockThreshold
	}

	usages := make(map[string]*ingredientUsage)
	order := make([]string, 0)
	for _, drink := range idx.drinks {
		for _, l := range idx.linesByDrink[drink] {
			ing, found := idx.ingredients[l.IngredientName]
			if !found || !l.AmountML.IsPositive() {
				continue
			}
			servings := ing.CurrentStockML.Div(l.AmountML).Floor().IntPart()
			u, seen := usages[ing.Name]
			if !seen {
				u = &ingredientUsage{ingredient: ing, minServings: servings, drink: drink, perServing: decimal.Zero}
				usages[ing.Name] = u
				order = append(order, ing.Name)
			} else if servings < u.minServings {
				u.minServings = servings
				u.drink = drink
			}
			u.perServing = u.perServing.Add(l.AmountML)
		}
	}

	limit := decimal.NewFromInt(int64(threshold))
	warnings := make([]entity.LowStockWarning, 0)
	for _, name := range order {
		u := usages[name]
		if u.minServings >= int64(threshold) {
			continue
		}
		target := decimal.Max(u.ingredient.TargetStockML, u.perServing.Mul(limit))
		warnings = append(warnings, entity.LowStockWarning{
			IngredientName:      name,
			CurrentStockML:      u.ingredient.CurrentStockML,
			TargetStockML:       target,
			MaxServingsPossible: u.minServings,
			LimitingDrink:       u.drink,
		})
	}
	return warnings
}
