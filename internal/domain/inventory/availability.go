package inventory

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Barkeeper-api/internal/domain/entity"
)

// MaxServings porciones posibles de una bebida: mínimo de floor(stock/cantidad) entre sus ingredientes.
// Si algún ingrediente no existe en inventario el resultado es 0, ese ingrediente queda como
// limitante y no se revisan los demás. Las líneas con cantidad 0 no limitan.
func (idx *Index) MaxServings(drink string) (entity.DrinkAvailability, bool) {
	lines, ok := idx.linesByDrink[drink]
	if !ok {
		return entity.DrinkAvailability{}, false
	}
	av := entity.DrinkAvailability{DrinkName: drink}

	var minRatio *decimal.Decimal
	for _, l := range lines {
		ing, found := idx.ingredients[l.IngredientName]
		if !found {
			av.MaxServings = 0
			av.LimitingIngredient = l.IngredientName
			av.MissingIngredient = true
			return av, true
		}
		if !l.AmountML.IsPositive() {
			continue
		}
		ratio := ing.CurrentStockML.Div(l.AmountML)
		if minRatio == nil || ratio.LessThan(*minRatio) {
			minRatio = &ratio
			av.LimitingIngredient = l.IngredientName
		}
	}
	if minRatio == nil {
		av.Unlimited = true
		return av, true
	}
	av.MaxServings = minRatio.Floor().IntPart()
	return av, true
}

// Availability disponibilidad de cada bebida, en el orden de las recetas.
func (idx *Index) Availability() []entity.DrinkAvailability {
	out := make([]entity.DrinkAvailability, 0, len(idx.drinks))
	for _, d := range idx.drinks {
		av, _ := idx.MaxServings(d)
		out = append(out, av)
	}
	return out
}
