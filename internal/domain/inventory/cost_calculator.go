package inventory

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Barkeeper-api/internal/domain/entity"
)

// CostOf costo de una porción: Σ AmountML × PrecioLitro / 1000.
// Un ingrediente que no está en inventario no suma nada (el costo queda subestimado, no es error).
// El segundo valor es false si la bebida no tiene receta.
func (idx *Index) CostOf(drink string) (entity.DrinkCost, bool) {
	lines, ok := idx.linesByDrink[drink]
	if !ok {
		return entity.DrinkCost{}, false
	}
	dc := entity.DrinkCost{
		DrinkName: drink,
		TotalCost: decimal.Zero,
		Breakdown: make([]entity.IngredientCost, 0, len(lines)),
	}
	for _, l := range lines {
		ing, found := idx.ingredients[l.IngredientName]
		if !found {
			continue
		}
		cost := l.AmountML.Mul(ing.PricePerML())
		dc.TotalCost = dc.TotalCost.Add(cost)
		dc.Breakdown = append(dc.Breakdown, entity.IngredientCost{
			IngredientName: l.IngredientName,
			AmountML:       l.AmountML,
			Cost:           cost,
		})
	}
	return dc, true
}

// DrinkCosts costo de cada bebida, en el orden de las recetas.
func (idx *Index) DrinkCosts() []entity.DrinkCost {
	out := make([]entity.DrinkCost, 0, len(idx.drinks))
	for _, d := range idx.drinks {
		dc, _ := idx.CostOf(d)
		out = append(out, dc)
	}
	return out
}
