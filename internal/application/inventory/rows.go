package inventory

import (
	"fmt"
	"strings"

	"go.uber.org/multierr"

	"github.com/jhoicas/Barkeeper-api/internal/application/dto"
	"github.com/jhoicas/Barkeeper-api/internal/domain"
	"github.com/jhoicas/Barkeeper-api/internal/domain/entity"
)

// IngredientsFromRows convierte las filas editadas en la tabla de inventario.
// Los números vacíos o no numéricos valen 0 y las filas sin nombre se descartan.
// Las cantidades negativas se rechazan todas juntas en un solo error.
func IngredientsFromRows(rows []dto.IngredientRow) ([]entity.Ingredient, error) {
	out := make([]entity.Ingredient, 0, len(rows))
	var errs error
	for i, r := range rows {
		name := strings.TrimSpace(r.IngredientName)
		if name == "" {
			continue
		}
		ing := entity.Ingredient{
			Name:           name,
			CurrentStockML: r.CurrentStockML.Decimal(),
			PricePerLiter:  r.PricePerLiter.Decimal(),
			TargetStockML:  r.TargetStockML.Decimal(),
		}
		if ing.CurrentStockML.IsNegative() || ing.PricePerLiter.IsNegative() || ing.TargetStockML.IsNegative() {
			errs = multierr.Append(errs, fmt.Errorf("fila %d (%s): valor negativo", i+1, name))
			continue
		}
		out = append(out, ing)
	}
	if errs != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, errs)
	}
	return out, nil
}

// RecipesFromRows convierte las filas editadas en la tabla de recetas.
// Se descartan las filas sin bebida o sin ingrediente.
func RecipesFromRows(rows []dto.RecipeRow) ([]entity.RecipeLine, error) {
	out := make([]entity.RecipeLine, 0, len(rows))
	var errs error
	for i, r := range rows {
		drink := strings.TrimSpace(r.DrinkName)
		ingredient := strings.TrimSpace(r.IngredientName)
		if drink == "" || ingredient == "" {
			continue
		}
		amount := r.AmountML.Decimal()
		if amount.IsNegative() {
			errs = multierr.Append(errs, fmt.Errorf("fila %d (%s/%s): cantidad negativa", i+1, drink, ingredient))
			continue
		}
		out = append(out, entity.RecipeLine{DrinkName: drink, IngredientName: ingredient, AmountML: amount})
	}
	if errs != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, errs)
	}
	return out, nil
}

// DrinkFromRequest líneas de receta de una bebida nueva. Solo cuentan los ingredientes
// con nombre y cantidad mayor que 0; si no queda ninguno la bebida no se agrega.
func DrinkFromRequest(req dto.AddDrinkRequest) ([]entity.RecipeLine, error) {
	drink := strings.TrimSpace(req.DrinkName)
	if drink == "" {
		return nil, fmt.Errorf("%w: nombre de bebida vacío", domain.ErrInvalidInput)
	}
	lines := make([]entity.RecipeLine, 0, len(req.Ingredients))
	for _, in := range req.Ingredients {
		name := strings.TrimSpace(in.IngredientName)
		amount := in.AmountML.Decimal()
		if name == "" || !amount.IsPositive() {
			continue
		}
		lines = append(lines, entity.RecipeLine{DrinkName: drink, IngredientName: name, AmountML: amount})
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: la bebida %q no tiene ingredientes con cantidad", domain.ErrInvalidInput, drink)
	}
	return lines, nil
}
