package inventory

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Barkeeper-api/internal/domain"
	"github.com/jhoicas/Barkeeper-api/internal/domain/entity"
)

// DepletionResult inventario resultante de descontar las ventas y los ingredientes
// referenciados por recetas que no existen en inventario (sin repetir, en orden de aparición).
type DepletionResult struct {
	Inventory          []entity.Ingredient `json:"inventory"`
	MissingIngredients []string            `json:"missing_ingredients"`
}

// Deplete descuenta del inventario lo consumido por las ventas.
// Por cada producto vendido se buscan las líneas de receta cuyo DrinkName coincide exactamente;
// sin receta la venta no afecta el inventario. Cada línea descuenta AmountML × cantidad, sin bajar de 0.
// Los ingredientes faltantes se acumulan y no interrumpen el resto de descuentos.
// La tabla de entrada no se modifica.
func Deplete(ingredients []entity.Ingredient, recipes []entity.RecipeLine, record *entity.SalesRecord) (*DepletionResult, error) {
	if err := validateDepletionInput(ingredients, recipes, record); err != nil {
		return nil, err
	}

	updated := entity.CloneIngredients(ingredients)
	if updated == nil {
		updated = []entity.Ingredient{}
	}
	position := make(map[string]int, len(updated))
	for i, ing := range updated {
		if _, ok := position[ing.Name]; !ok {
			position[ing.Name] = i
		}
	}
	idx := NewIndex(recipes, nil)

	missing := make([]string, 0)
	reported := make(map[string]struct{})
	for _, sale := range record.Products {
		qty := decimal.NewFromInt(int64(sale.Quantity))
		for _, l := range idx.Lines(sale.ProductName) {
			i, ok := position[l.IngredientName]
			if !ok {
				if _, dup := reported[l.IngredientName]; !dup {
					reported[l.IngredientName] = struct{}{}
					missing = append(missing, l.IngredientName)
				}
				continue
			}
			stock := updated[i].CurrentStockML.Sub(l.AmountML.Mul(qty))
			if stock.IsNegative() {
				stock = decimal.Zero
			}
			updated[i].CurrentStockML = stock
		}
	}
	return &DepletionResult{Inventory: updated, MissingIngredients: missing}, nil
}

func validateDepletionInput(ingredients []entity.Ingredient, recipes []entity.RecipeLine, record *entity.SalesRecord) error {
	if record == nil {
		return fmt.Errorf("%w: registro de ventas nulo", domain.ErrInvalidInput)
	}
	for i, ing := range ingredients {
		if strings.TrimSpace(ing.Name) == "" {
			return fmt.Errorf("%w: ingrediente sin nombre en la fila %d", domain.ErrInvalidInput, i+1)
		}
	}
	for i, l := range recipes {
		if strings.TrimSpace(l.DrinkName) == "" || strings.TrimSpace(l.IngredientName) == "" {
			return fmt.Errorf("%w: línea de receta incompleta en la fila %d", domain.ErrInvalidInput, i+1)
		}
	}
	for i, p := range record.Products {
		if p.ProductName == "" || p.Quantity < 0 {
			return fmt.Errorf("%w: venta inválida en la posición %d", domain.ErrInvalidInput, i+1)
		}
	}
	return nil
}
