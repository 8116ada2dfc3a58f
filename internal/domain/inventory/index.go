package inventory

import "github.com/jhoicas/Barkeeper-api/internal/domain/entity"

// DefaultLowStockThreshold porciones mínimas por debajo de las cuales se alerta un ingrediente.
const DefaultLowStockThreshold = 15

// Index cruce receta/inventario. Se construye una vez por pasada de recálculo y
// resuelve las búsquedas por nombre sin recorrer las tablas en cada consulta.
// Es de solo lectura: no modifica las tablas de origen.
type Index struct {
	ingredients  map[string]entity.Ingredient
	drinks       []string
	linesByDrink map[string][]entity.RecipeLine
}

// NewIndex construye el índice. Si el inventario trae nombres repetidos gana la primera fila.
func NewIndex(recipes []entity.RecipeLine, ingredients []entity.Ingredient) *Index {
	idx := &Index{
		ingredients:  make(map[string]entity.Ingredient, len(ingredients)),
		drinks:       entity.DrinkNames(recipes),
		linesByDrink: make(map[string][]entity.RecipeLine),
	}
	for _, ing := range ingredients {
		if _, ok := idx.ingredients[ing.Name]; !ok {
			idx.ingredients[ing.Name] = ing
		}
	}
	for _, l := range recipes {
		idx.linesByDrink[l.DrinkName] = append(idx.linesByDrink[l.DrinkName], l)
	}
	return idx
}

// Drinks nombres de bebida en orden de primera aparición en las recetas.
func (idx *Index) Drinks() []string {
	out := make([]string, len(idx.drinks))
	copy(out, idx.drinks)
	return out
}

// Ingredient busca un ingrediente por nombre exacto.
func (idx *Index) Ingredient(name string) (entity.Ingredient, bool) {
	ing, ok := idx.ingredients[name]
	return ing, ok
}

// Lines líneas de receta de una bebida (nombre exacto, sensible a mayúsculas).
func (idx *Index) Lines(drink string) []entity.RecipeLine {
	return idx.linesByDrink[drink]
}
