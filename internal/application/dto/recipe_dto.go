package dto

import "github.com/jhoicas/Barkeeper-api/internal/domain/entity"

// RecipeRow fila editada de la tabla de recetas.
type RecipeRow struct {
	DrinkName      string       `json:"drink_name" validate:"max=200"`
	IngredientName string       `json:"ingredient_name" validate:"max=200"`
	AmountML       LocaleNumber `json:"amount_ml"`
}

// UpdateRecipesRequest body para PUT /api/sessions/:session_id/recipes.
type UpdateRecipesRequest struct {
	Rows []RecipeRow `json:"rows" validate:"max=5000,dive"`
}

// DrinkIngredient ingrediente de una bebida nueva.
type DrinkIngredient struct {
	IngredientName string       `json:"ingredient_name" validate:"max=200"`
	AmountML       LocaleNumber `json:"amount_ml"`
}

// AddDrinkRequest body para POST /api/sessions/:session_id/recipes.
// Solo se agregan los ingredientes con nombre y cantidad > 0.
type AddDrinkRequest struct {
	DrinkName   string            `json:"drink_name" validate:"required,max=200"`
	Ingredients []DrinkIngredient `json:"ingredients" validate:"required,min=1,max=10,dive"`
}

// RecipesDTO respuesta de GET/PUT/POST /api/sessions/:session_id/recipes.
type RecipesDTO struct {
	Loaded  bool                `json:"loaded"`
	Drinks  []string            `json:"drinks"` // en orden de primera aparición
	Recipes []entity.RecipeLine `json:"recipes"`
}
