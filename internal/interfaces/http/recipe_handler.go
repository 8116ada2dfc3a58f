package http

import (
	"bytes"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Barkeeper-api/internal/application/dto"
	appinventory "github.com/jhoicas/Barkeeper-api/internal/application/inventory"
	"github.com/jhoicas/Barkeeper-api/internal/domain/entity"
)

// RecipeHandler maneja la tabla de recetas de la sesión.
type RecipeHandler struct {
	uc *appinventory.BarUseCase
}

// NewRecipeHandler construye el handler.
func NewRecipeHandler(uc *appinventory.BarUseCase) *RecipeHandler {
	return &RecipeHandler{uc: uc}
}

// Get GET /api/sessions/:session_id/recipes
func (h *RecipeHandler) Get(c *fiber.Ctx) error {
	st, err := h.uc.State(c.UserContext(), GetSessionID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(recipesDTO(st))
}

// Update reemplaza las recetas con las filas editadas.
// PUT /api/sessions/:session_id/recipes
func (h *RecipeHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateRecipesRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := dto.Validate(in); err != nil {
		return respondError(c, err)
	}
	lines, err := appinventory.RecipesFromRows(in.Rows)
	if err != nil {
		return respondError(c, err)
	}
	st, err := h.uc.ReplaceRecipes(c.UserContext(), GetSessionID(c), lines)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(recipesDTO(st))
}

// AddDrink agrega una bebida nueva (1 a 10 ingredientes del inventario).
// POST /api/sessions/:session_id/recipes
func (h *RecipeHandler) AddDrink(c *fiber.Ctx) error {
	var in dto.AddDrinkRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := dto.Validate(in); err != nil {
		return respondError(c, err)
	}
	lines, err := appinventory.DrinkFromRequest(in)
	if err != nil {
		return respondError(c, err)
	}
	st, err := h.uc.AddDrink(c.UserContext(), GetSessionID(c), lines)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(recipesDTO(st))
}

// Import POST /api/sessions/:session_id/recipes/import
func (h *RecipeHandler) Import(c *fiber.Ctx) error {
	raw, err := uploadedFile(c)
	if err != nil {
		return respondError(c, err)
	}
	st, err := h.uc.ImportRecipesCSV(c.UserContext(), GetSessionID(c), bytes.NewReader(raw))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(recipesDTO(st))
}

func recipesDTO(st *appinventory.BarState) dto.RecipesDTO {
	out := dto.RecipesDTO{
		Loaded:  st.RecipesLoaded,
		Drinks:  entity.DrinkNames(st.Recipes),
		Recipes: st.Recipes,
	}
	if out.Recipes == nil {
		out.Recipes = []entity.RecipeLine{}
	}
	return out
}
