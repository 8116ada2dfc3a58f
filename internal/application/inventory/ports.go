package inventory

import (
	"context"
	"io"
	"time"

	"github.com/jhoicas/Barkeeper-api/internal/application/dto"
	"github.com/jhoicas/Barkeeper-api/internal/domain/entity"
)

// SessionStore guarda el estado de cada sesión de trabajo.
// Update ejecuta fn con el estado actual bajo exclusión mutua de la sesión y guarda
// el estado que fn devuelve; si fn falla no se guarda nada.
type SessionStore interface {
	Create(ctx context.Context, id string, state *BarState) error
	Get(ctx context.Context, id string) (*BarState, error)
	Update(ctx context.Context, id string, fn func(current *BarState) (*BarState, error)) (*BarState, error)
	Delete(ctx context.Context, id string) error
}

// MasterDataReader lee las tablas maestras exportadas de la hoja de cálculo del bar.
type MasterDataReader interface {
	ReadInventory(r io.Reader) ([]entity.Ingredient, error)
	ReadRecipes(r io.Reader) ([]entity.RecipeLine, error)
}

// ShoppingListExporter serializa la lista de compras (CSV para la hoja de cálculo).
type ShoppingListExporter interface {
	Export(items []dto.ShoppingItemDTO) ([]byte, error)
}

// ShoppingListPDFGenerator genera la lista de compras imprimible.
type ShoppingListPDFGenerator interface {
	GenerateShoppingListPDF(ctx context.Context, list *dto.ShoppingListDTO, generatedAt time.Time) ([]byte, error)
}
