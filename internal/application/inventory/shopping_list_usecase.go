package inventory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Barkeeper-api/internal/application/dto"
	"github.com/jhoicas/Barkeeper-api/internal/domain"
	"github.com/jhoicas/Barkeeper-api/internal/domain/entity"
)

// DefaultBottleSizeML tamaño de botella estándar para convertir ml a botellas.
const DefaultBottleSizeML = 700

// ShoppingListUseCase genera la lista de compras a partir de las alertas de stock bajo
// de la sesión y la exporta a CSV o PDF.
type ShoppingListUseCase struct {
	store        SessionStore
	exporter     ShoppingListExporter
	pdf          ShoppingListPDFGenerator
	bottleSizeML int
	threshold    int
	now          func() time.Time
}

// NewShoppingListUseCase construye el caso de uso de la lista de compras.
func NewShoppingListUseCase(
	store SessionStore,
	exporter ShoppingListExporter,
	pdf ShoppingListPDFGenerator,
	bottleSizeML, threshold int,
) *ShoppingListUseCase {
	if bottleSizeML <= 0 {
		bottleSizeML = DefaultBottleSizeML
	}
	return &ShoppingListUseCase{
		store:        store,
		exporter:     exporter,
		pdf:          pdf,
		bottleSizeML: bottleSizeML,
		threshold:    threshold,
		now:          time.Now,
	}
}

// GenerateShoppingList devuelve un ítem por alerta de stock bajo con la cantidad a comprar,
// ordenados de mayor a menor cantidad necesaria (prioridad 1 = mayor).
func (uc *ShoppingListUseCase) GenerateShoppingList(ctx context.Context, sessionID string) (*dto.ShoppingListDTO, error) {
	st, err := uc.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return BuildShoppingList(st.Derived.Warnings, uc.bottleSizeML, uc.threshold), nil
}

// ExportCSV lista de compras en CSV. Sin alertas devuelve domain.ErrNotFound.
func (uc *ShoppingListUseCase) ExportCSV(ctx context.Context, sessionID string) ([]byte, error) {
	list, err := uc.nonEmptyList(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return uc.exporter.Export(list.Items)
}

// ExportPDF lista de compras imprimible. Sin alertas devuelve domain.ErrNotFound.
func (uc *ShoppingListUseCase) ExportPDF(ctx context.Context, sessionID string) ([]byte, error) {
	list, err := uc.nonEmptyList(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return uc.pdf.GenerateShoppingListPDF(ctx, list, uc.now())
}

func (uc *ShoppingListUseCase) nonEmptyList(ctx context.Context, sessionID string) (*dto.ShoppingListDTO, error) {
	list, err := uc.GenerateShoppingList(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if len(list.Items) == 0 {
		return nil, fmt.Errorf("%w: no hay ingredientes con stock bajo", domain.ErrNotFound)
	}
	return list, nil
}

// BuildShoppingList arma la lista de compras desde las alertas.
// needed = max(0, objetivo - actual); botellas redondeadas a 2 decimales.
func BuildShoppingList(warnings []entity.LowStockWarning, bottleSizeML, threshold int) *dto.ShoppingListDTO {
	thousand := decimal.NewFromInt(1000)
	bottle := decimal.NewFromInt(int64(bottleSizeML))

	items := make([]dto.ShoppingItemDTO, 0, len(warnings))
	total := decimal.Zero
	for _, w := range warnings {
		needed := decimal.Max(decimal.Zero, w.TargetStockML.Sub(w.CurrentStockML))
		total = total.Add(needed)
		items = append(items, dto.ShoppingItemDTO{
			IngredientName:      w.IngredientName,
			CurrentStockML:      w.CurrentStockML,
			TargetStockML:       w.TargetStockML,
			NeededML:            needed,
			NeededLiters:        needed.Div(thousand),
			NeededBottles:       needed.Div(bottle).Round(2),
			MaxServingsPossible: w.MaxServingsPossible,
			LimitingDrink:       w.LimitingDrink,
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].NeededML.GreaterThan(items[j].NeededML)
	})
	for i := range items {
		items[i].Priority = i + 1
	}

	return &dto.ShoppingListDTO{
		BottleSizeML:  bottleSizeML,
		Threshold:     threshold,
		Items:         items,
		TotalNeededML: total,
	}
}
