// Package analytics contiene el resumen del dashboard del bar.
package analytics

import (
	"context"
	"sort"

	"github.com/jhoicas/Barkeeper-api/internal/application/dto"
	appinventory "github.com/jhoicas/Barkeeper-api/internal/application/inventory"
	"github.com/jhoicas/Barkeeper-api/internal/domain/entity"
)

// DashboardUseCase arma el resumen de la sesión a partir del estado guardado.
// Solo lectura: nunca recalcula ni modifica la sesión.
type DashboardUseCase struct {
	store appinventory.SessionStore
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(store appinventory.SessionStore) *DashboardUseCase {
	return &DashboardUseCase{store: store}
}

// GetSummary construye el DashboardDTO de la sesión indicada.
func (uc *DashboardUseCase) GetSummary(ctx context.Context, sessionID string) (*dto.DashboardDTO, error) {
	st, err := uc.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return BuildDashboard(st), nil
}

// BuildDashboard resumen del estado: conteos, bebida más cara y listas ordenadas.
func BuildDashboard(st *appinventory.BarState) *dto.DashboardDTO {
	out := &dto.DashboardDTO{
		DataLoaded:       st.MasterDataLoaded(),
		TotalIngredients: len(st.Inventory),
		TotalRecipes:     len(entity.DrinkNames(st.Recipes)),
		LowStockWarnings: sortedWarnings(st.Derived.Warnings),
		AvailableDrinks:  sortedAvailability(st.Derived.Availability),
		DrinkCosts:       sortedCosts(st.Derived.Costs),
	}
	if len(out.DrinkCosts) > 0 {
		top := out.DrinkCosts[0]
		out.MostExpensiveDrink = &top
	}
	if st.Sales != nil {
		out.Sales = &dto.SalesOverviewDTO{
			ReportDate: st.Sales.ReportDate,
			Summary:    st.SalesSummary,
			Applied:    st.SalesApplied,
		}
	}
	return out
}

// ── Ordenamientos (sobre copias; el snapshot guardado no se toca) ─────────────

func sortedWarnings(in []entity.LowStockWarning) []entity.LowStockWarning {
	out := append([]entity.LowStockWarning{}, in...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].MaxServingsPossible < out[j].MaxServingsPossible
	})
	return out
}

// Las bebidas sin consumo (ilimitadas) van al final.
func sortedAvailability(in []entity.DrinkAvailability) []entity.DrinkAvailability {
	out := append([]entity.DrinkAvailability{}, in...)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Unlimited != b.Unlimited {
			return !a.Unlimited
		}
		return a.MaxServings < b.MaxServings
	})
	return out
}

func sortedCosts(in []entity.DrinkCost) []entity.DrinkCost {
	out := append([]entity.DrinkCost{}, in...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].TotalCost.GreaterThan(out[j].TotalCost)
	})
	return out
}
