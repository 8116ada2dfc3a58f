package inventory_test

import (
	"context"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appinventory "github.com/jhoicas/Barkeeper-api/internal/application/inventory"
	"github.com/jhoicas/Barkeeper-api/internal/domain"
	"github.com/jhoicas/Barkeeper-api/internal/domain/entity"
	"github.com/jhoicas/Barkeeper-api/internal/infrastructure/csvimport"
	"github.com/jhoicas/Barkeeper-api/internal/infrastructure/memory"
)

const reporte = `Tagesabschluss;Kasse 1;;;
Datum;von;15.03.2024;bis;15.03.2024
;;;;
Produkte;;;;
Artikel;Anzahl;Umsatz;Anteil;
Mojito;3;25,50;65,4%;
Cuba Libre;2;14,00;34,6%;
;;;;
`

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func ingredients() []entity.Ingredient {
	return []entity.Ingredient{
		{Name: "Rum", CurrentStockML: dec("700"), PricePerLiter: dec("20"), TargetStockML: dec("1400")},
		{Name: "Minze", CurrentStockML: dec("50"), PricePerLiter: dec("10"), TargetStockML: dec("0")},
		{Name: "Cola", CurrentStockML: dec("5000"), PricePerLiter: dec("2"), TargetStockML: dec("2000")},
	}
}

func recipes() []entity.RecipeLine {
	return []entity.RecipeLine{
		{DrinkName: "Mojito", IngredientName: "Rum", AmountML: dec("50")},
		{DrinkName: "Mojito", IngredientName: "Minze", AmountML: dec("10")},
		{DrinkName: "Cuba Libre", IngredientName: "Rum", AmountML: dec("40")},
		{DrinkName: "Cuba Libre", IngredientName: "Cola", AmountML: dec("150")},
	}
}

func newUseCase(t *testing.T) (*appinventory.BarUseCase, string) {
	t.Helper()
	uc := appinventory.NewBarUseCase(memory.NewSessionStore(), csvimport.NewReader(), nil, 15, nil, nil)
	id, err := uc.CreateSession(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, id)
	return uc, id
}

func loaded(t *testing.T) (*appinventory.BarUseCase, string) {
	t.Helper()
	uc, id := newUseCase(t)
	ctx := context.Background()
	_, err := uc.ReplaceInventory(ctx, id, ingredients())
	require.NoError(t, err)
	_, err = uc.ReplaceRecipes(ctx, id, recipes())
	require.NoError(t, err)
	return uc, id
}

// ────────────────────────────────────────────────────────────────────────────
// Tablas maestras y datos derivados
// ────────────────────────────────────────────────────────────────────────────

func TestReplaceInventory_SinRecetasNoHayDerivados(t *testing.T) {
	uc, id := newUseCase(t)
	st, err := uc.ReplaceInventory(context.Background(), id, ingredients())
	require.NoError(t, err)

	assert.True(t, st.InventoryLoaded)
	assert.False(t, st.MasterDataLoaded())
	assert.Empty(t, st.Derived.Costs)
}

func TestReplaceRecipes_RecalculaDerivados(t *testing.T) {
	uc, id := loaded(t)
	st, err := uc.State(context.Background(), id)
	require.NoError(t, err)

	require.Len(t, st.Derived.Costs, 2)
	assert.Equal(t, "Mojito", st.Derived.Costs[0].DrinkName)
	// 50 ml × 0,02 + 10 ml × 0,01
	assert.True(t, st.Derived.Costs[0].TotalCost.Equal(dec("1.1")))

	require.Len(t, st.Derived.Availability, 2)
	assert.Equal(t, int64(5), st.Derived.Availability[0].MaxServings)
	assert.Equal(t, "Minze", st.Derived.Availability[0].LimitingIngredient)

	names := make([]string, 0)
	for _, w := range st.Derived.Warnings {
		names = append(names, w.IngredientName)
	}
	assert.ElementsMatch(t, []string{"Rum", "Minze"}, names)
}

func TestReplaceInventory_NoModificaEstadoAnterior(t *testing.T) {
	uc, id := loaded(t)
	ctx := context.Background()
	before, err := uc.State(ctx, id)
	require.NoError(t, err)

	_, err = uc.ReplaceInventory(ctx, id, nil)
	require.NoError(t, err)

	assert.Len(t, before.Inventory, 3)
	after, err := uc.State(ctx, id)
	require.NoError(t, err)
	assert.Empty(t, after.Inventory)
	assert.NotNil(t, after.Inventory)
}

func TestImportCSV_CargaTablasMaestras(t *testing.T) {
	uc, id := newUseCase(t)
	ctx := context.Background()

	_, err := uc.ImportInventoryCSV(ctx, id, strings.NewReader(
		"Zutat,Lagerbestand (ml),Einkaufspreis pro Liter (EUR),Soll-Lagerbestand in Flaschen für 50 Drinks\n"+
			"Rum,700,\"21,40\",1400\n"))
	require.NoError(t, err)
	st, err := uc.ImportRecipesCSV(ctx, id, strings.NewReader(
		"Getränkename,Zutat,Menge pro Drink (ml/cl)\nDaiquiri,Rum,60\n"))
	require.NoError(t, err)

	assert.True(t, st.MasterDataLoaded())
	require.Len(t, st.Derived.Availability, 1)
	assert.Equal(t, int64(11), st.Derived.Availability[0].MaxServings)
}

func TestImportCSV_ColumnasFaltantesNoCambianEstado(t *testing.T) {
	uc, id := newUseCase(t)
	_, err := uc.ImportRecipesCSV(context.Background(), id, strings.NewReader("Drink,Zutat\nMojito,Rum\n"))
	assert.ErrorIs(t, err, domain.ErrMissingColumns)

	st, err := uc.State(context.Background(), id)
	require.NoError(t, err)
	assert.False(t, st.RecipesLoaded)
}

func TestAddDrink(t *testing.T) {
	uc, id := loaded(t)
	ctx := context.Background()

	st, err := uc.AddDrink(ctx, id, []entity.RecipeLine{
		{DrinkName: "Rum Cola", IngredientName: "Rum", AmountML: dec("40")},
		{DrinkName: "Rum Cola", IngredientName: "Cola", AmountML: dec("200")},
	})
	require.NoError(t, err)
	assert.Len(t, st.Recipes, 6)
	assert.Len(t, st.Derived.Costs, 3)

	_, err = uc.AddDrink(ctx, id, []entity.RecipeLine{
		{DrinkName: "Gin Tonic", IngredientName: "Gin", AmountML: dec("40")},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAddDrink_SinTablasMaestras(t *testing.T) {
	uc, id := newUseCase(t)
	_, err := uc.AddDrink(context.Background(), id, []entity.RecipeLine{
		{DrinkName: "Rum Cola", IngredientName: "Rum", AmountML: dec("40")},
	})
	assert.ErrorIs(t, err, domain.ErrMissingMasterData)
}

// ────────────────────────────────────────────────────────────────────────────
// Ventas
// ────────────────────────────────────────────────────────────────────────────

func TestImportSalesReport_RequiereTablasMaestras(t *testing.T) {
	uc, id := newUseCase(t)
	_, err := uc.ImportSalesReport(context.Background(), id, []byte(reporte))
	assert.ErrorIs(t, err, domain.ErrMissingMasterData)
}

func TestImportSalesReport_GuardaRegistroYResumen(t *testing.T) {
	uc, id := loaded(t)
	st, err := uc.ImportSalesReport(context.Background(), id, []byte(reporte))
	require.NoError(t, err)

	require.NotNil(t, st.Sales)
	assert.Equal(t, "2024-03-15", st.Sales.ReportDate)
	assert.Len(t, st.Sales.Products, 2)
	assert.Equal(t, 5, st.SalesSummary.TotalQuantity)
	assert.Equal(t, "Mojito", st.SalesSummary.MostSoldDrink)
	assert.False(t, st.SalesApplied)
	// importar no descuenta stock
	assert.True(t, st.Inventory[0].CurrentStockML.Equal(dec("700")))
}

func TestImportSalesReport_Ilegible(t *testing.T) {
	uc, id := loaded(t)
	_, err := uc.ImportSalesReport(context.Background(), id, []byte{0xff, 0xfe, 0x00})
	assert.ErrorIs(t, err, domain.ErrUnreadableReport)
}

func TestApplySales_DescuentaUnaSolaVez(t *testing.T) {
	uc, id := loaded(t)
	ctx := context.Background()
	_, err := uc.ImportSalesReport(ctx, id, []byte(reporte))
	require.NoError(t, err)

	st, res, err := uc.ApplySales(ctx, id)
	require.NoError(t, err)
	assert.Empty(t, res.MissingIngredients)
	assert.True(t, st.SalesApplied)

	// Rum: 700 - 3×50 - 2×40 = 470; Minze: 50 - 3×10 = 20; Cola: 5000 - 2×150 = 4700
	assert.True(t, st.Inventory[0].CurrentStockML.Equal(dec("470")))
	assert.True(t, st.Inventory[1].CurrentStockML.Equal(dec("20")))
	assert.True(t, st.Inventory[2].CurrentStockML.Equal(dec("4700")))
	assert.Equal(t, int64(2), st.Derived.Availability[0].MaxServings)

	_, _, err = uc.ApplySales(ctx, id)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestApplySales_SinReporte(t *testing.T) {
	uc, id := loaded(t)
	_, _, err := uc.ApplySales(context.Background(), id)
	assert.ErrorIs(t, err, domain.ErrNoSalesImported)
}

func TestApplySales_ReportaIngredientesFaltantes(t *testing.T) {
	uc, id := loaded(t)
	ctx := context.Background()
	_, err := uc.ReplaceInventory(ctx, id, ingredients()[:2]) // sin Cola
	require.NoError(t, err)
	_, err = uc.ImportSalesReport(ctx, id, []byte(reporte))
	require.NoError(t, err)

	_, res, err := uc.ApplySales(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, []string{"Cola"}, res.MissingIngredients)
}

// ────────────────────────────────────────────────────────────────────────────
// Ciclo de vida
// ────────────────────────────────────────────────────────────────────────────

func TestResetSession(t *testing.T) {
	uc, id := loaded(t)
	ctx := context.Background()
	require.NoError(t, uc.ResetSession(ctx, id))

	_, err := uc.State(ctx, id)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	assert.ErrorIs(t, uc.ResetSession(ctx, id), domain.ErrSessionNotFound)
}

func TestThreshold_PorDefecto(t *testing.T) {
	uc := appinventory.NewBarUseCase(memory.NewSessionStore(), nil, nil, 0, nil, nil)
	assert.Equal(t, 15, uc.Threshold())
}
