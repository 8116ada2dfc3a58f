package inventory_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Barkeeper-api/internal/domain/entity"
	"github.com/jhoicas/Barkeeper-api/internal/domain/inventory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func ing(name, stock, price, target string) entity.Ingredient {
	return entity.Ingredient{
		Name:           name,
		CurrentStockML: dec(stock),
		PricePerLiter:  dec(price),
		TargetStockML:  dec(target),
	}
}

func line(drink, ingredient, amount string) entity.RecipeLine {
	return entity.RecipeLine{DrinkName: drink, IngredientName: ingredient, AmountML: dec(amount)}
}

// ──────────────────────────────────────────────────────────────────────────────
// Costos
// ──────────────────────────────────────────────────────────────────────────────

func TestCostOf_SumaPorIngrediente(t *testing.T) {
	idx := inventory.NewIndex(
		[]entity.RecipeLine{line("Mojito", "Rum", "50"), line("Mojito", "Limettensaft", "30")},
		[]entity.Ingredient{ing("Rum", "3300", "20", "0"), ing("Limettensaft", "6000", "5", "0")},
	)
	dc, ok := idx.CostOf("Mojito")
	require.True(t, ok)
	// 50 × 0,020 + 30 × 0,005 = 1,00 + 0,15
	assert.True(t, dec("1.15").Equal(dc.TotalCost), "got %s", dc.TotalCost)
	require.Len(t, dc.Breakdown, 2)
	assert.True(t, dec("1").Equal(dc.Breakdown[0].Cost))
}

func TestCostOf_IngredienteFaltanteNoSuma(t *testing.T) {
	idx := inventory.NewIndex(
		[]entity.RecipeLine{line("Mojito", "Rum", "50"), line("Mojito", "Minze", "5")},
		[]entity.Ingredient{ing("Rum", "3300", "20", "0")},
	)
	dc, ok := idx.CostOf("Mojito")
	require.True(t, ok)
	assert.True(t, dec("1").Equal(dc.TotalCost))
	assert.Len(t, dc.Breakdown, 1)
}

func TestCostOf_BebidaSinReceta(t *testing.T) {
	idx := inventory.NewIndex(nil, nil)
	_, ok := idx.CostOf("Mojito")
	assert.False(t, ok)
	assert.Empty(t, idx.DrinkCosts())
}

func TestDrinkCosts_LineasDuplicadasSumanPorSeparado(t *testing.T) {
	idx := inventory.NewIndex(
		[]entity.RecipeLine{line("Double", "Rum", "40"), line("Double", "Rum", "40")},
		[]entity.Ingredient{ing("Rum", "100", "10", "0")},
	)
	costs := idx.DrinkCosts()
	require.Len(t, costs, 1)
	assert.True(t, dec("0.8").Equal(costs[0].TotalCost), "dos líneas de 40 ml a 0,01 €/ml")
}

// ──────────────────────────────────────────────────────────────────────────────
// Disponibilidad
// ──────────────────────────────────────────────────────────────────────────────

func TestMaxServings_IngredienteCuelloDeBotella(t *testing.T) {
	idx := inventory.NewIndex(
		[]entity.RecipeLine{line("Drink", "A", "50"), line("Drink", "B", "10")},
		[]entity.Ingredient{ing("A", "100", "0", "0"), ing("B", "1000", "0", "0")},
	)
	av, ok := idx.MaxServings("Drink")
	require.True(t, ok)
	assert.EqualValues(t, 2, av.MaxServings)
	assert.Equal(t, "A", av.LimitingIngredient)
	assert.False(t, av.MissingIngredient)
}

func TestMaxServings_IngredienteFaltanteFuerzaCero(t *testing.T) {
	idx := inventory.NewIndex(
		[]entity.RecipeLine{line("Drink", "A", "50"), line("Drink", "B", "10")},
		[]entity.Ingredient{ing("A", "100000", "0", "0")},
	)
	av, ok := idx.MaxServings("Drink")
	require.True(t, ok)
	assert.EqualValues(t, 0, av.MaxServings)
	assert.Equal(t, "B", av.LimitingIngredient)
	assert.True(t, av.MissingIngredient)
}

func TestMaxServings_RedondeaHaciaAbajo(t *testing.T) {
	idx := inventory.NewIndex(
		[]entity.RecipeLine{line("Shot", "Tequila", "40")},
		[]entity.Ingredient{ing("Tequila", "2500", "0", "0")},
	)
	av, _ := idx.MaxServings("Shot")
	assert.EqualValues(t, 62, av.MaxServings, "2500/40 = 62,5")
}

func TestMaxServings_SinConsumoEsIlimitado(t *testing.T) {
	idx := inventory.NewIndex(
		[]entity.RecipeLine{line("Wasser", "Leitungswasser", "0")},
		[]entity.Ingredient{ing("Leitungswasser", "0", "0", "0")},
	)
	av, _ := idx.MaxServings("Wasser")
	assert.True(t, av.Unlimited)
	assert.Empty(t, av.LimitingIngredient)
}

func TestAvailability_LineaDuplicadaSeEvaluaPorSeparado(t *testing.T) {
	idx := inventory.NewIndex(
		[]entity.RecipeLine{line("Double", "Rum", "40"), line("Double", "Rum", "40"), line("Single", "Rum", "40")},
		[]entity.Ingredient{ing("Rum", "100", "10", "0")},
	)
	avs := idx.Availability()
	require.Len(t, avs, 2)
	assert.Equal(t, "Double", avs[0].DrinkName)
	assert.EqualValues(t, 2, avs[0].MaxServings, "cada línea se evalúa sola: 100/40")
}

// ──────────────────────────────────────────────────────────────────────────────
// Alertas de stock bajo
// ──────────────────────────────────────────────────────────────────────────────

func TestLowStockWarnings_MinimoEntreBebidas(t *testing.T) {
	idx := inventory.NewIndex(
		[]entity.RecipeLine{
			line("Cuba Libre", "Rum", "40"),
			line("Mojito", "Rum", "60"),
			line("Mojito", "Limette", "20"),
		},
		[]entity.Ingredient{
			ing("Rum", "600", "20", "500"),
			ing("Limette", "6000", "5", "1000"),
		},
	)
	warnings := idx.LowStockWarnings(15)
	require.Len(t, warnings, 1)

	w := warnings[0]
	assert.Equal(t, "Rum", w.IngredientName)
	assert.EqualValues(t, 10, w.MaxServingsPossible, "Mojito: 600/60 = 10 < Cuba Libre: 600/40 = 15")
	assert.Equal(t, "Mojito", w.LimitingDrink)
	assert.True(t, dec("600").Equal(w.CurrentStockML))
	// 15 × (40 + 60) = 1500 > objetivo configurado 500
	assert.True(t, dec("1500").Equal(w.TargetStockML), "got %s", w.TargetStockML)
}

func TestLowStockWarnings_ObjetivoConfiguradoMayorSeConserva(t *testing.T) {
	idx := inventory.NewIndex(
		[]entity.RecipeLine{line("Shot", "Tequila", "40")},
		[]entity.Ingredient{ing("Tequila", "80", "0", "2500")},
	)
	warnings := idx.LowStockWarnings(15)
	require.Len(t, warnings, 1)
	assert.True(t, dec("2500").Equal(warnings[0].TargetStockML))
	assert.EqualValues(t, 2, warnings[0].MaxServingsPossible)
}

func TestLowStockWarnings_EmpateGanaLaPrimeraBebida(t *testing.T) {
	idx := inventory.NewIndex(
		[]entity.RecipeLine{line("A", "Gin", "50"), line("B", "Gin", "50")},
		[]entity.Ingredient{ing("Gin", "100", "0", "0")},
	)
	warnings := idx.LowStockWarnings(15)
	require.Len(t, warnings, 1)
	assert.Equal(t, "A", warnings[0].LimitingDrink)
}

func TestLowStockWarnings_UmbralYFaltantes(t *testing.T) {
	idx := inventory.NewIndex(
		[]entity.RecipeLine{line("Shot", "Tequila", "40"), line("Shot", "Salz", "1")},
		[]entity.Ingredient{ing("Tequila", "600", "0", "0")},
	)
	assert.Empty(t, idx.LowStockWarnings(15), "600/40 = 15 no está por debajo del umbral; Salz no existe y se ignora")
	assert.Len(t, idx.LowStockWarnings(16), 1)
	assert.Empty(t, idx.LowStockWarnings(0), "0 usa el umbral por defecto (15)")
}

// ──────────────────────────────────────────────────────────────────────────────
// Descuento por ventas
// ──────────────────────────────────────────────────────────────────────────────

func sales(lines ...entity.SalesLine) *entity.SalesRecord {
	return &entity.SalesRecord{ReportDate: "2024-03-15", Products: lines}
}

func TestDeplete_NoBajaDeCero(t *testing.T) {
	inv := []entity.Ingredient{ing("A", "100", "0", "0")}
	res, err := inventory.Deplete(inv, []entity.RecipeLine{line("Drink", "A", "50")},
		sales(entity.SalesLine{ProductName: "Drink", Quantity: 3}))
	require.NoError(t, err)
	assert.True(t, res.Inventory[0].CurrentStockML.IsZero(), "100 - 150 se corta en 0, got %s", res.Inventory[0].CurrentStockML)
	assert.True(t, dec("100").Equal(inv[0].CurrentStockML), "la tabla original no se modifica")
}

func TestDeplete_DescuentaCantidadPorPorcion(t *testing.T) {
	inv := []entity.Ingredient{ing("Rum", "3300", "0", "0"), ing("Cola", "18000", "0", "0")}
	recipes := []entity.RecipeLine{line("Cuba Libre", "Rum", "40"), line("Cuba Libre", "Cola", "160")}
	res, err := inventory.Deplete(inv, recipes, sales(entity.SalesLine{ProductName: "Cuba Libre", Quantity: 10}))
	require.NoError(t, err)
	assert.True(t, dec("2900").Equal(res.Inventory[0].CurrentStockML))
	assert.True(t, dec("16400").Equal(res.Inventory[1].CurrentStockML))
	assert.Empty(t, res.MissingIngredients)
}

func TestDeplete_ProductoSinRecetaNoAfecta(t *testing.T) {
	inv := []entity.Ingredient{ing("Rum", "3300", "0", "0")}
	res, err := inventory.Deplete(inv, []entity.RecipeLine{line("Mojito", "Rum", "50")},
		sales(entity.SalesLine{ProductName: "mojito", Quantity: 4}, entity.SalesLine{ProductName: "Eintritt", Quantity: 20}))
	require.NoError(t, err)
	assert.Equal(t, inv, res.Inventory, "coincidencia exacta: 'mojito' no es 'Mojito'")
	assert.Empty(t, res.MissingIngredients)
}

func TestDeplete_IngredientesFaltantesSinRepetir(t *testing.T) {
	inv := []entity.Ingredient{ing("Rum", "3300", "0", "0")}
	recipes := []entity.RecipeLine{
		line("Mojito", "Rum", "50"),
		line("Mojito", "Minze", "5"),
		line("Daiquiri", "Minze", "2"),
		line("Daiquiri", "Zuckersirup", "20"),
	}
	res, err := inventory.Deplete(inv, recipes, sales(
		entity.SalesLine{ProductName: "Mojito", Quantity: 2},
		entity.SalesLine{ProductName: "Daiquiri", Quantity: 1},
	))
	require.NoError(t, err)
	assert.Equal(t, []string{"Minze", "Zuckersirup"}, res.MissingIngredients)
	assert.True(t, dec("3200").Equal(res.Inventory[0].CurrentStockML), "el resto de descuentos se aplica")
}

func TestDeplete_LineasDuplicadasDescuentanDosVeces(t *testing.T) {
	inv := []entity.Ingredient{ing("Rum", "1000", "0", "0")}
	res, err := inventory.Deplete(inv,
		[]entity.RecipeLine{line("Double", "Rum", "40"), line("Double", "Rum", "40")},
		sales(entity.SalesLine{ProductName: "Double", Quantity: 5}))
	require.NoError(t, err)
	assert.True(t, dec("600").Equal(res.Inventory[0].CurrentStockML))
}

func TestDeplete_EntradaMalformada(t *testing.T) {
	_, err := inventory.Deplete(nil, nil, nil)
	assert.Error(t, err)

	_, err = inventory.Deplete([]entity.Ingredient{ing(" ", "1", "0", "0")}, nil, sales())
	assert.Error(t, err)

	_, err = inventory.Deplete(nil, nil, sales(entity.SalesLine{ProductName: "Mojito", Quantity: -1}))
	assert.Error(t, err)
}
