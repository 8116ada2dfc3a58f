package csvexport_test

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Barkeeper-api/internal/application/dto"
	"github.com/jhoicas/Barkeeper-api/internal/infrastructure/csvexport"
)

func TestExport_FormatoExcelAleman(t *testing.T) {
	items := []dto.ShoppingItemDTO{
		{
			IngredientName: "Havana Club 3 Años Rum",
			CurrentStockML: decimal.NewFromInt(300),
			TargetStockML:  decimal.NewFromInt(1750),
			NeededML:       decimal.NewFromInt(1450),
			NeededBottles:  decimal.RequireFromString("2.07"),
		},
		{
			IngredientName: "Minze",
			CurrentStockML: decimal.NewFromInt(50),
			TargetStockML:  decimal.NewFromInt(150),
			NeededML:       decimal.NewFromInt(100),
			NeededBottles:  decimal.RequireFromString("0.14"),
		},
	}

	out, err := csvexport.NewShoppingListWriter(700).Export(items)
	require.NoError(t, err)

	text := string(out)
	require.True(t, strings.HasPrefix(text, "\ufeff"), "debe empezar con BOM")
	lines := strings.Split(strings.TrimRight(strings.TrimPrefix(text, "\ufeff"), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Zutat;Aktueller Bestand (ml);Zielbestand (ml);Benötigte Menge (ml);Benötigte Flaschen (à 700ml)", lines[0])
	assert.Equal(t, "Havana Club 3 Años Rum;300;1.750;1.450;2,07", lines[1])
	assert.Equal(t, "Minze;50;150;100;0,14", lines[2])
}

func TestExport_SinItemsSoloEncabezado(t *testing.T) {
	out, err := csvexport.NewShoppingListWriter(1000).Export(nil)
	require.NoError(t, err)
	assert.Contains(t, string(out), "Benötigte Flaschen (à 1000ml)")
	assert.Equal(t, 1, strings.Count(string(out), "\n"))
}
