// Package pdf genera la lista de compras imprimible del bar.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Einkaufsliste              │  Fecha de generación   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  PARÁMETROS: umbral de porciones / tamaño de botella         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: # | Zutat | Bestand | Ziel | Benötigt | Flaschen     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL: ml y litros a comprar                                │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Barkeeper-api/internal/application/dto"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 96, Green: 32, Blue: 48}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlert   = &props.Color{Red: 180, Green: 30, Blue: 30}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa inventory.ShoppingListPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct {
	barName string
}

// NewMarotoPDFGenerator construye el generador. barName aparece en el encabezado.
func NewMarotoPDFGenerator(barName string) *MarotoPDFGenerator {
	return &MarotoPDFGenerator{barName: barName}
}

// GenerateShoppingListPDF genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateShoppingListPDF(
	_ context.Context,
	list *dto.ShoppingListDTO,
	generatedAt time.Time,
) ([]byte, error) {
	if list == nil {
		return nil, fmt.Errorf("pdf: lista de compras nil")
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Einkaufsliste", true).
		WithAuthor(nonEmpty(g.barName, "Barkeeper"), true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(g.barName, generatedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(parametersRow(list))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableDetailRows(list.Items) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(list))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(barName string, generatedAt time.Time) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New("EINKAUFSLISTE", props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1,
			}),
			text.New(nonEmpty(barName, "Barkeeper"), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("Erstellt am", props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
			text.New(generatedAt.Format("02.01.2006 15:04"), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 8,
			}),
		),
	)
}

func parametersRow(list *dto.ShoppingListDTO) core.Row {
	return row.New(10).Add(
		col.New(12).Add(
			text.New(fmt.Sprintf(
				"Warnschwelle: %d Drinks   |   Flaschengröße: %d ml   |   Positionen: %d",
				list.Threshold, list.BottleSizeML, len(list.Items),
			), props.Text{Size: 8, Top: 3, Color: colorGray}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("#", 1, align.Center),
		h("Zutat", 4, align.Left),
		h("Bestand (ml)", 2, align.Right),
		h("Ziel (ml)", 2, align.Right),
		h("Benötigt (ml)", 2, align.Right),
		h("Flaschen", 1, align.Right),
	)
}

// tableDetailRows: una fila por ingrediente; los que no alcanzan para ninguna porción van en rojo.
func tableDetailRows(items []dto.ShoppingItemDTO) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, it := range items {
		nameColor := (*props.Color)(nil)
		if it.MaxServingsPossible == 0 {
			nameColor = colorAlert
		}
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", it.Priority),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(4).Add(text.New(
				it.IngredientName,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1, Color: nameColor},
			)),
			col.New(2).Add(text.New(
				formatML(it.CurrentStockML),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				formatML(it.TargetStockML),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				formatML(it.NeededML),
				props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(1).Add(text.New(
				formatDecimal(it.NeededBottles, 2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

func totalsRow(list *dto.ShoppingListDTO) core.Row {
	liters := list.TotalNeededML.Div(decimal.NewFromInt(1000))
	return row.New(14).Add(
		col.New(6),
		col.New(3).Add(
			text.New("Gesamt (ml):", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2, Top: 2}),
			text.New("Gesamt (l):", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2, Top: 8}),
		),
		col.New(3).Add(
			text.New(formatML(list.TotalNeededML), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Right: 1, Top: 2,
			}),
			text.New(formatDecimal(liters, 2), props.Text{Size: 9, Align: align.Right, Right: 1, Top: 8}),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

func formatML(d decimal.Decimal) string {
	return formatThousands(d.StringFixed(0))
}

// formatDecimal formato alemán con decimales: 1234.5 → "1.234,50".
func formatDecimal(d decimal.Decimal, places int32) string {
	s := d.StringFixed(places)
	intPart, frac, _ := strings.Cut(s, ".")
	if frac == "" {
		return formatThousands(intPart)
	}
	return formatThousands(intPart) + "," + frac
}

// formatThousands inserta puntos de miles en un string numérico sin decimales.
// Ej: "25000" → "25.000", "-1000" → "-1.000"
func formatThousands(s string) string {
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	n := len(s)
	if n <= 3 {
		return sign + s
	}
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return sign + string(buf)
}
