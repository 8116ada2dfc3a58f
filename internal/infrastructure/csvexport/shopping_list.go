// Package csvexport escribe la lista de compras como CSV para Excel en alemán:
// separador punto y coma, coma decimal y BOM UTF-8.
package csvexport

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jhoicas/Barkeeper-api/internal/application/dto"
)

const utf8BOM = "\ufeff"

// ShoppingListWriter implementa inventory.ShoppingListExporter.
type ShoppingListWriter struct {
	bottleSizeML int
	printer      *message.Printer
}

// NewShoppingListWriter crea el writer; bottleSizeML solo se usa en el encabezado.
func NewShoppingListWriter(bottleSizeML int) *ShoppingListWriter {
	return &ShoppingListWriter{
		bottleSizeML: bottleSizeML,
		printer:      message.NewPrinter(language.German),
	}
}

// Header columnas del CSV.
func (w *ShoppingListWriter) Header() []string {
	return []string{
		"Zutat",
		"Aktueller Bestand (ml)",
		"Zielbestand (ml)",
		"Benötigte Menge (ml)",
		"Benötigte Flaschen (à " + strconv.Itoa(w.bottleSizeML) + "ml)",
	}
}

// Export escribe los ítems en el orden recibido.
func (w *ShoppingListWriter) Export(items []dto.ShoppingItemDTO) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(utf8BOM)

	cw := csv.NewWriter(&buf)
	cw.Comma = ';'
	if err := cw.Write(w.Header()); err != nil {
		return nil, fmt.Errorf("csvexport: encabezado: %w", err)
	}
	for _, it := range items {
		rec := []string{
			it.IngredientName,
			w.number(it.CurrentStockML, 0),
			w.number(it.TargetStockML, 0),
			w.number(it.NeededML, 0),
			w.number(it.NeededBottles, 2),
		}
		if err := cw.Write(rec); err != nil {
			return nil, fmt.Errorf("csvexport: fila %s: %w", it.IngredientName, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return nil, fmt.Errorf("csvexport: %w", err)
	}
	return buf.Bytes(), nil
}

// number formato alemán: 1.234,56
func (w *ShoppingListWriter) number(d decimal.Decimal, places int32) string {
	return w.printer.Sprintf(fmt.Sprintf("%%.%df", places), d.Round(places).InexactFloat64())
}
