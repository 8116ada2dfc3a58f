// Package csvimport lee las tablas maestras (inventario y recetas) exportadas
// como CSV desde la hoja de cálculo del bar.
package csvimport

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"go.uber.org/multierr"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/jhoicas/Barkeeper-api/internal/domain"
	"github.com/jhoicas/Barkeeper-api/internal/domain/entity"
	"github.com/jhoicas/Barkeeper-api/pkg/locale"
)

// Encabezados de la hoja de cálculo del bar.
const (
	ColIngredient    = "Zutat"
	ColStockML       = "Lagerbestand (ml)"
	ColPricePerLiter = "Einkaufspreis pro Liter (EUR)"
	ColTargetStockML = "Soll-Lagerbestand in Flaschen für 50 Drinks"

	ColDrinkName = "Getränkename"
	ColAmountML  = "Menge pro Drink (ml/cl)"
)

// maxFileSize límite de lectura para un CSV maestro.
const maxFileSize = 8 << 20

// Reader implementa inventory.MasterDataReader.
type Reader struct {
	delimiter rune
}

// NewReader crea un lector con delimitador coma.
func NewReader() *Reader {
	return &Reader{delimiter: ','}
}

// ReadInventory lee el CSV de inventario. Los números admiten formato alemán ("1,86");
// vacío o no numérico vale 0. Las filas sin nombre de ingrediente se descartan.
func (r *Reader) ReadInventory(in io.Reader) ([]entity.Ingredient, error) {
	t, err := r.readTable(in, ColIngredient, ColStockML, ColPricePerLiter, ColTargetStockML)
	if err != nil {
		return nil, err
	}
	out := make([]entity.Ingredient, 0, len(t.rows))
	for _, rec := range t.rows {
		name := t.value(rec, ColIngredient)
		if name == "" {
			continue
		}
		out = append(out, entity.Ingredient{
			Name:           name,
			CurrentStockML: locale.Normalize(t.value(rec, ColStockML)),
			PricePerLiter:  locale.Normalize(t.value(rec, ColPricePerLiter)),
			TargetStockML:  locale.Normalize(t.value(rec, ColTargetStockML)),
		})
	}
	return out, nil
}

// ReadRecipes lee el CSV de recetas. Se descartan las filas sin bebida o sin ingrediente.
func (r *Reader) ReadRecipes(in io.Reader) ([]entity.RecipeLine, error) {
	t, err := r.readTable(in, ColDrinkName, ColIngredient, ColAmountML)
	if err != nil {
		return nil, err
	}
	out := make([]entity.RecipeLine, 0, len(t.rows))
	for _, rec := range t.rows {
		drink := t.value(rec, ColDrinkName)
		ingredient := t.value(rec, ColIngredient)
		if drink == "" || ingredient == "" {
			continue
		}
		out = append(out, entity.RecipeLine{
			DrinkName:      drink,
			IngredientName: ingredient,
			AmountML:       locale.Normalize(t.value(rec, ColAmountML)),
		})
	}
	return out, nil
}

// ── Tabla genérica ────────────────────────────────────────────────────────────

type table struct {
	columns map[string]int
	rows    [][]string
}

func (t *table) value(rec []string, col string) string {
	i := t.columns[col]
	if i >= len(rec) {
		return ""
	}
	return strings.TrimSpace(rec[i])
}

func (r *Reader) readTable(in io.Reader, required ...string) (*table, error) {
	raw, err := io.ReadAll(io.LimitReader(in, maxFileSize+1))
	if err != nil {
		return nil, fmt.Errorf("csvimport: leer: %w", err)
	}
	if len(raw) > maxFileSize {
		return nil, fmt.Errorf("%w: el archivo supera %d bytes", domain.ErrInvalidInput, maxFileSize)
	}
	text, err := toUTF8(raw)
	if err != nil {
		return nil, err
	}

	cr := csv.NewReader(bytes.NewReader(text))
	cr.Comma = r.delimiter
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: archivo vacío", domain.ErrInvalidInput)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	cols := make(map[string]int, len(header))
	for i, h := range header {
		h = strings.TrimSpace(h)
		if h == "" {
			continue
		}
		if _, dup := cols[h]; !dup {
			cols[h] = i
		}
	}
	var missing error
	for _, c := range required {
		if _, ok := cols[c]; !ok {
			missing = multierr.Append(missing, fmt.Errorf("columna %q", c))
		}
	}
	if missing != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMissingColumns, missing)
	}

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	return &table{columns: cols, rows: rows}, nil
}

// toUTF8 quita el BOM y, si el contenido no es UTF-8 válido, lo decodifica como Latin-1
// (exportación de Excel en Windows).
func toUTF8(raw []byte) ([]byte, error) {
	dec := unicode.UTF8BOM.NewDecoder()
	if !utf8.Valid(raw) {
		dec = charmap.ISO8859_1.NewDecoder()
	}
	text, _, err := transform.Bytes(dec, raw)
	if err != nil {
		return nil, fmt.Errorf("csvimport: decodificar: %w", err)
	}
	return text, nil
}
