package salesreport

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jhoicas/Barkeeper-api/internal/domain/entity"
	"github.com/jhoicas/Barkeeper-api/pkg/locale"
)

// errNotCandidate la línea no tiene forma de línea de producto (encabezado, línea vacía, texto).
// No se registra como anomalía.
var errNotCandidate = errors.New("no es línea de producto")

// LineMatcher intenta extraer una línea de venta de los campos de una fila.
// Devuelve errNotCandidate si la fila no pretende ser un producto; cualquier otro
// error indica una línea de producto malformada.
type LineMatcher interface {
	Name() string
	Match(fields []string) (entity.SalesLine, error)
}

// Strategy un matcher más el alcance en el que se aplica.
// Con RequiresSection=true solo corre si se encontró el título de la sección de productos;
// en caso contrario recorre todo el documento cuando falta el título.
type Strategy struct {
	Matcher         LineMatcher
	RequiresSection bool
}

// DefaultStrategies orden de prueba: primero el matcher flexible, luego el patrón estricto
// de la variante alternativa del exportador.
func DefaultStrategies() []Strategy {
	return []Strategy{
		{Matcher: ColumnScanMatcher{ScanWidth: defaultScanWidth}, RequiresSection: true},
		{Matcher: ShareColumnMatcher{}, RequiresSection: false},
	}
}

const defaultScanWidth = 6

// ColumnScanMatcher busca dentro de los primeros ScanWidth campos el primer entero (cantidad);
// el campo siguiente, con coma decimal, es el importe. El nombre es el último campo de texto
// antes de la cantidad.
type ColumnScanMatcher struct {
	ScanWidth int
}

func (ColumnScanMatcher) Name() string { return "column_scan" }

func (m ColumnScanMatcher) Match(fields []string) (entity.SalesLine, error) {
	if len(fields) == 0 || fields[0] == "" || locale.IsNumeric(fields[0]) || isTotalName(fields[0]) {
		return entity.SalesLine{}, errNotCandidate
	}
	width := m.ScanWidth
	if width <= 0 {
		width = defaultScanWidth
	}
	limit := len(fields)
	if limit > width+1 {
		limit = width + 1
	}
	qtyIdx := -1
	for i := 1; i < limit; i++ {
		if locale.IsInteger(fields[i]) {
			qtyIdx = i
			break
		}
	}
	if qtyIdx < 0 {
		return entity.SalesLine{}, errNotCandidate
	}
	if qtyIdx+1 >= len(fields) || !locale.IsDecimalComma(fields[qtyIdx+1]) {
		return entity.SalesLine{}, fmt.Errorf("sin importe junto a la cantidad (columna %d)", qtyIdx+1)
	}

	name := fields[0]
	for j := qtyIdx - 1; j > 0; j-- {
		if fields[j] != "" && !locale.IsNumeric(fields[j]) {
			name = fields[j]
			break
		}
	}
	if isTotalName(name) {
		return entity.SalesLine{}, errNotCandidate
	}
	return buildLine(name, fields[qtyIdx], fields[qtyIdx+1])
}

// ShareColumnMatcher patrón estricto: nombre;0;cantidad;importe;porcentaje%.
type ShareColumnMatcher struct{}

func (ShareColumnMatcher) Name() string { return "share_column" }

func (ShareColumnMatcher) Match(fields []string) (entity.SalesLine, error) {
	if len(fields) < 5 || fields[1] != "0" || !strings.HasSuffix(fields[4], "%") {
		return entity.SalesLine{}, errNotCandidate
	}
	if fields[0] == "" {
		return entity.SalesLine{}, errors.New("nombre de producto vacío")
	}
	if isTotalName(fields[0]) {
		return entity.SalesLine{}, errNotCandidate
	}
	return buildLine(fields[0], fields[2], fields[3])
}

func buildLine(name, qtyField, revenueField string) (entity.SalesLine, error) {
	qty, err := strconv.Atoi(strings.TrimSpace(qtyField))
	if err != nil || qty < 0 {
		return entity.SalesLine{}, fmt.Errorf("cantidad inválida %q", qtyField)
	}
	revenue, err := locale.Parse(revenueField)
	if err != nil {
		return entity.SalesLine{}, fmt.Errorf("importe inválido %q", revenueField)
	}
	if revenue.IsNegative() {
		return entity.SalesLine{}, fmt.Errorf("importe negativo %q", revenueField)
	}
	return entity.SalesLine{ProductName: name, Quantity: qty, Revenue: revenue}, nil
}
