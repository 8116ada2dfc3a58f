package salesreport

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/jhoicas/Barkeeper-api/internal/domain"
	"github.com/jhoicas/Barkeeper-api/internal/domain/entity"
)

const (
	dateLine     = 1
	dateField    = 2
	reportLayout = "02.01.2006"
	isoLayout    = "2006-01-02"

	// La primera línea de datos está dos filas debajo del título (título + cabecera de columnas).
	sectionBodyOffset = 2
)

var (
	sectionTitles = []string{"Produkte", "Products"}
	totalMarkers  = []string{"Total", "Gesamt", "Summe"}

	// Secciones que el exportador escribe después de la lista de productos.
	otherSections = []string{
		"Warengruppen", "Zahlungsarten", "Kategorien", "Steuern", "Stornos", "Rabatte", "Bediener",
		"Product groups", "Payment methods", "Categories", "Taxes",
	}
)

// SkippedLine línea descartada por el matcher ganador (o por el primero, si ninguno ganó).
type SkippedLine struct {
	Line    int    `json:"line"` // 1-based
	Content string `json:"content"`
	Reason  string `json:"reason"`
}

// Result salida del parser: el registro de ventas más las anomalías encontradas.
type Result struct {
	Record       *entity.SalesRecord
	Strategy     string // matcher que produjo los productos; vacío si ninguno
	SectionFound bool
	Skipped      []SkippedLine
}

// Parser parser del reporte diario. Sin estado entre llamadas: es seguro reutilizarlo.
// Con título de sección se recorre solo el bloque de productos: termina en la primera fila
// vacía tras los datos, en una fila de total o en el título de la sección siguiente.
type Parser struct {
	strategies []Strategy
	minDataRow int
}

// Option configura el Parser.
type Option func(*Parser)

// WithMinDataRow fija la fila (0-based) antes de la cual nunca se interpretan datos.
// Por defecto es 0: el único límite inferior es entonces la línea siguiente a la cabecera
// de la sección de productos (o el inicio del documento si no hay título).
func WithMinDataRow(row int) Option {
	return func(p *Parser) {
		if row > 0 {
			p.minDataRow = row
		}
	}
}

// WithStrategies reemplaza la lista ordenada de estrategias.
func WithStrategies(s ...Strategy) Option {
	return func(p *Parser) {
		if len(s) > 0 {
			p.strategies = s
		}
	}
}

// NewParser construye el parser con las estrategias por defecto.
func NewParser(opts ...Option) *Parser {
	p := &Parser{strategies: DefaultStrategies()}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse interpreta el contenido completo del reporte.
// Solo devuelve error si el contenido es ilegible (domain.ErrUnreadableReport).
func (p *Parser) Parse(raw []byte) (*Result, error) {
	text, err := decode(raw)
	if err != nil {
		return nil, err
	}
	lines := splitLines(text)

	record := &entity.SalesRecord{
		ReportDate: extractDate(lines),
		TotalSales: decimal.Zero,
		Products:   []entity.SalesLine{},
	}
	res := &Result{Record: record}

	sectionStart, found := locateSection(lines)
	res.SectionFound = found
	end := len(lines)
	if found {
		end = sectionEnd(lines, sectionStart)
	}

	var firstSkipped []SkippedLine
	tried := false
	for _, s := range p.strategies {
		start := p.minDataRow
		if found {
			start = max(sectionStart, p.minDataRow)
		} else if s.RequiresSection {
			continue
		}

		products, skipped := scan(lines, start, end, s.Matcher)
		if !tried {
			firstSkipped = skipped
			tried = true
		}
		if len(products) == 0 {
			continue
		}
		for _, pl := range products {
			record.Products = append(record.Products, pl)
			record.TotalSales = record.TotalSales.Add(pl.Revenue)
		}
		res.Strategy = s.Matcher.Name()
		res.Skipped = skipped
		return res, nil
	}
	res.Skipped = firstSkipped
	return res, nil
}

func scan(lines []string, start, end int, m LineMatcher) ([]entity.SalesLine, []SkippedLine) {
	var products []entity.SalesLine
	var skipped []SkippedLine
	for i := start; i < end; i++ {
		line, err := m.Match(splitFields(lines[i]))
		if err != nil {
			if !errors.Is(err, errNotCandidate) {
				skipped = append(skipped, SkippedLine{Line: i + 1, Content: lines[i], Reason: err.Error()})
			}
			continue
		}
		products = append(products, line)
	}
	return products, skipped
}

// locateSection devuelve el índice de la primera línea de datos de la sección de productos.
// Toma el primer título encontrado de arriba hacia abajo.
func locateSection(lines []string) (int, bool) {
	for i, line := range lines {
		if isSectionMarker(line) {
			return i + sectionBodyOffset, true
		}
	}
	return 0, false
}

// sectionEnd índice (exclusivo) donde termina el bloque de productos que empieza en start.
// Las filas vacías iniciales se saltan; la primera vacía después de datos cierra el bloque.
func sectionEnd(lines []string, start int) int {
	seenData := false
	for i := start; i < len(lines); i++ {
		fields := splitFields(lines[i])
		if isBlank(fields) {
			if seenData {
				return i
			}
			continue
		}
		if isSectionMarker(lines[i]) || isOtherSection(fields) || isTotalName(fields[0]) {
			return i
		}
		seenData = true
	}
	return len(lines)
}

func isBlank(fields []string) bool {
	for _, f := range fields {
		if f != "" {
			return false
		}
	}
	return true
}

func isOtherSection(fields []string) bool {
	for _, title := range otherSections {
		if fields[0] == title {
			return true
		}
	}
	return false
}

// isTotalName indica si el campo es una etiqueta de total ("Summe", "Gesamt:", "TOTAL").
func isTotalName(field string) bool {
	f := strings.TrimSuffix(strings.TrimSpace(field), ":")
	for _, m := range totalMarkers {
		if strings.EqualFold(f, m) {
			return true
		}
	}
	return false
}

func isSectionMarker(line string) bool {
	fields := splitFields(line)
	if len(fields) == 0 {
		return false
	}
	for _, title := range sectionTitles {
		if fields[0] == title {
			return true
		}
		if strings.HasPrefix(strings.TrimSpace(line), title) && hasTotalMarker(fields) {
			return true
		}
	}
	return false
}

func hasTotalMarker(fields []string) bool {
	for i := len(fields) - 1; i > 0; i-- {
		if fields[i] == "" {
			continue
		}
		for _, m := range totalMarkers {
			if fields[i] == m {
				return true
			}
		}
		return false
	}
	return false
}

// extractDate lee la fecha de la línea 1, campo 2 (dd.mm.yyyy). Si no se puede interpretar
// devuelve el texto original del campo.
func extractDate(lines []string) string {
	if len(lines) <= dateLine {
		return entity.UnknownReportDate
	}
	fields := splitFields(lines[dateLine])
	if len(fields) <= dateField {
		return entity.UnknownReportDate
	}
	raw := fields[dateField]
	t, err := time.Parse(reportLayout, raw)
	if err != nil {
		return raw
	}
	return t.Format(isoLayout)
}

func decode(raw []byte) (string, error) {
	if !utf8.Valid(raw) {
		return "", fmt.Errorf("%w: el contenido no es UTF-8 válido", domain.ErrUnreadableReport)
	}
	out, _, err := transform.Bytes(unicode.UTF8BOM.NewDecoder(), raw)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrUnreadableReport, err)
	}
	return string(out), nil
}

func splitLines(text string) []string {
	lines := strings.Split(text, "\n")
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], "\r")
	}
	return lines
}

func splitFields(line string) []string {
	fields := strings.Split(line, ";")
	for i, f := range fields {
		fields[i] = strings.Trim(strings.TrimSpace(f), `"`)
	}
	return fields
}
