// parse_report interpreta un reporte diario de la caja (CSV separado por punto y coma)
// e imprime el registro de ventas, el resumen y las líneas descartadas como JSON.
//
// Uso: go run ./cmd/parse_report [-latin1] [-min-row N] ruta/Tagesabschluss.csv
// Con "-" lee de la entrada estándar.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/Barkeeper-api/internal/domain/entity"
	"github.com/jhoicas/Barkeeper-api/internal/domain/sales"
	"github.com/jhoicas/Barkeeper-api/internal/domain/salesreport"
)

type output struct {
	Sales        *entity.SalesRecord       `json:"sales"`
	Summary      entity.SalesSummary       `json:"summary"`
	Strategy     string                    `json:"strategy,omitempty"`
	SectionFound bool                      `json:"section_found"`
	SkippedLines []salesreport.SkippedLine `json:"skipped_lines"`
}

func main() {
	latin1 := flag.Bool("latin1", false, "el archivo viene en ISO-8859-1 (exportación de Windows)")
	minRow := flag.Int("min-row", 0, "fila mínima (0-based) antes de la cual no se interpretan datos")
	flag.Parse()

	path := "-"
	if flag.NArg() > 0 {
		path = flag.Arg(0)
	}

	var in io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Abrir reporte: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		in = f
	}
	if *latin1 {
		in = transform.NewReader(in, charmap.ISO8859_1.NewDecoder())
	}

	raw, err := io.ReadAll(in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer reporte: %v\n", err)
		os.Exit(1)
	}

	res, err := salesreport.NewParser(salesreport.WithMinDataRow(*minRow)).Parse(raw)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Interpretar reporte: %v\n", err)
		os.Exit(1)
	}

	skipped := res.Skipped
	if skipped == nil {
		skipped = []salesreport.SkippedLine{}
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(output{
		Sales:        res.Record,
		Summary:      sales.Summarize(res.Record),
		Strategy:     res.Strategy,
		SectionFound: res.SectionFound,
		SkippedLines: skipped,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Escribir JSON: %v\n", err)
		os.Exit(1)
	}

	fmt.Fprintf(os.Stderr, "%d productos, %d líneas descartadas\n", len(res.Record.Products), len(skipped))
}
