package metrics

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestImportMetrics_Contadores(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewImportMetrics(reg)

	m.ObserveReport("column_scan", 2)
	m.ObserveReport("", 1)
	m.ObserveDepletion(3)
	m.SetLowStock(4)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.reports.WithLabelValues("column_scan")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.reports.WithLabelValues("none")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.skippedLines))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.missing))
	assert.Equal(t, 4.0, testutil.ToFloat64(m.lowStock))
}

func TestImportMetrics_LowStockEsDelUltimoRecalculo(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewImportMetrics(reg)

	m.SetLowStock(5)
	m.SetLowStock(2)

	expected := `
# HELP inventory_low_stock_warnings Low stock warnings in the last recomputation of any session.
# TYPE inventory_low_stock_warnings gauge
inventory_low_stock_warnings 2
`
	assert.NoError(t, testutil.CollectAndCompare(m.lowStock, strings.NewReader(expected), "inventory_low_stock_warnings"))
}

func TestImportMetrics_NilEsSeguro(t *testing.T) {
	var m *ImportMetrics
	assert.NotPanics(t, func() {
		m.ObserveReport("x", 1)
		m.IncUnreadable()
		m.ObserveDepletion(1)
		m.SetLowStock(1)
	})
	noReg := NewImportMetrics(nil)
	assert.NotPanics(t, func() { noReg.ObserveDepletion(1) })
}
