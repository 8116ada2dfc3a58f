package metrics

import (
	"strings"

	"github.com/prometheus/client_golang/prometheus"
)

// ImportMetrics contadores de importación de reportes y descuentos de inventario.
// Un *ImportMetrics nil es válido y no registra nada.
type ImportMetrics struct {
	reports      *prometheus.CounterVec
	skippedLines prometheus.Counter
	unreadable   prometheus.Counter
	depletions   prometheus.Counter
	missing      prometheus.Counter
	lowStock     prometheus.Gauge
}

// NewImportMetrics registra las métricas en el registerer indicado.
func NewImportMetrics(reg prometheus.Registerer) *ImportMetrics {
	if reg == nil {
		return &ImportMetrics{}
	}
	m := &ImportMetrics{
		reports: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "sales_reports_parsed_total",
			Help: "Sales reports parsed, by matching strategy.",
		}, []string{"strategy"}),
		skippedLines: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "sales_report_lines_skipped_total",
			Help: "Malformed product lines skipped while parsing.",
		}),
		unreadable: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "sales_reports_unreadable_total",
			Help: "Sales reports rejected as unreadable.",
		}),
		depletions: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "inventory_depletions_total",
			Help: "Sales records applied against inventory.",
		}),
		missing: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "inventory_missing_ingredients_total",
			Help: "Recipe ingredients not found in inventory during depletion.",
		}),
		lowStock: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "inventory_low_stock_warnings",
			Help: "Low stock warnings in the last recomputation of any session.",
		}),
	}
	reg.MustRegister(m.reports, m.skippedLines, m.unreadable, m.depletions, m.missing, m.lowStock)
	return m
}

// ObserveReport registra un reporte interpretado.
func (m *ImportMetrics) ObserveReport(strategy string, skipped int) {
	if m == nil || m.reports == nil {
		return
	}
	m.reports.WithLabelValues(normalizeLabel(strategy)).Inc()
	m.skippedLines.Add(float64(skipped))
}

// IncUnreadable registra un reporte ilegible.
func (m *ImportMetrics) IncUnreadable() {
	if m == nil || m.unreadable == nil {
		return
	}
	m.unreadable.Inc()
}

// ObserveDepletion registra un descuento de inventario y sus ingredientes faltantes.
func (m *ImportMetrics) ObserveDepletion(missing int) {
	if m == nil || m.depletions == nil {
		return
	}
	m.depletions.Inc()
	m.missing.Add(float64(missing))
}

// SetLowStock fija el número de alertas del último recálculo. El gauge es del proceso,
// no de la sesión: la última sesión que recalcula sobrescribe el valor.
func (m *ImportMetrics) SetLowStock(n int) {
	if m == nil || m.lowStock == nil {
		return
	}
	m.lowStock.Set(float64(n))
}

func normalizeLabel(value string) string {
	value = strings.TrimSpace(strings.ToLower(value))
	if value == "" {
		return "none"
	}
	return value
}
