// Package sales reduce un reporte de ventas a sus totales.
package sales

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Barkeeper-api/internal/domain/entity"
)

// NoneSold nombre reportado como más vendido cuando no hay productos.
const NoneSold = "None"

// Summarize total de importe, total de unidades y producto más vendido
// (primera aparición en caso de empate). Un registro vacío o nulo devuelve ceros y "None".
func Summarize(record *entity.SalesRecord) entity.SalesSummary {
	summary := entity.SalesSummary{TotalValue: decimal.Zero, MostSoldDrink: NoneSold}
	if record == nil || len(record.Products) == 0 {
		return summary
	}
	best := -1
	for i, p := range record.Products {
		summary.TotalValue = summary.TotalValue.Add(p.Revenue)
		summary.TotalQuantity += p.Quantity
		if best < 0 || p.Quantity > record.Products[best].Quantity {
			best = i
		}
	}
	summary.MostSoldDrink = record.Products[best].ProductName
	summary.MostSoldQuantity = record.Products[best].Quantity
	return summary
}
