package entity

import "github.com/shopspring/decimal"

// UnknownReportDate fecha usada cuando el reporte no trae el campo de fecha.
const UnknownReportDate = "Unknown"

// SalesLine una línea de producto vendida en el reporte diario de la caja.
type SalesLine struct {
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	Revenue     decimal.Decimal `json:"revenue"`
}

// SalesRecord resultado del parser del reporte diario de ventas.
// ReportDate es ISO (2006-01-02) o el texto original si no se pudo interpretar.
// Se construye una vez por importación y no se modifica después.
type SalesRecord struct {
	ReportDate string          `json:"report_date"`
	TotalSales decimal.Decimal `json:"total_sales"`
	Products   []SalesLine     `json:"products"`
}
