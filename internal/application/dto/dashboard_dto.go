package dto

import "github.com/jhoicas/Barkeeper-api/internal/domain/entity"

// DashboardDTO respuesta de GET /api/sessions/:session_id/dashboard.
// Las listas vienen ordenadas para mostrar: alertas y disponibilidad de menor a mayor
// porciones, costos de mayor a menor.
type DashboardDTO struct {
	DataLoaded         bool                       `json:"data_loaded"` // inventario y recetas cargados
	TotalIngredients   int                        `json:"total_ingredients"`
	TotalRecipes       int                        `json:"total_recipes"`
	MostExpensiveDrink *entity.DrinkCost          `json:"most_expensive_drink,omitempty"`
	LowStockWarnings   []entity.LowStockWarning   `json:"low_stock_warnings"`
	AvailableDrinks    []entity.DrinkAvailability `json:"available_drinks"`
	DrinkCosts         []entity.DrinkCost         `json:"drink_costs"`
	Sales              *SalesOverviewDTO          `json:"sales,omitempty"`
}

// SalesOverviewDTO widget de ventas: último reporte importado.
type SalesOverviewDTO struct {
	ReportDate string              `json:"report_date"`
	Summary    entity.SalesSummary `json:"summary"`
	Applied    bool                `json:"applied"` // ya descontado del inventario
}
