package http

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"

	appanalytics "github.com/jhoicas/Barkeeper-api/internal/application/analytics"
	appinventory "github.com/jhoicas/Barkeeper-api/internal/application/inventory"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	BarUC          *appinventory.BarUseCase
	ShoppingListUC *appinventory.ShoppingListUseCase
	DashboardUC    *appanalytics.DashboardUseCase
	Metrics        http.Handler // opcional: se monta en /metrics
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	if deps.Metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(deps.Metrics))
	}

	api := app.Group("/api")

	sessionHandler := NewSessionHandler(deps.BarUC)
	api.Post("/sessions", sessionHandler.Create)

	// Rutas de una sesión existente
	session := api.Group("/sessions/:session_id", SessionMiddleware(deps.BarUC))
	session.Delete("/", sessionHandler.Delete)

	inventoryHandler := NewInventoryHandler(deps.BarUC)
	session.Get("/inventory", inventoryHandler.Get)
	session.Put("/inventory", inventoryHandler.Update)
	session.Post("/inventory/import", inventoryHandler.Import)

	recipeHandler := NewRecipeHandler(deps.BarUC)
	session.Get("/recipes", recipeHandler.Get)
	session.Put("/recipes", recipeHandler.Update)
	session.Post("/recipes", recipeHandler.AddDrink)
	session.Post("/recipes/import", recipeHandler.Import)

	salesHandler := NewSalesHandler(deps.BarUC)
	session.Post("/sales/import", salesHandler.Import)
	session.Post("/sales/apply", salesHandler.Apply)

	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	session.Get("/dashboard", dashboardHandler.GetSummary)

	shoppingHandler := NewShoppingListHandler(deps.ShoppingListUC)
	session.Get("/shopping-list", shoppingHandler.Get)
	session.Get("/shopping-list.csv", shoppingHandler.CSV)
	session.Get("/shopping-list.pdf", shoppingHandler.PDF)
}
