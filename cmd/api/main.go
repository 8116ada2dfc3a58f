package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	appanalytics "github.com/jhoicas/Barkeeper-api/internal/application/analytics"
	appinventory "github.com/jhoicas/Barkeeper-api/internal/application/inventory"
	"github.com/jhoicas/Barkeeper-api/internal/domain/salesreport"
	"github.com/jhoicas/Barkeeper-api/internal/infrastructure/csvexport"
	"github.com/jhoicas/Barkeeper-api/internal/infrastructure/csvimport"
	"github.com/jhoicas/Barkeeper-api/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/Barkeeper-api/internal/infrastructure/pdf"
	httpRouter "github.com/jhoicas/Barkeeper-api/internal/interfaces/http"
	"github.com/jhoicas/Barkeeper-api/pkg/config"
	"github.com/jhoicas/Barkeeper-api/pkg/logger"
	"github.com/jhoicas/Barkeeper-api/pkg/metrics"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Int("low_stock_threshold", cfg.Bar.LowStockThreshold).
		Msg("iniciando aplicación")

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	importMetrics := metrics.NewImportMetrics(reg)

	store := memory.NewSessionStore()
	parser := salesreport.NewParser(salesreport.WithMinDataRow(cfg.Bar.ReportMinDataRow))

	barUC := appinventory.NewBarUseCase(
		store, csvimport.NewReader(), parser,
		cfg.Bar.LowStockThreshold, log, importMetrics,
	)

	// Lista de compras: CSV para Excel y PDF imprimible
	shoppingUC := appinventory.NewShoppingListUseCase(
		store,
		csvexport.NewShoppingListWriter(cfg.Bar.BottleSizeML),
		infrapdf.NewMarotoPDFGenerator(cfg.App.Name),
		cfg.Bar.BottleSizeML, cfg.Bar.LowStockThreshold,
	)
	dashboardUC := appanalytics.NewDashboardUseCase(store)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		BodyLimit:    cfg.HTTP.BodyLimitBytes(),
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name, "sessions": store.Len()})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		BarUC:          barUC,
		ShoppingListUC: shoppingUC,
		DashboardUC:    dashboardUC,
		Metrics:        promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
