// Package inventory contiene los casos de uso de la sesión de trabajo del bar:
// carga de inventario y recetas, importación del reporte de ventas y descuento de stock.
package inventory

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Barkeeper-api/internal/domain"
	"github.com/jhoicas/Barkeeper-api/internal/domain/entity"
	engine "github.com/jhoicas/Barkeeper-api/internal/domain/inventory"
	"github.com/jhoicas/Barkeeper-api/internal/domain/sales"
	"github.com/jhoicas/Barkeeper-api/internal/domain/salesreport"
	"github.com/jhoicas/Barkeeper-api/pkg/logger"
	"github.com/jhoicas/Barkeeper-api/pkg/metrics"
)

// BarUseCase orquesta el estado de la sesión. Toda mutación pasa por SessionStore.Update
// y termina recalculando los datos derivados.
type BarUseCase struct {
	store     SessionStore
	reader    MasterDataReader
	parser    *salesreport.Parser
	threshold int
	log       *logger.Logger
	metrics   *metrics.ImportMetrics
	now       func() time.Time
}

// NewBarUseCase construye el caso de uso. threshold <= 0 usa el umbral por defecto (15 porciones).
// log y m pueden ser nil.
func NewBarUseCase(
	store SessionStore,
	reader MasterDataReader,
	parser *salesreport.Parser,
	threshold int,
	log *logger.Logger,
	m *metrics.ImportMetrics,
) *BarUseCase {
	if parser == nil {
		parser = salesreport.NewParser()
	}
	if threshold <= 0 {
		threshold = engine.DefaultLowStockThreshold
	}
	if log == nil {
		log = logger.Nop()
	}
	return &BarUseCase{
		store:     store,
		reader:    reader,
		parser:    parser,
		threshold: threshold,
		log:       log,
		metrics:   m,
		now:       time.Now,
	}
}

// Threshold umbral de porciones para las alertas de stock bajo.
func (uc *BarUseCase) Threshold() int { return uc.threshold }

// CreateSession abre una sesión vacía y devuelve su ID.
func (uc *BarUseCase) CreateSession(ctx context.Context) (string, error) {
	id := uuid.NewString()
	if err := uc.store.Create(ctx, id, NewBarState(uc.now())); err != nil {
		return "", err
	}
	uc.log.WithSession(id).Info().Msg("sesión creada")
	return id, nil
}

// ResetSession descarta la sesión y todo su estado.
func (uc *BarUseCase) ResetSession(ctx context.Context, sessionID string) error {
	if err := uc.store.Delete(ctx, sessionID); err != nil {
		return err
	}
	uc.log.WithSession(sessionID).Info().Msg("sesión eliminada")
	return nil
}

// State estado actual de la sesión.
func (uc *BarUseCase) State(ctx context.Context, sessionID string) (*BarState, error) {
	return uc.store.Get(ctx, sessionID)
}

// ReplaceInventory reemplaza la tabla de inventario completa.
func (uc *BarUseCase) ReplaceInventory(ctx context.Context, sessionID string, ingredients []entity.Ingredient) (*BarState, error) {
	return uc.store.Update(ctx, sessionID, func(cur *BarState) (*BarState, error) {
		next := cur.next(uc.now())
		next.Inventory = nonNilIngredients(ingredients)
		next.InventoryLoaded = true
		uc.recompute(next)
		uc.log.WithSession(sessionID).Info().Int("ingredients", len(next.Inventory)).Msg("inventario actualizado")
		return next, nil
	})
}

// ReplaceRecipes reemplaza la tabla de recetas completa.
func (uc *BarUseCase) ReplaceRecipes(ctx context.Context, sessionID string, recipes []entity.RecipeLine) (*BarState, error) {
	return uc.store.Update(ctx, sessionID, func(cur *BarState) (*BarState, error) {
		next := cur.next(uc.now())
		next.Recipes = nonNilRecipes(recipes)
		next.RecipesLoaded = true
		uc.recompute(next)
		uc.log.WithSession(sessionID).Info().Int("recipe_lines", len(next.Recipes)).Msg("recetas actualizadas")
		return next, nil
	})
}

// AddDrink agrega las líneas de una bebida nueva al final de las recetas.
// Requiere inventario y recetas cargados; los ingredientes deben existir en el inventario.
func (uc *BarUseCase) AddDrink(ctx context.Context, sessionID string, lines []entity.RecipeLine) (*BarState, error) {
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: bebida sin ingredientes", domain.ErrInvalidInput)
	}
	return uc.store.Update(ctx, sessionID, func(cur *BarState) (*BarState, error) {
		if !cur.MasterDataLoaded() {
			return nil, domain.ErrMissingMasterData
		}
		idx := engine.NewIndex(nil, cur.Inventory)
		for _, l := range lines {
			if _, ok := idx.Ingredient(l.IngredientName); !ok {
				return nil, fmt.Errorf("%w: el ingrediente %q no está en el inventario", domain.ErrInvalidInput, l.IngredientName)
			}
		}
		next := cur.next(uc.now())
		recipes := make([]entity.RecipeLine, 0, len(cur.Recipes)+len(lines))
		recipes = append(recipes, cur.Recipes...)
		next.Recipes = append(recipes, lines...)
		uc.recompute(next)
		uc.log.WithSession(sessionID).Info().Str("drink", lines[0].DrinkName).Int("ingredients", len(lines)).Msg("bebida agregada")
		return next, nil
	})
}

// ImportInventoryCSV carga el inventario desde el CSV de la hoja de cálculo.
func (uc *BarUseCase) ImportInventoryCSV(ctx context.Context, sessionID string, r io.Reader) (*BarState, error) {
	ingredients, err := uc.reader.ReadInventory(r)
	if err != nil {
		return nil, err
	}
	return uc.ReplaceInventory(ctx, sessionID, ingredients)
}

// ImportRecipesCSV carga las recetas desde el CSV de la hoja de cálculo.
func (uc *BarUseCase) ImportRecipesCSV(ctx context.Context, sessionID string, r io.Reader) (*BarState, error) {
	recipes, err := uc.reader.ReadRecipes(r)
	if err != nil {
		return nil, err
	}
	return uc.ReplaceRecipes(ctx, sessionID, recipes)
}

// ImportSalesReport interpreta el reporte diario y lo deja pendiente de aplicar.
// Requiere inventario y recetas cargados. Un reporte nuevo reemplaza al anterior.
func (uc *BarUseCase) ImportSalesReport(ctx context.Context, sessionID string, raw []byte) (*BarState, error) {
	cur, err := uc.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !cur.MasterDataLoaded() {
		return nil, domain.ErrMissingMasterData
	}

	res, err := uc.parser.Parse(raw)
	if err != nil {
		uc.metrics.IncUnreadable()
		uc.log.WithSession(sessionID).Warn().Err(err).Msg("reporte de ventas ilegible")
		return nil, err
	}
	uc.metrics.ObserveReport(res.Strategy, len(res.Skipped))

	return uc.store.Update(ctx, sessionID, func(cur *BarState) (*BarState, error) {
		if !cur.MasterDataLoaded() {
			return nil, domain.ErrMissingMasterData
		}
		next := cur.next(uc.now())
		next.Sales = res.Record
		next.SalesSummary = sales.Summarize(res.Record)
		next.SalesApplied = false
		next.Skipped = res.Skipped
		next.Strategy = res.Strategy
		next.SectionFound = res.SectionFound
		l := uc.log.WithSession(sessionID)
		for _, sk := range res.Skipped {
			l.Debug().Int("line", sk.Line).Str("content", sk.Content).Str("reason", sk.Reason).Msg("línea del reporte descartada")
		}
		l.Info().
			Str("report_date", res.Record.ReportDate).
			Str("strategy", res.Strategy).
			Int("products", len(res.Record.Products)).
			Int("skipped", len(res.Skipped)).
			Msg("reporte de ventas importado")
		return next, nil
	})
}

// ApplySales descuenta del inventario el reporte importado. Un reporte solo se aplica una vez.
func (uc *BarUseCase) ApplySales(ctx context.Context, sessionID string) (*BarState, *engine.DepletionResult, error) {
	var result *engine.DepletionResult
	st, err := uc.store.Update(ctx, sessionID, func(cur *BarState) (*BarState, error) {
		if cur.Sales == nil {
			return nil, domain.ErrNoSalesImported
		}
		if cur.SalesApplied {
			return nil, fmt.Errorf("%w: el reporte del %s ya fue aplicado", domain.ErrConflict, cur.Sales.ReportDate)
		}
		if !cur.MasterDataLoaded() {
			return nil, domain.ErrMissingMasterData
		}
		res, err := engine.Deplete(cur.Inventory, cur.Recipes, cur.Sales)
		if err != nil {
			return nil, err
		}
		next := cur.next(uc.now())
		next.Inventory = res.Inventory
		next.SalesApplied = true
		uc.recompute(next)
		result = res
		return next, nil
	})
	if err != nil {
		return nil, nil, err
	}

	uc.metrics.ObserveDepletion(len(result.MissingIngredients))
	l := uc.log.WithSession(sessionID)
	if len(result.MissingIngredients) > 0 {
		l.Warn().Str("report_date", st.Sales.ReportDate).
			Strs("missing_ingredients", result.MissingIngredients).
			Msg("ventas descontadas; hay ingredientes de receta sin inventario")
	} else {
		l.Info().Str("report_date", st.Sales.ReportDate).Msg("ventas descontadas del inventario")
	}
	return st, result, nil
}

// recompute recalcula costos, disponibilidad y alertas. Sin tablas maestras el snapshot queda vacío.
func (uc *BarUseCase) recompute(st *BarState) {
	if !st.MasterDataLoaded() {
		st.Derived = Snapshot{}
		return
	}
	idx := engine.NewIndex(st.Recipes, st.Inventory)
	st.Derived = Snapshot{
		Costs:        idx.DrinkCosts(),
		Availability: idx.Availability(),
		Warnings:     idx.LowStockWarnings(uc.threshold),
	}
	uc.metrics.SetLowStock(len(st.Derived.Warnings))
}

func nonNilIngredients(in []entity.Ingredient) []entity.Ingredient {
	if in == nil {
		return []entity.Ingredient{}
	}
	return entity.CloneIngredients(in)
}

func nonNilRecipes(in []entity.RecipeLine) []entity.RecipeLine {
	out := make([]entity.RecipeLine, len(in))
	copy(out, in)
	return out
}
