package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrSessionNotFound   = errors.New("sesión no encontrada")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrUnreadableReport  = errors.New("reporte de ventas ilegible")
	ErrMissingColumns    = errors.New("faltan columnas obligatorias")
	ErrMissingMasterData = errors.New("faltan inventario o recetas")
	ErrNoSalesImported   = errors.New("no hay ventas importadas")
	ErrConflict          = errors.New("conflicto con el estado actual")
)
