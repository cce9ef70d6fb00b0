package domain

import "errors"

// Errores de dominio (sin dependencias externas). Cada uno representa un
// estado que el libro de inventario no debe alcanzar: la operación completa se
// revierte y el error llega estructurado al llamador.
var (
	ErrNotFound            = errors.New("recurso no encontrado")
	ErrInvalidInput        = errors.New("entrada inválida")
	ErrDuplicate           = errors.New("recurso duplicado")
	ErrUnauthorized        = errors.New("no autorizado")
	ErrStockInsuficiente   = errors.New("stock insuficiente")
	ErrDevolucionExcede    = errors.New("la devolución excede la cantidad vendida pendiente")
	ErrTipoMovDesconocido  = errors.New("tipo de movimiento desconocido")
	ErrArticuloDesconocido = errors.New("artículo de inventario desconocido")
	ErrVentaDesconocida    = errors.New("venta no encontrada")

	// ErrConflicto indica una falla de serialización por acceso concurrente
	// (lock no adquirido dentro del tiempo límite). Es el único error que el
	// llamador puede reintentar tal cual.
	ErrConflicto = errors.New("conflicto de concurrencia, reintente la operación")

	// ErrRangoSolapado indica que un número de factura manual colisiona con un
	// rango ya emitido.
	ErrRangoSolapado = errors.New("el número de factura se solapa con un rango ya emitido")
)
