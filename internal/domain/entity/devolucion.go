package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una devolución. Una vez confirmada es inmutable: el sistema no
// define una transición de anulación (las devoluciones son append-only).
const (
	DevolucionEstadoBorrador   = "BORRADOR"
	DevolucionEstadoConfirmada = "CONFIRMADA"
)

// Devolucion (nota de crédito) referencia una venta original. Cada detalle
// confirmado corresponde a un Movimiento de entrada (restock) creado en la
// misma transacción que la devolución.
type Devolucion struct {
	ID              string
	VentaID         string
	Estado          string
	TipoCambioValor decimal.Decimal
	TotalCordoba    decimal.Decimal
	Observacion     string
	Usuario         string
	CreatedAt       time.Time
}

// DevolucionDetalle es una línea devuelta contra una línea de la venta
// original. Invariante: la cantidad acumulada devuelta por artículo nunca
// supera la cantidad vendida originalmente.
type DevolucionDetalle struct {
	ID                    string
	DevolucionID          string
	InventarioItemID      string
	Cantidad              int64
	PrecioUnitarioCordoba decimal.Decimal
}
