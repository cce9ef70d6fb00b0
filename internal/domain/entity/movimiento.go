package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Movimiento es una entrada del libro de inventario: un cambio tipado y con
// signo sobre el stock de un artículo, registrado de forma permanente.
//
// TipoCambioValor es el tipo de cambio córdoba/dólar congelado al momento de
// crear el movimiento; CostoUnitarioCordoba se deriva una sola vez como
// CostoUnitarioDolar * TipoCambioValor y nunca se recalcula con tasas
// posteriores.
type Movimiento struct {
	ID                   string
	InventarioItemID     string
	TipoMovimientoID     string
	ReferenciaID         string // venta o devolución que originó el movimiento, si aplica
	Cantidad             int64  // siempre positiva; el signo lo da el tipo
	Observacion          string
	Usuario              string
	TipoCambioValor      decimal.Decimal
	CostoUnitarioDolar   decimal.Decimal
	CostoUnitarioCordoba decimal.Decimal
	CreatedAt            time.Time
	UpdatedAt            time.Time
}
