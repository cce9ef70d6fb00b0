package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// TipoCambio es el tipo de cambio oficial córdoba/dólar de una fecha.
// Los registros históricos nunca se usan para recalcular movimientos: cada
// movimiento congela el valor vigente al momento de crearse.
type TipoCambio struct {
	ID        string
	Fecha     time.Time // día al que aplica (sin hora)
	Valor     decimal.Decimal
	CreatedAt time.Time
}
