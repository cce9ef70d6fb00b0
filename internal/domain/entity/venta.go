package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Monedas y formas de pago de una venta.
const (
	MonedaCordoba = "CORDOBA"
	MonedaDolar   = "DOLAR"

	TipoPagoContado = "CONTADO"
	TipoPagoCredito = "CREDITO"
)

// Venta representa la cabecera de una factura de venta.
//
// NumeroFactura y NumeroFacturaFin delimitan el rango de consecutivos asignado
// (una factura con más de una página consume un número por página). Son nil
// hasta que el guardado confirmado asigna el rango; una reimpresión nunca
// consume números nuevos.
type Venta struct {
	ID               string
	ClienteID        string
	NumeroFactura    *int64
	NumeroFacturaFin *int64
	Moneda           string // CORDOBA o DOLAR
	TipoPago         string // CONTADO o CREDITO
	TipoCambioValor  decimal.Decimal
	TotalCordoba     decimal.Decimal
	TotalDolar       decimal.Decimal
	Observacion      string
	Usuario          string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// VentaDetalle es una línea de la factura. Cada línea confirmada contra un
// artículo con stock corresponde 1:1 con un Movimiento de salida creado en la
// misma transacción que la venta.
type VentaDetalle struct {
	ID                    string
	VentaID               string
	InventarioItemID      string
	Cantidad              int64
	PrecioUnitarioCordoba decimal.Decimal
	SubtotalCordoba       decimal.Decimal
}
