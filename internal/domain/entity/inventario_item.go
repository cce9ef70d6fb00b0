package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventarioItem representa un artículo del catálogo de inventario.
// StockActual es la proyección materializada del libro de movimientos: solo se
// modifica a través del caso de uso de movimientos, nunca directamente.
type InventarioItem struct {
	ID                         string
	Codigo                     string // código único del artículo
	Nombre                     string
	Descripcion                string
	StockActual                int64 // nunca negativo
	CostoPromedioCordoba       decimal.Decimal
	CostoPromedioDolar         decimal.Decimal
	PrecioVentaPromedioCordoba decimal.Decimal
	PrecioVentaPromedioDolar   decimal.Decimal
	PrecioVentaSugeridoCordoba decimal.Decimal
	PrecioVentaSugeridoDolar   decimal.Decimal
	CreatedAt                  time.Time
	UpdatedAt                  time.Time
}
