package dto

import "github.com/shopspring/decimal"

// RegistrarMovimientoRequest body para POST /api/movimientos.
type RegistrarMovimientoRequest struct {
	InventarioItemID   string          `json:"inventario_item_id"`
	TipoMovimientoID   string          `json:"tipo_movimiento_id"`
	Cantidad           int64           `json:"cantidad"`
	CostoUnitarioDolar decimal.Decimal `json:"costo_unitario_dolar"`
	Observacion        string          `json:"observacion,omitempty"`
}

// RevisarMovimientoRequest body para PUT /api/movimientos/:id.
// Los campos omitidos conservan el valor original.
type RevisarMovimientoRequest struct {
	Cantidad           int64            `json:"cantidad"`
	TipoMovimientoID   *string          `json:"tipo_movimiento_id,omitempty"`
	CostoUnitarioDolar *decimal.Decimal `json:"costo_unitario_dolar,omitempty"`
	Observacion        *string          `json:"observacion,omitempty"`
}

// MovimientoResponse representa un movimiento del libro en respuestas HTTP.
type MovimientoResponse struct {
	ID                   string          `json:"id"`
	InventarioItemID     string          `json:"inventario_item_id"`
	TipoMovimientoID     string          `json:"tipo_movimiento_id"`
	ReferenciaID         string          `json:"referencia_id,omitempty"`
	Cantidad             int64           `json:"cantidad"`
	Observacion          string          `json:"observacion,omitempty"`
	Usuario              string          `json:"usuario"`
	TipoCambio           decimal.Decimal `json:"tipo_cambio"`
	CostoUnitarioDolar   decimal.Decimal `json:"costo_unitario_dolar"`
	CostoUnitarioCordoba decimal.Decimal `json:"costo_unitario_cordoba"`
	Fecha                string          `json:"fecha"`
}

// CrearArticuloRequest body para POST /api/articulos.
type CrearArticuloRequest struct {
	Codigo                     string          `json:"codigo"`
	Nombre                     string          `json:"nombre"`
	Descripcion                string          `json:"descripcion,omitempty"`
	PrecioVentaSugeridoCordoba decimal.Decimal `json:"precio_venta_sugerido_cordoba"`
	PrecioVentaSugeridoDolar   decimal.Decimal `json:"precio_venta_sugerido_dolar"`
}

// ArticuloResponse representa un artículo del catálogo en respuestas HTTP.
type ArticuloResponse struct {
	ID                         string          `json:"id"`
	Codigo                     string          `json:"codigo"`
	Nombre                     string          `json:"nombre"`
	Descripcion                string          `json:"descripcion,omitempty"`
	StockActual                int64           `json:"stock_actual"`
	CostoPromedioCordoba       decimal.Decimal `json:"costo_promedio_cordoba"`
	CostoPromedioDolar         decimal.Decimal `json:"costo_promedio_dolar"`
	PrecioVentaSugeridoCordoba decimal.Decimal `json:"precio_venta_sugerido_cordoba"`
	PrecioVentaSugeridoDolar   decimal.Decimal `json:"precio_venta_sugerido_dolar"`
}
