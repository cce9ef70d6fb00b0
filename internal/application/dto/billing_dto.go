package dto

import "github.com/shopspring/decimal"

// CrearVentaRequest body para POST /api/ventas.
// NumeroInicial permite fijar manualmente el primer número de factura;
// debe ser mayor que el último consumido o la venta se rechaza.
type CrearVentaRequest struct {
	ClienteID     string              `json:"cliente_id"`
	Moneda        string              `json:"moneda"`    // CORDOBA o DOLAR
	TipoPago      string              `json:"tipo_pago"` // CONTADO o CREDITO
	NumeroInicial *int64              `json:"numero_inicial,omitempty"`
	Observacion   string              `json:"observacion,omitempty"`
	Detalles      []VentaLineaRequest `json:"detalles"`
}

// VentaLineaRequest línea de una venta. Precio en cero usa el precio sugerido
// del artículo.
type VentaLineaRequest struct {
	InventarioItemID      string          `json:"inventario_item_id"`
	Cantidad              int64           `json:"cantidad"`
	PrecioUnitarioCordoba decimal.Decimal `json:"precio_unitario_cordoba"`
}

// VentaResponse representa una venta con su rango de consecutivos asignado.
type VentaResponse struct {
	ID               string                 `json:"id"`
	ClienteID        string                 `json:"cliente_id"`
	ClienteNombre    string                 `json:"cliente_nombre,omitempty"`
	NumeroFactura    *int64                 `json:"numero_factura"`
	NumeroFacturaFin *int64                 `json:"numero_factura_fin"`
	Paginas          int                    `json:"paginas"`
	Moneda           string                 `json:"moneda"`
	TipoPago         string                 `json:"tipo_pago"`
	TipoCambio       decimal.Decimal        `json:"tipo_cambio"`
	TotalCordoba     decimal.Decimal        `json:"total_cordoba"`
	TotalDolar       decimal.Decimal        `json:"total_dolar"`
	Fecha            string                 `json:"fecha"`
	Detalles         []VentaDetalleResponse `json:"detalles"`
}

// VentaDetalleResponse línea de una venta en respuestas.
type VentaDetalleResponse struct {
	ID                    string          `json:"id"`
	InventarioItemID      string          `json:"inventario_item_id"`
	Cantidad              int64           `json:"cantidad"`
	PrecioUnitarioCordoba decimal.Decimal `json:"precio_unitario_cordoba"`
	SubtotalCordoba       decimal.Decimal `json:"subtotal_cordoba"`
}

// DevolucionRequest body para POST /api/devoluciones.
type DevolucionRequest struct {
	VentaID     string                   `json:"venta_id"`
	Observacion string                   `json:"observacion,omitempty"`
	Detalles    []DevolucionLineaRequest `json:"detalles"`
}

// DevolucionLineaRequest línea devuelta. Precio en cero usa el precio de la
// línea vendida.
type DevolucionLineaRequest struct {
	InventarioItemID      string          `json:"inventario_item_id"`
	Cantidad              int64           `json:"cantidad"`
	PrecioUnitarioCordoba decimal.Decimal `json:"precio_unitario_cordoba"`
}

// DevolucionResponse representa una nota de crédito confirmada.
type DevolucionResponse struct {
	ID           string                      `json:"id"`
	VentaID      string                      `json:"venta_id"`
	Estado       string                      `json:"estado"`
	TipoCambio   decimal.Decimal             `json:"tipo_cambio"`
	TotalCordoba decimal.Decimal             `json:"total_cordoba"`
	Fecha        string                      `json:"fecha"`
	Detalles     []DevolucionDetalleResponse `json:"detalles"`
}

// DevolucionDetalleResponse línea de una devolución en respuestas.
type DevolucionDetalleResponse struct {
	ID                    string          `json:"id"`
	InventarioItemID      string          `json:"inventario_item_id"`
	Cantidad              int64           `json:"cantidad"`
	PrecioUnitarioCordoba decimal.Decimal `json:"precio_unitario_cordoba"`
}

// RegistrarTipoCambioRequest body para POST /api/tipos-cambio.
type RegistrarTipoCambioRequest struct {
	Fecha string          `json:"fecha"` // YYYY-MM-DD; vacío = hoy
	Valor decimal.Decimal `json:"valor"`
}

// TipoCambioResponse tipo de cambio registrado.
type TipoCambioResponse struct {
	ID    string          `json:"id"`
	Fecha string          `json:"fecha"`
	Valor decimal.Decimal `json:"valor"`
}

// CrearClienteRequest body para POST /api/clientes.
type CrearClienteRequest struct {
	Nombre    string `json:"nombre"`
	Cedula    string `json:"cedula,omitempty"`
	Telefono  string `json:"telefono,omitempty"`
	Direccion string `json:"direccion,omitempty"`
}

// ClienteResponse cliente en respuestas HTTP.
type ClienteResponse struct {
	ID        string `json:"id"`
	Nombre    string `json:"nombre"`
	Cedula    string `json:"cedula,omitempty"`
	Telefono  string `json:"telefono,omitempty"`
	Direccion string `json:"direccion,omitempty"`
}
