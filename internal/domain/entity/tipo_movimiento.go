package entity

// Códigos de tipo de movimiento sembrados por migración.
const (
	TipoMovCompra            = "COMPRA"             // entrada por compra a proveedor
	TipoMovVenta             = "VENTA"              // salida por factura de venta
	TipoMovDevolucionCliente = "DEVOLUCION_CLIENTE" // entrada por nota de crédito
	TipoMovAjusteEntrada     = "AJUSTE_ENTRADA"
	TipoMovAjusteSalida      = "AJUSTE_SALIDA"
	TipoMovArmado            = "ARMADO"  // entrada del producto armado
	TipoMovDesarme           = "DESARME" // salida del producto desarmado
	TipoMovCambioEntrada     = "CAMBIO_ENTRADA"
	TipoMovCambioSalida      = "CAMBIO_SALIDA"
)

// TipoMovimiento es dato de catálogo inmutable: declara si un movimiento afecta
// el stock y en qué dirección. EsEntrada solo tiene significado si AfectaStock.
type TipoMovimiento struct {
	ID          string
	Codigo      string
	Nombre      string
	AfectaStock bool
	EsEntrada   bool
}
