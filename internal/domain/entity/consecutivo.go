package entity

import "time"

// ConsecutivoFactura es la fila única que guarda el último número de factura
// consumido. Estrictamente creciente; solo el flujo de creación de ventas la
// modifica, dentro de la misma transacción que guarda la factura.
type ConsecutivoFactura struct {
	ID           string
	UltimoNumero int64
	UpdatedAt    time.Time
}
