package billing

// LineasPorPaginaDefault es la cantidad de líneas que caben en una página
// impresa de factura. Determina cuántos números consecutivos consume una
// factura: una factura de más de una página consume un número por página.
const LineasPorPaginaDefault = 15

// RangoFactura es el bloque contiguo de números de factura asignado a una venta.
type RangoFactura struct {
	Primero int64
	Ultimo  int64
}

// Paginas devuelve ceil(lineas / lineasPorPagina), mínimo 1.
func Paginas(lineas, lineasPorPagina int) int {
	if lineasPorPagina <= 0 {
		lineasPorPagina = LineasPorPaginaDefault
	}
	if lineas <= 0 {
		return 1
	}
	return (lineas + lineasPorPagina - 1) / lineasPorPagina
}

// rangoDesde calcula el rango que sigue al último número consumido.
func rangoDesde(ultimoNumero int64, paginas int) RangoFactura {
	primero := ultimoNumero + 1
	return RangoFactura{Primero: primero, Ultimo: primero + int64(paginas) - 1}
}

// rangoManual calcula el rango a partir de un número inicial elegido por el usuario.
func rangoManual(numeroInicial int64, paginas int) RangoFactura {
	return RangoFactura{Primero: numeroInicial, Ultimo: numeroInicial + int64(paginas) - 1}
}
