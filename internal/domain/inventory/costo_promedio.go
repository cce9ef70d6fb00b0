package inventory

import "github.com/shopspring/decimal"

// CostoPromedio implementa la lógica de costo promedio ponderado (servicio de dominio).
// NuevoCosto = ((StockActual * CostoActual) + (CantEntrada * CostoEntrada)) / (StockActual + CantEntrada)
func CostoPromedio(stockActual int64, costoActual decimal.Decimal, cantEntrada int64, costoEntrada decimal.Decimal) decimal.Decimal {
	stock := decimal.NewFromInt(stockActual)
	cant := decimal.NewFromInt(cantEntrada)
	sum := stock.Add(cant)
	if sum.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	num := stock.Mul(costoActual).Add(cant.Mul(costoEntrada))
	return num.Div(sum)
}
