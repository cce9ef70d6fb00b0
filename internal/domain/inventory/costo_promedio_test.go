package inventory_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/ncastellon/comercial-api/internal/domain/inventory"
)

func TestCostoPromedio_Ponderado(t *testing.T) {
	// 10 unidades a C$20 + 10 unidades a C$30 => C$25
	nuevo := inventory.CostoPromedio(10, decimal.NewFromInt(20), 10, decimal.NewFromInt(30))
	assert.True(t, nuevo.Equal(decimal.NewFromInt(25)), "costo promedio esperado 25, obtenido %s", nuevo)
}

func TestCostoPromedio_StockCero(t *testing.T) {
	// Sin stock previo, el costo promedio es el costo de la entrada.
	nuevo := inventory.CostoPromedio(0, decimal.Zero, 5, decimal.NewFromFloat(36.62))
	assert.True(t, nuevo.Equal(decimal.NewFromFloat(36.62)))
}

func TestCostoPromedio_SumaNoPositiva(t *testing.T) {
	nuevo := inventory.CostoPromedio(0, decimal.NewFromInt(10), 0, decimal.NewFromInt(20))
	assert.True(t, nuevo.Equal(decimal.Zero))
}
