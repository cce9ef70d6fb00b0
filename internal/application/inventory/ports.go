package inventory

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/ncastellon/comercial-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad para el libro de
// movimientos: el delta de stock y la fila del movimiento se escriben juntos o
// no se escriben.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.MovimientoRepository,
		invRepo repository.InventarioRepository,
	) error) error
}

// TipoCambioProvider entrega el tipo de cambio córdoba/dólar vigente al
// momento de registrar un movimiento. Se lee una sola vez por operación y se
// congela en el registro.
type TipoCambioProvider interface {
	Vigente(ctx context.Context) (decimal.Decimal, error)
}
