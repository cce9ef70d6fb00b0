package billing

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ncastellon/comercial-api/internal/domain/entity"
	"github.com/ncastellon/comercial-api/internal/domain/repository"
)

// BillingTxRunner ejecuta una función dentro de una transacción que incluye
// los repositorios de inventario y facturación.
type BillingTxRunner interface {
	RunVenta(ctx context.Context, fn func(
		movRepo repository.MovimientoRepository,
		invRepo repository.InventarioRepository,
		ventaRepo repository.VentaRepository,
		consRepo repository.ConsecutivoRepository,
	) error) error

	RunDevolucion(ctx context.Context, fn func(
		movRepo repository.MovimientoRepository,
		invRepo repository.InventarioRepository,
		ventaRepo repository.VentaRepository,
		devRepo repository.DevolucionRepository,
	) error) error
}

// LedgerEnTx integra facturación y devoluciones con el libro de movimientos:
// crea un movimiento usando los repositorios del caller (misma transacción).
// Si retorna error (ej: ErrStockInsuficiente) el caller debe hacer rollback.
type LedgerEnTx interface {
	RegistrarEnTx(
		ctx context.Context,
		movRepo repository.MovimientoRepository,
		invRepo repository.InventarioRepository,
		tipo *entity.TipoMovimiento,
		itemID, usuario, referenciaID, observacion string,
		cantidad int64,
		costoUnitarioDolar decimal.Decimal,
		tipoCambio decimal.Decimal,
		now time.Time,
	) (*entity.Movimiento, error)
}
