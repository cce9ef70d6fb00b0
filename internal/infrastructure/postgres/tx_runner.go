package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ncastellon/comercial-api/internal/application/billing"
	"github.com/ncastellon/comercial-api/internal/application/inventory"
	"github.com/ncastellon/comercial-api/internal/domain/repository"
)

// Ensure TxRunner implements inventory.TxRunner and billing.BillingTxRunner.
var _ inventory.TxRunner = (*TxRunner)(nil)
var _ billing.BillingTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
//
// Cada transacción arranca con un lock_timeout corto: si una fila bloqueada
// (artículo o contador de consecutivos) no se libera a tiempo, Postgres
// responde 55P03 y el error se traduce a ErrConflicto para que el caller
// reintente en lugar de quedarse esperando.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

func (r *TxRunner) begin(ctx context.Context) (pgx.Tx, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	if _, err := tx.Exec(ctx, "SET LOCAL lock_timeout = '3s'"); err != nil {
		_ = tx.Rollback(ctx)
		return nil, fmt.Errorf("set lock_timeout: %w", err)
	}
	return tx, nil
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	movRepo repository.MovimientoRepository,
	invRepo repository.InventarioRepository,
) error) error {
	tx, err := r.begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	movRepo := NewMovimientoRepository(tx)
	invRepo := NewInventarioRepository(tx)

	if err := fn(movRepo, invRepo); err != nil {
		return mapLockError(err)
	}
	if err := tx.Commit(ctx); err != nil {
		return mapLockError(fmt.Errorf("commit transaction: %w", err))
	}
	return nil
}

// RunVenta inicia una transacción con los repos del flujo de facturación:
// movimientos, inventario, ventas y el contador de consecutivos.
func (r *TxRunner) RunVenta(ctx context.Context, fn func(
	movRepo repository.MovimientoRepository,
	invRepo repository.InventarioRepository,
	ventaRepo repository.VentaRepository,
	consRepo repository.ConsecutivoRepository,
) error) error {
	tx, err := r.begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	movRepo := NewMovimientoRepository(tx)
	invRepo := NewInventarioRepository(tx)
	ventaRepo := NewVentaRepository(tx)
	consRepo := NewConsecutivoRepository(tx)

	if err := fn(movRepo, invRepo, ventaRepo, consRepo); err != nil {
		return mapLockError(err)
	}
	if err := tx.Commit(ctx); err != nil {
		return mapLockError(fmt.Errorf("commit transaction: %w", err))
	}
	return nil
}

// RunDevolucion inicia una transacción con los repos del flujo de devoluciones.
func (r *TxRunner) RunDevolucion(ctx context.Context, fn func(
	movRepo repository.MovimientoRepository,
	invRepo repository.InventarioRepository,
	ventaRepo repository.VentaRepository,
	devRepo repository.DevolucionRepository,
) error) error {
	tx, err := r.begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	movRepo := NewMovimientoRepository(tx)
	invRepo := NewInventarioRepository(tx)
	ventaRepo := NewVentaRepository(tx)
	devRepo := NewDevolucionRepository(tx)

	if err := fn(movRepo, invRepo, ventaRepo, devRepo); err != nil {
		return mapLockError(err)
	}
	if err := tx.Commit(ctx); err != nil {
		return mapLockError(fmt.Errorf("commit transaction: %w", err))
	}
	return nil
}
