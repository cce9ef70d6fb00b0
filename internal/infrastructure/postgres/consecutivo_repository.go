package postgres

import (
	"context"
	"fmt"

	"github.com/ncastellon/comercial-api/internal/domain/repository"
)

var _ repository.ConsecutivoRepository = (*ConsecutivoRepo)(nil)

// ConsecutivoRepo opera sobre la fila única del consecutivo de facturas.
// La migración inicial siembra la fila; aquí nunca se insertan filas nuevas.
type ConsecutivoRepo struct {
	q Querier
}

// NewConsecutivoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewConsecutivoRepository(q Querier) *ConsecutivoRepo {
	return &ConsecutivoRepo{q: q}
}

// GetForUpdate lee el último número consumido bloqueando la fila del contador.
// Dos asignaciones de rango concurrentes se serializan aquí.
func (r *ConsecutivoRepo) GetForUpdate(ctx context.Context) (int64, error) {
	var ultimo int64
	err := r.q.QueryRow(ctx, `SELECT ultimo_numero FROM consecutivo_factura WHERE id = 1 FOR UPDATE`).Scan(&ultimo)
	if err != nil {
		return 0, fmt.Errorf("get consecutivo for update: %w", err)
	}
	return ultimo, nil
}

// Avanzar fija el último número consumido. Solo se llama con la fila ya
// bloqueada y con un número mayor al actual.
func (r *ConsecutivoRepo) Avanzar(ctx context.Context, ultimoNumero int64) error {
	_, err := r.q.Exec(ctx, `UPDATE consecutivo_factura SET ultimo_numero = $1, updated_at = now() WHERE id = 1`, ultimoNumero)
	if err != nil {
		return fmt.Errorf("avanzar consecutivo: %w", err)
	}
	return nil
}

// Ultimo lee el último número sin bloquear (consulta informativa).
func (r *ConsecutivoRepo) Ultimo(ctx context.Context) (int64, error) {
	var ultimo int64
	err := r.q.QueryRow(ctx, `SELECT ultimo_numero FROM consecutivo_factura WHERE id = 1`).Scan(&ultimo)
	if err != nil {
		return 0, fmt.Errorf("get consecutivo: %w", err)
	}
	return ultimo, nil
}
