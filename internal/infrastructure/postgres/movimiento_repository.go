package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/ncastellon/comercial-api/internal/domain/entity"
	"github.com/ncastellon/comercial-api/internal/domain/repository"
)

var _ repository.MovimientoRepository = (*MovimientoRepo)(nil)

// MovimientoRepo implementación sobre PostgreSQL (usable con pool o tx).
type MovimientoRepo struct {
	q Querier
}

// NewMovimientoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovimientoRepository(q Querier) *MovimientoRepo {
	return &MovimientoRepo{q: q}
}

const columnasMovimiento = `
	id, inventario_item_id, tipo_movimiento_id, referencia_id, cantidad,
	observacion, usuario, tipo_cambio_valor, costo_unitario_dolar,
	costo_unitario_cordoba, created_at, updated_at`

// Create persiste un movimiento del libro de inventario.
func (r *MovimientoRepo) Create(ctx context.Context, mov *entity.Movimiento) error {
	if mov.ID == "" {
		mov.ID = uuid.New().String()
	}
	query := `
		INSERT INTO movimientos (id, inventario_item_id, tipo_movimiento_id, referencia_id,
			cantidad, observacion, usuario, tipo_cambio_valor,
			costo_unitario_dolar, costo_unitario_cordoba, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	referencia := (*string)(nil)
	if mov.ReferenciaID != "" {
		referencia = &mov.ReferenciaID
	}
	_, err := r.q.Exec(ctx, query,
		mov.ID, mov.InventarioItemID, mov.TipoMovimientoID, referencia,
		mov.Cantidad, mov.Observacion, mov.Usuario, mov.TipoCambioValor,
		mov.CostoUnitarioDolar, mov.CostoUnitarioCordoba, mov.CreatedAt, mov.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("create movimiento: %w", err)
	}
	return nil
}

func scanMovimiento(row pgx.Row) (*entity.Movimiento, error) {
	var m entity.Movimiento
	var referencia *string
	err := row.Scan(
		&m.ID, &m.InventarioItemID, &m.TipoMovimientoID, &referencia, &m.Cantidad,
		&m.Observacion, &m.Usuario, &m.TipoCambioValor, &m.CostoUnitarioDolar,
		&m.CostoUnitarioCordoba, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if referencia != nil {
		m.ReferenciaID = *referencia
	}
	return &m, nil
}

// GetByID obtiene un movimiento por ID. Devuelve nil, nil si no existe.
func (r *MovimientoRepo) GetByID(ctx context.Context, id string) (*entity.Movimiento, error) {
	query := `SELECT` + columnasMovimiento + ` FROM movimientos WHERE id = $1`
	mov, err := scanMovimiento(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movimiento: %w", err)
	}
	return mov, nil
}

// Update reescribe un movimiento revisado.
func (r *MovimientoRepo) Update(ctx context.Context, mov *entity.Movimiento) error {
	query := `
		UPDATE movimientos
		SET tipo_movimiento_id = $2, cantidad = $3, observacion = $4,
			costo_unitario_dolar = $5, costo_unitario_cordoba = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		mov.ID, mov.TipoMovimientoID, mov.Cantidad, mov.Observacion,
		mov.CostoUnitarioDolar, mov.CostoUnitarioCordoba, mov.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update movimiento: %w", err)
	}
	return nil
}

// Delete elimina un movimiento (solo lo usa la reversión, con el stock ya
// deshecho en la misma transacción).
func (r *MovimientoRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM movimientos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete movimiento: %w", err)
	}
	return nil
}

// ListByItem lista los movimientos de un artículo en un rango de fechas.
func (r *MovimientoRepo) ListByItem(ctx context.Context, itemID string, from, to *time.Time, limit, offset int) ([]*entity.Movimiento, error) {
	query := `SELECT` + columnasMovimiento + ` FROM movimientos WHERE inventario_item_id = $1`
	args := []any{itemID}
	pos := 2
	if from != nil {
		query += fmt.Sprintf(" AND created_at >= $%d", pos)
		args = append(args, *from)
		pos++
	}
	if to != nil {
		query += fmt.Sprintf(" AND created_at <= $%d", pos)
		args = append(args, *to)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movimientos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Movimiento
	for rows.Next() {
		m, err := scanMovimiento(rows)
		if err != nil {
			return nil, fmt.Errorf("scan movimiento: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}
