package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ncastellon/comercial-api/internal/domain/entity"
	"github.com/ncastellon/comercial-api/internal/domain/repository"
)

var _ repository.TipoMovimientoRepository = (*TipoMovimientoRepo)(nil)

// TipoMovimientoRepo lectura del catálogo de tipos de movimiento. El catálogo
// se siembra por migración; no hay escrituras.
type TipoMovimientoRepo struct {
	q Querier
}

// NewTipoMovimientoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTipoMovimientoRepository(q Querier) *TipoMovimientoRepo {
	return &TipoMovimientoRepo{q: q}
}

// GetByID obtiene un tipo por ID. Devuelve nil, nil si no existe.
func (r *TipoMovimientoRepo) GetByID(ctx context.Context, id string) (*entity.TipoMovimiento, error) {
	query := `SELECT id, codigo, nombre, afecta_stock, es_entrada FROM tipos_movimiento WHERE id = $1`
	var t entity.TipoMovimiento
	err := r.q.QueryRow(ctx, query, id).Scan(&t.ID, &t.Codigo, &t.Nombre, &t.AfectaStock, &t.EsEntrada)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get tipo movimiento: %w", err)
	}
	return &t, nil
}

// GetByCodigo obtiene un tipo por su código (VENTA, COMPRA, etc.).
func (r *TipoMovimientoRepo) GetByCodigo(ctx context.Context, codigo string) (*entity.TipoMovimiento, error) {
	query := `SELECT id, codigo, nombre, afecta_stock, es_entrada FROM tipos_movimiento WHERE codigo = $1`
	var t entity.TipoMovimiento
	err := r.q.QueryRow(ctx, query, codigo).Scan(&t.ID, &t.Codigo, &t.Nombre, &t.AfectaStock, &t.EsEntrada)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get tipo movimiento por codigo: %w", err)
	}
	return &t, nil
}

// List devuelve el catálogo completo.
func (r *TipoMovimientoRepo) List(ctx context.Context) ([]*entity.TipoMovimiento, error) {
	rows, err := r.q.Query(ctx, `SELECT id, codigo, nombre, afecta_stock, es_entrada FROM tipos_movimiento ORDER BY codigo`)
	if err != nil {
		return nil, fmt.Errorf("list tipos movimiento: %w", err)
	}
	defer rows.Close()
	var list []*entity.TipoMovimiento
	for rows.Next() {
		var t entity.TipoMovimiento
		if err := rows.Scan(&t.ID, &t.Codigo, &t.Nombre, &t.AfectaStock, &t.EsEntrada); err != nil {
			return nil, fmt.Errorf("scan tipo movimiento: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}
