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

var _ repository.TipoCambioRepository = (*TipoCambioRepo)(nil)

// TipoCambioRepo persistencia del tipo de cambio oficial diario.
type TipoCambioRepo struct {
	q Querier
}

// NewTipoCambioRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTipoCambioRepository(q Querier) *TipoCambioRepo {
	return &TipoCambioRepo{q: q}
}

// Vigente devuelve el registro más reciente, o nil, nil si no hay ninguno.
func (r *TipoCambioRepo) Vigente(ctx context.Context) (*entity.TipoCambio, error) {
	query := `SELECT id, fecha, valor, created_at FROM tipos_cambio ORDER BY fecha DESC LIMIT 1`
	var tc entity.TipoCambio
	err := r.q.QueryRow(ctx, query).Scan(&tc.ID, &tc.Fecha, &tc.Valor, &tc.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get tipo cambio vigente: %w", err)
	}
	return &tc, nil
}

// Upsert guarda el tipo de cambio de una fecha, reemplazando el valor si la
// fecha ya tiene registro.
func (r *TipoCambioRepo) Upsert(ctx context.Context, tc *entity.TipoCambio) error {
	if tc.ID == "" {
		tc.ID = uuid.New().String()
	}
	query := `
		INSERT INTO tipos_cambio (id, fecha, valor, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (fecha) DO UPDATE SET valor = EXCLUDED.valor`
	_, err := r.q.Exec(ctx, query, tc.ID, tc.Fecha, tc.Valor, tc.CreatedAt)
	if err != nil {
		return fmt.Errorf("upsert tipo cambio: %w", err)
	}
	return nil
}

// ListByRango lista los tipos de cambio registrados en un rango de fechas.
func (r *TipoCambioRepo) ListByRango(ctx context.Context, desde, hasta time.Time) ([]*entity.TipoCambio, error) {
	query := `SELECT id, fecha, valor, created_at FROM tipos_cambio WHERE fecha >= $1 AND fecha <= $2 ORDER BY fecha`
	rows, err := r.q.Query(ctx, query, desde, hasta)
	if err != nil {
		return nil, fmt.Errorf("list tipos cambio: %w", err)
	}
	defer rows.Close()
	var list []*entity.TipoCambio
	for rows.Next() {
		var tc entity.TipoCambio
		if err := rows.Scan(&tc.ID, &tc.Fecha, &tc.Valor, &tc.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan tipo cambio: %w", err)
		}
		list = append(list, &tc)
	}
	return list, rows.Err()
}
