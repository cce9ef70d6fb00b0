package repository

import (
	"context"
	"time"

	"github.com/ncastellon/comercial-api/internal/domain/entity"
)

// TipoCambioRepository define el puerto de persistencia del tipo de cambio
// oficial diario.
type TipoCambioRepository interface {
	// Vigente devuelve el registro más reciente, o nil, nil si no hay ninguno.
	Vigente(ctx context.Context) (*entity.TipoCambio, error)
	Upsert(ctx context.Context, tc *entity.TipoCambio) error
	ListByRango(ctx context.Context, desde, hasta time.Time) ([]*entity.TipoCambio, error)
}
