package repository

import (
	"context"
	"time"

	"github.com/ncastellon/comercial-api/internal/domain/entity"
)

// MovimientoRepository define el puerto de persistencia del libro de movimientos.
type MovimientoRepository interface {
	Create(ctx context.Context, mov *entity.Movimiento) error
	GetByID(ctx context.Context, id string) (*entity.Movimiento, error)
	Update(ctx context.Context, mov *entity.Movimiento) error
	Delete(ctx context.Context, id string) error
	ListByItem(ctx context.Context, itemID string, from, to *time.Time, limit, offset int) ([]*entity.Movimiento, error)
}
