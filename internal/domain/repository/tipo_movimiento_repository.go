package repository

import (
	"context"

	"github.com/ncastellon/comercial-api/internal/domain/entity"
)

// TipoMovimientoRepository define el puerto de lectura del catálogo de tipos
// de movimiento. Solo lectura: el catálogo se siembra por migración.
type TipoMovimientoRepository interface {
	GetByID(ctx context.Context, id string) (*entity.TipoMovimiento, error)
	GetByCodigo(ctx context.Context, codigo string) (*entity.TipoMovimiento, error)
	List(ctx context.Context) ([]*entity.TipoMovimiento, error)
}
