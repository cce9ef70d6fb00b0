package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/ncastellon/comercial-api/internal/domain/entity"
)

// InventarioRepository define el puerto de persistencia del catálogo de artículos.
// Las escrituras de stock y costos se usan solo dentro de transacciones del
// libro de movimientos; ninguna otra ruta puede tocar stock_actual.
type InventarioRepository interface {
	Create(ctx context.Context, item *entity.InventarioItem) error
	GetByID(ctx context.Context, id string) (*entity.InventarioItem, error)
	List(ctx context.Context, limit, offset int) ([]*entity.InventarioItem, error)
	// GetForUpdate bloquea la fila del artículo (SELECT FOR UPDATE) para
	// serializar movimientos concurrentes contra el mismo artículo.
	GetForUpdate(ctx context.Context, id string) (*entity.InventarioItem, error)
	UpdateStock(ctx context.Context, id string, stockActual int64) error
	UpdateCostos(ctx context.Context, id string, costoCordoba, costoDolar decimal.Decimal) error
}
