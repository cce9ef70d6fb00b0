package repository

import (
	"context"

	"github.com/ncastellon/comercial-api/internal/domain/entity"
)

// DevolucionRepository define el puerto de persistencia para devoluciones
// (notas de crédito) y sus detalles.
type DevolucionRepository interface {
	Create(ctx context.Context, dev *entity.Devolucion) error
	CreateDetalle(ctx context.Context, detalle *entity.DevolucionDetalle) error
	GetByID(ctx context.Context, id string) (*entity.Devolucion, error)
	GetDetalles(ctx context.Context, devolucionID string) ([]*entity.DevolucionDetalle, error)
	ListByVenta(ctx context.Context, ventaID string) ([]*entity.Devolucion, error)
	// CantidadDevuelta suma las cantidades ya devueltas de un artículo contra
	// una venta (todas las devoluciones confirmadas de esa venta).
	CantidadDevuelta(ctx context.Context, ventaID, itemID string) (int64, error)
}
