package repository

import (
	"context"

	"github.com/ncastellon/comercial-api/internal/domain/entity"
)

// VentaRepository define el puerto de persistencia para ventas y sus detalles.
type VentaRepository interface {
	Create(ctx context.Context, venta *entity.Venta) error
	CreateDetalle(ctx context.Context, detalle *entity.VentaDetalle) error
	GetByID(ctx context.Context, id string) (*entity.Venta, error)
	// GetForUpdate bloquea la cabecera de la venta para serializar
	// devoluciones concurrentes contra la misma venta.
	GetForUpdate(ctx context.Context, id string) (*entity.Venta, error)
	GetDetalles(ctx context.Context, ventaID string) ([]*entity.VentaDetalle, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Venta, error)
}
