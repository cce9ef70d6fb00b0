package repository

import (
	"context"

	"github.com/ncastellon/comercial-api/internal/domain/entity"
)

// ClienteRepository define el puerto de persistencia del catálogo de clientes.
type ClienteRepository interface {
	Create(ctx context.Context, cliente *entity.Cliente) error
	GetByID(ctx context.Context, id string) (*entity.Cliente, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Cliente, error)
}
