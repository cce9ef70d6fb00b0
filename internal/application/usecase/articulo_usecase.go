package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ncastellon/comercial-api/internal/application/dto"
	"github.com/ncastellon/comercial-api/internal/domain"
	"github.com/ncastellon/comercial-api/internal/domain/entity"
	"github.com/ncastellon/comercial-api/internal/domain/repository"
)

// ArticuloUseCase casos de uso CRUD del catálogo de artículos.
// StockActual y los costos promedio se manejan exclusivamente vía movimientos;
// aquí no se tocan.
type ArticuloUseCase struct {
	repo repository.InventarioRepository
}

// NewArticuloUseCase construye el caso de uso.
func NewArticuloUseCase(repo repository.InventarioRepository) *ArticuloUseCase {
	return &ArticuloUseCase{repo: repo}
}

// Create crea un nuevo artículo con stock y costos en cero.
func (uc *ArticuloUseCase) Create(ctx context.Context, in dto.CrearArticuloRequest) (*dto.ArticuloResponse, error) {
	if in.Codigo == "" || in.Nombre == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.PrecioVentaSugeridoCordoba.LessThan(decimal.Zero) || in.PrecioVentaSugeridoDolar.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	item := &entity.InventarioItem{
		ID:                         uuid.New().String(),
		Codigo:                     in.Codigo,
		Nombre:                     in.Nombre,
		Descripcion:                in.Descripcion,
		StockActual:                0,
		CostoPromedioCordoba:       decimal.Zero,
		CostoPromedioDolar:         decimal.Zero,
		PrecioVentaSugeridoCordoba: in.PrecioVentaSugeridoCordoba,
		PrecioVentaSugeridoDolar:   in.PrecioVentaSugeridoDolar,
		CreatedAt:                  now,
		UpdatedAt:                  now,
	}
	if err := uc.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	return toArticuloResponse(item), nil
}

// GetByID obtiene un artículo por ID.
func (uc *ArticuloUseCase) GetByID(ctx context.Context, id string) (*dto.ArticuloResponse, error) {
	item, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	return toArticuloResponse(item), nil
}

// List lista artículos del catálogo.
func (uc *ArticuloUseCase) List(ctx context.Context, limit, offset int) ([]*dto.ArticuloResponse, error) {
	if limit <= 0 {
		limit = 20
	}
	items, err := uc.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ArticuloResponse, 0, len(items))
	for _, item := range items {
		out = append(out, toArticuloResponse(item))
	}
	return out, nil
}

func toArticuloResponse(item *entity.InventarioItem) *dto.ArticuloResponse {
	return &dto.ArticuloResponse{
		ID:                         item.ID,
		Codigo:                     item.Codigo,
		Nombre:                     item.Nombre,
		Descripcion:                item.Descripcion,
		StockActual:                item.StockActual,
		CostoPromedioCordoba:       item.CostoPromedioCordoba,
		CostoPromedioDolar:         item.CostoPromedioDolar,
		PrecioVentaSugeridoCordoba: item.PrecioVentaSugeridoCordoba,
		PrecioVentaSugeridoDolar:   item.PrecioVentaSugeridoDolar,
	}
}
