package billing

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ncastellon/comercial-api/internal/domain"
	"github.com/ncastellon/comercial-api/internal/domain/entity"
	"github.com/ncastellon/comercial-api/internal/domain/repository"
)

// TipoCambioUseCase provee el tipo de cambio córdoba/dólar vigente y registra
// el tipo de cambio oficial diario.
//
// El valor por defecto viene inyectado desde configuración: es el respaldo
// cuando todavía no se ha registrado ningún tipo de cambio, y es uno solo para
// toda la aplicación (no hay literales repartidos por el código).
type TipoCambioUseCase struct {
	repo         repository.TipoCambioRepository
	valorDefecto decimal.Decimal
}

// NewTipoCambioUseCase construye el caso de uso.
func NewTipoCambioUseCase(repo repository.TipoCambioRepository, valorDefecto decimal.Decimal) *TipoCambioUseCase {
	return &TipoCambioUseCase{repo: repo, valorDefecto: valorDefecto}
}

// Vigente devuelve el tipo de cambio más reciente registrado, o el valor por
// defecto configurado si no hay ninguno.
func (uc *TipoCambioUseCase) Vigente(ctx context.Context) (decimal.Decimal, error) {
	tc, err := uc.repo.Vigente(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	if tc == nil {
		return uc.valorDefecto, nil
	}
	return tc.Valor, nil
}

// Registrar guarda (o reemplaza) el tipo de cambio oficial de una fecha.
func (uc *TipoCambioUseCase) Registrar(ctx context.Context, fecha time.Time, valor decimal.Decimal) (*entity.TipoCambio, error) {
	if !valor.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	tc := &entity.TipoCambio{
		ID:        uuid.New().String(),
		Fecha:     fecha.Truncate(24 * time.Hour),
		Valor:     valor,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Upsert(ctx, tc); err != nil {
		return nil, err
	}
	return tc, nil
}

// Historial lista los tipos de cambio registrados en un rango de fechas.
func (uc *TipoCambioUseCase) Historial(ctx context.Context, desde, hasta time.Time) ([]*entity.TipoCambio, error) {
	if hasta.Before(desde) {
		return nil, domain.ErrInvalidInput
	}
	return uc.repo.ListByRango(ctx, desde, hasta)
}
