package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ncastellon/comercial-api/internal/domain"
	"github.com/ncastellon/comercial-api/internal/domain/entity"
	dominv "github.com/ncastellon/comercial-api/internal/domain/inventory"
	"github.com/ncastellon/comercial-api/internal/domain/repository"
)

// RegistrarMovimientoUseCase es el dueño de la relación atómica entre un
// Movimiento y el StockActual del artículo que afecta. Toda mutación de stock
// pasa por aquí, dentro de una transacción con bloqueo de fila
// (SELECT FOR UPDATE) y Commit/Rollback.
type RegistrarMovimientoUseCase struct {
	txRunner    TxRunner
	invRepo     repository.InventarioRepository
	tipoMovRepo repository.TipoMovimientoRepository
	movRepo     repository.MovimientoRepository
	tipoCambio  TipoCambioProvider
}

// NewRegistrarMovimientoUseCase construye el caso de uso.
func NewRegistrarMovimientoUseCase(
	txRunner TxRunner,
	invRepo repository.InventarioRepository,
	tipoMovRepo repository.TipoMovimientoRepository,
	movRepo repository.MovimientoRepository,
	tipoCambio TipoCambioProvider,
) *RegistrarMovimientoUseCase {
	return &RegistrarMovimientoUseCase{
		txRunner:    txRunner,
		invRepo:     invRepo,
		tipoMovRepo: tipoMovRepo,
		movRepo:     movRepo,
		tipoCambio:  tipoCambio,
	}
}

// MovimientoInput entrada para registrar un movimiento de inventario.
// Cantidad siempre positiva; el signo lo determina el tipo de movimiento.
// CostoUnitarioDolar es obligatorio en compras; en salidas, si viene en cero,
// se usa el costo promedio actual del artículo.
type MovimientoInput struct {
	InventarioItemID   string
	TipoMovimientoID   string
	Cantidad           int64
	CostoUnitarioDolar decimal.Decimal
	Observacion        string
	Usuario            string
}

// RevisionInput entrada para revisar (editar) un movimiento existente.
// Los punteros nil dejan el campo original sin cambio.
type RevisionInput struct {
	Cantidad           int64
	TipoMovimientoID   *string
	CostoUnitarioDolar *decimal.Decimal
	Observacion        *string
}

// Registrar valida contra el estado actual, calcula el delta y lo aplica junto
// con la fila del movimiento como una sola unidad atómica. El tipo de cambio
// se lee una vez y se congela en el registro.
func (uc *RegistrarMovimientoUseCase) Registrar(ctx context.Context, input MovimientoInput) (*entity.Movimiento, error) {
	if input.InventarioItemID == "" || input.TipoMovimientoID == "" {
		return nil, domain.ErrInvalidInput
	}
	if input.Cantidad <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if input.CostoUnitarioDolar.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}

	tipo, err := uc.tipoMovRepo.GetByID(ctx, input.TipoMovimientoID)
	if err != nil {
		return nil, err
	}
	if tipo == nil {
		return nil, domain.ErrTipoMovDesconocido
	}

	tcValor, err := uc.tipoCambio.Vigente(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	var mov *entity.Movimiento
	err = uc.txRunner.Run(ctx, func(
		movRepo repository.MovimientoRepository,
		invRepo repository.InventarioRepository,
	) error {
		var errTx error
		mov, errTx = uc.RegistrarEnTx(ctx, movRepo, invRepo, tipo,
			input.InventarioItemID, input.Usuario, "", input.Observacion,
			input.Cantidad, input.CostoUnitarioDolar, tcValor, now)
		return errTx
	})
	if err != nil {
		return nil, err
	}
	return mov, nil
}

// RegistrarEnTx aplica un movimiento usando los repositorios del caller (misma
// transacción). Lo usan facturación y devoluciones para crear los movimientos
// de sus líneas dentro de su propia tx.
//
// Bloquea la fila del artículo, verifica suficiencia de stock en salidas,
// actualiza StockActual y crea la fila del movimiento. En entradas con costo
// recalcula el costo promedio ponderado del artículo.
func (uc *RegistrarMovimientoUseCase) RegistrarEnTx(
	ctx context.Context,
	movRepo repository.MovimientoRepository,
	invRepo repository.InventarioRepository,
	tipo *entity.TipoMovimiento,
	itemID, usuario, referenciaID, observacion string,
	cantidad int64,
	costoUnitarioDolar decimal.Decimal,
	tipoCambio decimal.Decimal,
	now time.Time,
) (*entity.Movimiento, error) {
	if cantidad <= 0 {
		return nil, domain.ErrInvalidInput
	}

	// Bloquea la fila del artículo: movimientos concurrentes contra el mismo
	// artículo se serializan aquí.
	item, err := invRepo.GetForUpdate(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrArticuloDesconocido
	}

	delta := dominv.Delta(tipo, cantidad)
	nuevoStock := item.StockActual + delta
	if nuevoStock < 0 {
		return nil, domain.ErrStockInsuficiente
	}

	// En salidas sin costo explícito se usa el costo promedio actual.
	costoDolar := costoUnitarioDolar
	if costoDolar.IsZero() {
		costoDolar = item.CostoPromedioDolar
	}
	costoCordoba := costoDolar.Mul(tipoCambio)

	if tipo.AfectaStock {
		if err := invRepo.UpdateStock(ctx, item.ID, nuevoStock); err != nil {
			return nil, err
		}
	}

	// Entradas con costo explícito recalculan el costo promedio ponderado.
	if delta > 0 && !costoUnitarioDolar.IsZero() {
		nuevoCostoDolar := dominv.CostoPromedio(item.StockActual, item.CostoPromedioDolar, cantidad, costoDolar)
		nuevoCostoCordoba := nuevoCostoDolar.Mul(tipoCambio)
		if err := invRepo.UpdateCostos(ctx, item.ID, nuevoCostoCordoba, nuevoCostoDolar); err != nil {
			return nil, err
		}
	}

	mov := &entity.Movimiento{
		ID:                   uuid.New().String(),
		InventarioItemID:     item.ID,
		TipoMovimientoID:     tipo.ID,
		ReferenciaID:         referenciaID,
		Cantidad:             cantidad,
		Observacion:          observacion,
		Usuario:              usuario,
		TipoCambioValor:      tipoCambio,
		CostoUnitarioDolar:   costoDolar,
		CostoUnitarioCordoba: costoCordoba,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
	if err := movRepo.Create(ctx, mov); err != nil {
		return nil, err
	}
	return mov, nil
}

// Revisar edita un movimiento existente revirtiendo su delta y aplicando el
// nuevo en una sola operación: StockActual += (nuevoDelta - viejoDelta).
// La validación de stock es contra el stock post-reversión, para permitir
// reducciones legítimas. El tipo de cambio congelado del movimiento no se
// vuelve a leer.
func (uc *RegistrarMovimientoUseCase) Revisar(ctx context.Context, movimientoID string, input RevisionInput) (*entity.Movimiento, error) {
	if movimientoID == "" || input.Cantidad <= 0 {
		return nil, domain.ErrInvalidInput
	}

	var mov *entity.Movimiento
	err := uc.txRunner.Run(ctx, func(
		movRepo repository.MovimientoRepository,
		invRepo repository.InventarioRepository,
	) error {
		viejo, err := movRepo.GetByID(ctx, movimientoID)
		if err != nil {
			return err
		}
		if viejo == nil {
			return domain.ErrNotFound
		}

		tipoViejo, err := uc.tipoMovRepo.GetByID(ctx, viejo.TipoMovimientoID)
		if err != nil {
			return err
		}
		if tipoViejo == nil {
			return domain.ErrTipoMovDesconocido
		}
		tipoNuevo := tipoViejo
		if input.TipoMovimientoID != nil && *input.TipoMovimientoID != viejo.TipoMovimientoID {
			tipoNuevo, err = uc.tipoMovRepo.GetByID(ctx, *input.TipoMovimientoID)
			if err != nil {
				return err
			}
			if tipoNuevo == nil {
				return domain.ErrTipoMovDesconocido
			}
		}

		item, err := invRepo.GetForUpdate(ctx, viejo.InventarioItemID)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrArticuloDesconocido
		}

		viejoDelta := dominv.Delta(tipoViejo, viejo.Cantidad)
		nuevoDelta := dominv.Delta(tipoNuevo, input.Cantidad)
		nuevoStock := item.StockActual + (nuevoDelta - viejoDelta)
		if nuevoStock < 0 {
			return domain.ErrStockInsuficiente
		}
		if err := invRepo.UpdateStock(ctx, item.ID, nuevoStock); err != nil {
			return err
		}

		viejo.TipoMovimientoID = tipoNuevo.ID
		viejo.Cantidad = input.Cantidad
		if input.CostoUnitarioDolar != nil {
			if input.CostoUnitarioDolar.LessThan(decimal.Zero) {
				return domain.ErrInvalidInput
			}
			viejo.CostoUnitarioDolar = *input.CostoUnitarioDolar
			// Derivado del tipo de cambio congelado a la creación, no del vigente.
			viejo.CostoUnitarioCordoba = input.CostoUnitarioDolar.Mul(viejo.TipoCambioValor)
		}
		if input.Observacion != nil {
			viejo.Observacion = *input.Observacion
		}
		viejo.UpdatedAt = time.Now()
		if err := movRepo.Update(ctx, viejo); err != nil {
			return err
		}
		mov = viejo
		return nil
	})
	if err != nil {
		return nil, err
	}
	return mov, nil
}

// Revertir elimina un movimiento deshaciendo su efecto sobre el stock:
// StockActual -= delta, y borra la fila del libro, todo en una transacción.
func (uc *RegistrarMovimientoUseCase) Revertir(ctx context.Context, movimientoID string) error {
	if movimientoID == "" {
		return domain.ErrInvalidInput
	}
	return uc.txRunner.Run(ctx, func(
		movRepo repository.MovimientoRepository,
		invRepo repository.InventarioRepository,
	) error {
		mov, err := movRepo.GetByID(ctx, movimientoID)
		if err != nil {
			return err
		}
		if mov == nil {
			return domain.ErrNotFound
		}
		tipo, err := uc.tipoMovRepo.GetByID(ctx, mov.TipoMovimientoID)
		if err != nil {
			return err
		}
		if tipo == nil {
			return domain.ErrTipoMovDesconocido
		}
		item, err := invRepo.GetForUpdate(ctx, mov.InventarioItemID)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrArticuloDesconocido
		}

		nuevoStock := item.StockActual - dominv.Delta(tipo, mov.Cantidad)
		if nuevoStock < 0 {
			// Revertir una entrada cuyo stock ya fue consumido dejaría el
			// stock negativo; se rechaza, no se recorta.
			return domain.ErrStockInsuficiente
		}
		if err := invRepo.UpdateStock(ctx, item.ID, nuevoStock); err != nil {
			return err
		}
		return movRepo.Delete(ctx, mov.ID)
	})
}

// ListarPorItem devuelve el kardex de un artículo (movimientos más recientes primero).
func (uc *RegistrarMovimientoUseCase) ListarPorItem(ctx context.Context, itemID string, from, to *time.Time, limit, offset int) ([]*entity.Movimiento, error) {
	if itemID == "" {
		return nil, domain.ErrInvalidInput
	}
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	return uc.movRepo.ListByItem(ctx, itemID, from, to, limit, offset)
}
