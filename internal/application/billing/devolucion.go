package billing

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

// DevolucionUseCase registra devoluciones (notas de crédito) contra una venta:
// valida cada línea contra la cantidad vendida menos lo ya devuelto y crea los
// movimientos de entrada (restock) junto con la nota, todo en una transacción.
// Las devoluciones confirmadas son inmutables; no existe anulación.
type DevolucionUseCase struct {
	txRunner    BillingTxRunner
	ledger      LedgerEnTx
	tipoMovRepo repository.TipoMovimientoRepository
	devRepo     repository.DevolucionRepository
	ventaRepo   repository.VentaRepository
	tipoCambio  *TipoCambioUseCase
}

// NewDevolucionUseCase construye el caso de uso.
func NewDevolucionUseCase(
	txRunner BillingTxRunner,
	ledger LedgerEnTx,
	tipoMovRepo repository.TipoMovimientoRepository,
	devRepo repository.DevolucionRepository,
	ventaRepo repository.VentaRepository,
	tipoCambio *TipoCambioUseCase,
) *DevolucionUseCase {
	return &DevolucionUseCase{
		txRunner:    txRunner,
		ledger:      ledger,
		tipoMovRepo: tipoMovRepo,
		devRepo:     devRepo,
		ventaRepo:   ventaRepo,
		tipoCambio:  tipoCambio,
	}
}

// RegistrarDevolucion valida y confirma una devolución completa: o todas las
// líneas reingresan stock y la nota se crea, o ninguna (sin notas parciales).
//
// Invariante por línea: cantidadDevuelta <= cantidadVendida - yaDevuelto,
// sumando las devoluciones previas contra la misma venta. La cabecera de la
// venta se bloquea para serializar devoluciones concurrentes.
func (uc *DevolucionUseCase) RegistrarDevolucion(ctx context.Context, usuario string, in dto.DevolucionRequest) (*dto.DevolucionResponse, error) {
	if in.VentaID == "" || len(in.Detalles) == 0 {
		return nil, domain.ErrInvalidInput
	}
	for _, linea := range in.Detalles {
		if linea.InventarioItemID == "" || linea.Cantidad <= 0 {
			return nil, domain.ErrInvalidInput
		}
		if linea.PrecioUnitarioCordoba.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
	}

	tipoDevolucion, err := uc.tipoMovRepo.GetByCodigo(ctx, entity.TipoMovDevolucionCliente)
	if err != nil {
		return nil, err
	}
	if tipoDevolucion == nil {
		return nil, domain.ErrTipoMovDesconocido
	}

	tcValor, err := uc.tipoCambio.Vigente(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	devolucionID := uuid.New().String()
	var devolucion *entity.Devolucion
	var detalles []*entity.DevolucionDetalle

	err = uc.txRunner.RunDevolucion(ctx, func(
		movRepo repository.MovimientoRepository,
		invRepo repository.InventarioRepository,
		ventaRepo repository.VentaRepository,
		devRepo repository.DevolucionRepository,
	) error {
		venta, err := ventaRepo.GetForUpdate(ctx, in.VentaID)
		if err != nil {
			return err
		}
		if venta == nil {
			return domain.ErrVentaDesconocida
		}

		detallesVenta, err := ventaRepo.GetDetalles(ctx, in.VentaID)
		if err != nil {
			return err
		}
		vendidoPorItem := make(map[string]int64, len(detallesVenta))
		precioPorItem := make(map[string]decimal.Decimal, len(detallesVenta))
		for _, d := range detallesVenta {
			vendidoPorItem[d.InventarioItemID] += d.Cantidad
			precioPorItem[d.InventarioItemID] = d.PrecioUnitarioCordoba
		}

		var totalCordoba decimal.Decimal
		// Lo consumido por líneas anteriores de esta misma nota también cuenta
		// contra el saldo devolvible, aunque la nota aún no esté persistida.
		devueltoEnNota := make(map[string]int64, len(in.Detalles))
		for _, linea := range in.Detalles {
			yaDevuelto, err := devRepo.CantidadDevuelta(ctx, in.VentaID, linea.InventarioItemID)
			if err != nil {
				return err
			}
			yaDevuelto += devueltoEnNota[linea.InventarioItemID]
			if linea.Cantidad > vendidoPorItem[linea.InventarioItemID]-yaDevuelto {
				return domain.ErrDevolucionExcede
			}
			devueltoEnNota[linea.InventarioItemID] += linea.Cantidad

			// Reingreso de stock a través del libro de movimientos (misma tx).
			if _, err := uc.ledger.RegistrarEnTx(ctx, movRepo, invRepo, tipoDevolucion,
				linea.InventarioItemID, usuario, devolucionID, in.Observacion,
				linea.Cantidad, decimal.Zero, tcValor, now); err != nil {
				return err
			}

			precio := linea.PrecioUnitarioCordoba
			if precio.IsZero() {
				precio = precioPorItem[linea.InventarioItemID]
			}
			totalCordoba = totalCordoba.Add(decimal.NewFromInt(linea.Cantidad).Mul(precio))
			detalles = append(detalles, &entity.DevolucionDetalle{
				ID:                    uuid.New().String(),
				DevolucionID:          devolucionID,
				InventarioItemID:      linea.InventarioItemID,
				Cantidad:              linea.Cantidad,
				PrecioUnitarioCordoba: precio,
			})
		}

		devolucion = &entity.Devolucion{
			ID:              devolucionID,
			VentaID:         in.VentaID,
			Estado:          entity.DevolucionEstadoConfirmada,
			TipoCambioValor: tcValor,
			TotalCordoba:    totalCordoba,
			Observacion:     in.Observacion,
			Usuario:         usuario,
			CreatedAt:       now,
		}
		if err := devRepo.Create(ctx, devolucion); err != nil {
			return err
		}
		for _, d := range detalles {
			if err := devRepo.CreateDetalle(ctx, d); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return devolucionToResponse(devolucion, detalles), nil
}

// Get obtiene una devolución por ID con su detalle completo.
func (uc *DevolucionUseCase) Get(ctx context.Context, id string) (*dto.DevolucionResponse, error) {
	if id == "" {
		return nil, domain.ErrInvalidInput
	}
	dev, err := uc.devRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if dev == nil {
		return nil, domain.ErrNotFound
	}
	detalles, err := uc.devRepo.GetDetalles(ctx, dev.ID)
	if err != nil {
		return nil, err
	}
	return devolucionToResponse(dev, detalles), nil
}

// ListarPorVenta devuelve las devoluciones registradas contra una venta.
func (uc *DevolucionUseCase) ListarPorVenta(ctx context.Context, ventaID string) ([]*dto.DevolucionResponse, error) {
	if ventaID == "" {
		return nil, domain.ErrInvalidInput
	}
	devoluciones, err := uc.devRepo.ListByVenta(ctx, ventaID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.DevolucionResponse, 0, len(devoluciones))
	for _, dev := range devoluciones {
		detalles, err := uc.devRepo.GetDetalles(ctx, dev.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, devolucionToResponse(dev, detalles))
	}
	return out, nil
}

func devolucionToResponse(dev *entity.Devolucion, detalles []*entity.DevolucionDetalle) *dto.DevolucionResponse {
	resp := &dto.DevolucionResponse{
		ID:           dev.ID,
		VentaID:      dev.VentaID,
		Estado:       dev.Estado,
		TipoCambio:   dev.TipoCambioValor,
		TotalCordoba: dev.TotalCordoba,
		Fecha:        dev.CreatedAt.Format("2006-01-02"),
		Detalles:     make([]dto.DevolucionDetalleResponse, 0, len(detalles)),
	}
	for _, d := range detalles {
		resp.Detalles = append(resp.Detalles, dto.DevolucionDetalleResponse{
			ID:                    d.ID,
			InventarioItemID:      d.InventarioItemID,
			Cantidad:              d.Cantidad,
			PrecioUnitarioCordoba: d.PrecioUnitarioCordoba,
		})
	}
	return resp
}
