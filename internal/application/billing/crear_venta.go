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

// CrearVentaUseCase crea una factura de venta: descuenta el inventario línea
// por línea, calcula totales en ambas monedas con el tipo de cambio congelado
// y asigna el rango de números consecutivos, todo en una sola transacción.
type CrearVentaUseCase struct {
	txRunner        BillingTxRunner
	ledger          LedgerEnTx
	clienteRepo     repository.ClienteRepository
	invRepo         repository.InventarioRepository
	tipoMovRepo     repository.TipoMovimientoRepository
	ventaRepo       repository.VentaRepository
	consRepo        repository.ConsecutivoRepository
	tipoCambio      *TipoCambioUseCase
	lineasPorPagina int
}

// NewCrearVentaUseCase construye el caso de uso. lineasPorPagina <= 0 usa el
// valor por defecto (15).
func NewCrearVentaUseCase(
	txRunner BillingTxRunner,
	ledger LedgerEnTx,
	clienteRepo repository.ClienteRepository,
	invRepo repository.InventarioRepository,
	tipoMovRepo repository.TipoMovimientoRepository,
	ventaRepo repository.VentaRepository,
	consRepo repository.ConsecutivoRepository,
	tipoCambio *TipoCambioUseCase,
	lineasPorPagina int,
) *CrearVentaUseCase {
	if lineasPorPagina <= 0 {
		lineasPorPagina = LineasPorPaginaDefault
	}
	return &CrearVentaUseCase{
		txRunner:        txRunner,
		ledger:          ledger,
		clienteRepo:     clienteRepo,
		invRepo:         invRepo,
		tipoMovRepo:     tipoMovRepo,
		ventaRepo:       ventaRepo,
		consRepo:        consRepo,
		tipoCambio:      tipoCambio,
		lineasPorPagina: lineasPorPagina,
	}
}

// CrearVenta valida cliente, artículos y precios (solo lectura, fuera de la
// tx) y luego, dentro de una transacción: registra la salida de inventario de
// cada línea, asigna el rango de consecutivos bloqueando la fila del contador
// y guarda cabecera y detalles. Cualquier error revierte todo: no hay factura
// parcial ni números consumidos en un guardado fallido.
func (uc *CrearVentaUseCase) CrearVenta(ctx context.Context, usuario string, in dto.CrearVentaRequest) (*dto.VentaResponse, error) {
	if in.ClienteID == "" || len(in.Detalles) == 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.Moneda != entity.MonedaCordoba && in.Moneda != entity.MonedaDolar {
		return nil, domain.ErrInvalidInput
	}
	if in.TipoPago != entity.TipoPagoContado && in.TipoPago != entity.TipoPagoCredito {
		return nil, domain.ErrInvalidInput
	}

	cliente, err := uc.clienteRepo.GetByID(ctx, in.ClienteID)
	if err != nil {
		return nil, err
	}
	if cliente == nil {
		return nil, domain.ErrNotFound
	}

	tipoVenta, err := uc.tipoMovRepo.GetByCodigo(ctx, entity.TipoMovVenta)
	if err != nil {
		return nil, err
	}
	if tipoVenta == nil {
		return nil, domain.ErrTipoMovDesconocido
	}

	// Validar artículos y precios (fuera de la tx, solo lectura).
	itemsPorID := make(map[string]*entity.InventarioItem, len(in.Detalles))
	for i := range in.Detalles {
		linea := &in.Detalles[i]
		if linea.InventarioItemID == "" || linea.Cantidad <= 0 {
			return nil, domain.ErrInvalidInput
		}
		if linea.PrecioUnitarioCordoba.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		item, err := uc.invRepo.GetByID(ctx, linea.InventarioItemID)
		if err != nil {
			return nil, err
		}
		if item == nil {
			return nil, domain.ErrArticuloDesconocido
		}
		itemsPorID[item.ID] = item
		if linea.PrecioUnitarioCordoba.IsZero() {
			in.Detalles[i].PrecioUnitarioCordoba = item.PrecioVentaSugeridoCordoba
		}
	}

	// Tipo de cambio leído una sola vez y congelado en la venta y sus movimientos.
	tcValor, err := uc.tipoCambio.Vigente(ctx)
	if err != nil {
		return nil, err
	}

	paginas := Paginas(len(in.Detalles), uc.lineasPorPagina)
	now := time.Now()
	ventaID := uuid.New().String()
	var venta *entity.Venta
	var detalles []*entity.VentaDetalle
	var rango RangoFactura

	err = uc.txRunner.RunVenta(ctx, func(
		movRepo repository.MovimientoRepository,
		invRepo repository.InventarioRepository,
		ventaRepo repository.VentaRepository,
		consRepo repository.ConsecutivoRepository,
	) error {
		// 1) Salida de inventario por línea, misma tx. Si una línea no tiene
		// stock, el error revierte la venta completa.
		for _, linea := range in.Detalles {
			if _, err := uc.ledger.RegistrarEnTx(ctx, movRepo, invRepo, tipoVenta,
				linea.InventarioItemID, usuario, ventaID, "",
				linea.Cantidad, decimal.Zero, tcValor, now); err != nil {
				return err
			}
		}

		// 2) Totales en córdobas; el total en dólares se deriva del tipo de
		// cambio congelado.
		var totalCordoba decimal.Decimal
		for _, linea := range in.Detalles {
			subtotal := decimal.NewFromInt(linea.Cantidad).Mul(linea.PrecioUnitarioCordoba)
			totalCordoba = totalCordoba.Add(subtotal)
		}
		totalDolar := totalCordoba.Div(tcValor)

		// 3) Asignación del rango de consecutivos: leer-calcular-avanzar con
		// la fila del contador bloqueada. Dos ventas concurrentes se
		// serializan aquí y nunca reciben rangos solapados.
		ultimo, err := consRepo.GetForUpdate(ctx)
		if err != nil {
			return err
		}
		if in.NumeroInicial != nil {
			if *in.NumeroInicial <= ultimo {
				return domain.ErrRangoSolapado
			}
			rango = rangoManual(*in.NumeroInicial, paginas)
		} else {
			rango = rangoDesde(ultimo, paginas)
		}
		if err := consRepo.Avanzar(ctx, rango.Ultimo); err != nil {
			return err
		}

		// 4) Cabecera y detalles.
		venta = &entity.Venta{
			ID:               ventaID,
			ClienteID:        in.ClienteID,
			NumeroFactura:    &rango.Primero,
			NumeroFacturaFin: &rango.Ultimo,
			Moneda:           in.Moneda,
			TipoPago:         in.TipoPago,
			TipoCambioValor:  tcValor,
			TotalCordoba:     totalCordoba,
			TotalDolar:       totalDolar,
			Observacion:      in.Observacion,
			Usuario:          usuario,
			CreatedAt:        now,
			UpdatedAt:        now,
		}
		if err := ventaRepo.Create(ctx, venta); err != nil {
			return err
		}
		for _, linea := range in.Detalles {
			detalle := &entity.VentaDetalle{
				ID:                    uuid.New().String(),
				VentaID:               venta.ID,
				InventarioItemID:      linea.InventarioItemID,
				Cantidad:              linea.Cantidad,
				PrecioUnitarioCordoba: linea.PrecioUnitarioCordoba,
				SubtotalCordoba:       decimal.NewFromInt(linea.Cantidad).Mul(linea.PrecioUnitarioCordoba),
			}
			if err := ventaRepo.CreateDetalle(ctx, detalle); err != nil {
				return err
			}
			detalles = append(detalles, detalle)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return ventaToResponse(venta, cliente.Nombre, paginas, detalles), nil
}

// GetVenta obtiene una venta por ID con su detalle completo.
func (uc *CrearVentaUseCase) GetVenta(ctx context.Context, id string) (*dto.VentaResponse, error) {
	venta, err := uc.ventaRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if venta == nil {
		return nil, domain.ErrVentaDesconocida
	}
	detalles, err := uc.ventaRepo.GetDetalles(ctx, id)
	if err != nil {
		return nil, err
	}
	nombre := ""
	if cliente, _ := uc.clienteRepo.GetByID(ctx, venta.ClienteID); cliente != nil {
		nombre = cliente.Nombre
	}
	paginas := 1
	if venta.NumeroFactura != nil && venta.NumeroFacturaFin != nil {
		paginas = int(*venta.NumeroFacturaFin - *venta.NumeroFactura + 1)
	}
	return ventaToResponse(venta, nombre, paginas, detalles), nil
}

// UltimoNumero devuelve el último número de factura consumido, sin bloquear
// el contador. Consulta informativa; la asignación real ocurre dentro de la
// transacción de CrearVenta.
func (uc *CrearVentaUseCase) UltimoNumero(ctx context.Context) (int64, error) {
	return uc.consRepo.Ultimo(ctx)
}

// Listar lista ventas paginadas (solo cabeceras, sin detalle).
func (uc *CrearVentaUseCase) Listar(ctx context.Context, limit, offset int) ([]*dto.VentaResponse, error) {
	ventas, err := uc.ventaRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.VentaResponse, 0, len(ventas))
	for _, venta := range ventas {
		paginas := 1
		if venta.NumeroFactura != nil && venta.NumeroFacturaFin != nil {
			paginas = int(*venta.NumeroFacturaFin - *venta.NumeroFactura + 1)
		}
		out = append(out, ventaToResponse(venta, "", paginas, nil))
	}
	return out, nil
}

func ventaToResponse(venta *entity.Venta, clienteNombre string, paginas int, detalles []*entity.VentaDetalle) *dto.VentaResponse {
	resp := &dto.VentaResponse{
		ID:               venta.ID,
		ClienteID:        venta.ClienteID,
		ClienteNombre:    clienteNombre,
		NumeroFactura:    venta.NumeroFactura,
		NumeroFacturaFin: venta.NumeroFacturaFin,
		Paginas:          paginas,
		Moneda:           venta.Moneda,
		TipoPago:         venta.TipoPago,
		TipoCambio:       venta.TipoCambioValor,
		TotalCordoba:     venta.TotalCordoba,
		TotalDolar:       venta.TotalDolar,
		Fecha:            venta.CreatedAt.Format("2006-01-02"),
		Detalles:         make([]dto.VentaDetalleResponse, 0, len(detalles)),
	}
	for _, d := range detalles {
		resp.Detalles = append(resp.Detalles, dto.VentaDetalleResponse{
			ID:                    d.ID,
			InventarioItemID:      d.InventarioItemID,
			Cantidad:              d.Cantidad,
			PrecioUnitarioCordoba: d.PrecioUnitarioCordoba,
			SubtotalCordoba:       d.SubtotalCordoba,
		})
	}
	return resp
}
