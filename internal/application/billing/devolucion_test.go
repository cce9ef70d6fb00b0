package billing_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ncastellon/comercial-api/internal/application/billing"
	"github.com/ncastellon/comercial-api/internal/application/dto"
	"github.com/ncastellon/comercial-api/internal/application/inventory"
	"github.com/ncastellon/comercial-api/internal/domain"
	"github.com/ncastellon/comercial-api/internal/domain/entity"
)

type escenarioDevolucion struct {
	uc    *billing.DevolucionUseCase
	inv   *fakeInvRepo
	mov   *fakeMovRepo
	venta *fakeVentaRepo
	dev   *fakeDevolucionRepo
}

// nuevoEscenarioDevolucion deja una venta ya facturada: 10 unidades de item-1
// a C$100 y 4 unidades de item-2 a C$40. El stock refleja la salida.
func nuevoEscenarioDevolucion(t *testing.T) *escenarioDevolucion {
	t.Helper()

	inv := newFakeInvRepo()
	mov := newFakeMovRepo()
	venta := newFakeVentaRepo()
	dev := newFakeDevolucionRepo()
	cons := &fakeConsecutivoRepo{ultimo: 100}
	tipos := newFakeTipoMovRepo(
		entity.TipoMovimiento{ID: "tm-venta", Codigo: entity.TipoMovVenta, Nombre: "Venta", AfectaStock: true, EsEntrada: false},
		entity.TipoMovimiento{ID: "tm-dev", Codigo: entity.TipoMovDevolucionCliente, Nombre: "Devolución de cliente", AfectaStock: true, EsEntrada: true},
	)

	ctx := context.Background()
	require.NoError(t, inv.Create(ctx, &entity.InventarioItem{ID: "item-1", Codigo: "item-1", Nombre: "Martillo", StockActual: 40}))
	require.NoError(t, inv.Create(ctx, &entity.InventarioItem{ID: "item-2", Codigo: "item-2", Nombre: "Clavos", StockActual: 16}))

	numero := int64(101)
	require.NoError(t, venta.Create(ctx, &entity.Venta{
		ID:               "venta-1",
		ClienteID:        "cli-1",
		NumeroFactura:    &numero,
		NumeroFacturaFin: &numero,
		Moneda:           entity.MonedaCordoba,
		TipoPago:         entity.TipoPagoContado,
		TipoCambioValor:  decimal.RequireFromString("36.62"),
		TotalCordoba:     decimal.RequireFromString("1160"),
		Usuario:          "cajero",
		CreatedAt:        time.Now(),
	}))
	require.NoError(t, venta.CreateDetalle(ctx, &entity.VentaDetalle{
		ID: "vd-1", VentaID: "venta-1", InventarioItemID: "item-1",
		Cantidad: 10, PrecioUnitarioCordoba: decimal.RequireFromString("100"),
		SubtotalCordoba: decimal.RequireFromString("1000"),
	}))
	require.NoError(t, venta.CreateDetalle(ctx, &entity.VentaDetalle{
		ID: "vd-2", VentaID: "venta-1", InventarioItemID: "item-2",
		Cantidad: 4, PrecioUnitarioCordoba: decimal.RequireFromString("40"),
		SubtotalCordoba: decimal.RequireFromString("160"),
	}))

	runner := &fakeBillingTxRunner{mov: mov, inv: inv, venta: venta, cons: cons, dev: dev}
	tc := billing.NewTipoCambioUseCase(&fakeTipoCambioRepo{}, decimal.RequireFromString("36.62"))
	ledger := inventory.NewRegistrarMovimientoUseCase(nil, inv, tipos, mov, nil)
	uc := billing.NewDevolucionUseCase(runner, ledger, tipos, dev, venta, tc)

	return &escenarioDevolucion{uc: uc, inv: inv, mov: mov, venta: venta, dev: dev}
}

func (e *escenarioDevolucion) devolver(item string, cantidad int64) dto.DevolucionRequest {
	return dto.DevolucionRequest{
		VentaID: "venta-1",
		Detalles: []dto.DevolucionLineaRequest{
			{InventarioItemID: item, Cantidad: cantidad},
		},
	}
}

func TestDevolucion_ReingresaStockYQuedaConfirmada(t *testing.T) {
	e := nuevoEscenarioDevolucion(t)

	resp, err := e.uc.RegistrarDevolucion(context.Background(), "cajero", e.devolver("item-1", 6))
	require.NoError(t, err)
	assert.Equal(t, entity.DevolucionEstadoConfirmada, resp.Estado)
	assert.Equal(t, "venta-1", resp.VentaID)
	// Precio en cero toma el precio de la línea vendida.
	assert.True(t, resp.TotalCordoba.Equal(decimal.RequireFromString("600")))
	assert.True(t, resp.TipoCambio.Equal(decimal.RequireFromString("36.62")))

	item, err := e.inv.GetByID(context.Background(), "item-1")
	require.NoError(t, err)
	assert.Equal(t, int64(46), item.StockActual, "la devolución reingresa las unidades al inventario")
	assert.Len(t, e.mov.movs, 1, "cada línea devuelta genera un movimiento de entrada")
}

func TestDevolucion_ParcialesAcumuladasNoExcedenLoVendido(t *testing.T) {
	e := nuevoEscenarioDevolucion(t)
	ctx := context.Background()

	// Vendidas 10. Devolver 6: ok.
	_, err := e.uc.RegistrarDevolucion(ctx, "cajero", e.devolver("item-1", 6))
	require.NoError(t, err)

	// 6 + 5 > 10: rechazada.
	_, err = e.uc.RegistrarDevolucion(ctx, "cajero", e.devolver("item-1", 5))
	require.ErrorIs(t, err, domain.ErrDevolucionExcede)

	// 6 + 4 = 10: ok.
	_, err = e.uc.RegistrarDevolucion(ctx, "cajero", e.devolver("item-1", 4))
	require.NoError(t, err)

	// Y ni una unidad más.
	_, err = e.uc.RegistrarDevolucion(ctx, "cajero", e.devolver("item-1", 1))
	require.ErrorIs(t, err, domain.ErrDevolucionExcede)

	item, _ := e.inv.GetByID(ctx, "item-1")
	assert.Equal(t, int64(50), item.StockActual)
}

func TestDevolucion_LineaExcedenteRevierteLaNotaCompleta(t *testing.T) {
	e := nuevoEscenarioDevolucion(t)

	_, err := e.uc.RegistrarDevolucion(context.Background(), "cajero", dto.DevolucionRequest{
		VentaID: "venta-1",
		Detalles: []dto.DevolucionLineaRequest{
			{InventarioItemID: "item-1", Cantidad: 3}, // válida
			{InventarioItemID: "item-2", Cantidad: 5}, // vendidas solo 4
		},
	})
	require.ErrorIs(t, err, domain.ErrDevolucionExcede)

	// Sin notas parciales: la línea válida también se revierte.
	item1, _ := e.inv.GetByID(context.Background(), "item-1")
	item2, _ := e.inv.GetByID(context.Background(), "item-2")
	assert.Equal(t, int64(40), item1.StockActual)
	assert.Equal(t, int64(16), item2.StockActual)
	assert.Empty(t, e.mov.movs)
	assert.Empty(t, e.dev.devoluciones)
}

func TestDevolucion_LineasRepetidasEnLaMismaNotaCuentanAcumuladas(t *testing.T) {
	e := nuevoEscenarioDevolucion(t)
	ctx := context.Background()

	// Vendidas 10. Dos líneas de 6 del mismo artículo suman 12: rechazada,
	// aunque cada línea por sí sola quepa en el saldo devolvible.
	_, err := e.uc.RegistrarDevolucion(ctx, "cajero", dto.DevolucionRequest{
		VentaID: "venta-1",
		Detalles: []dto.DevolucionLineaRequest{
			{InventarioItemID: "item-1", Cantidad: 6},
			{InventarioItemID: "item-1", Cantidad: 6},
		},
	})
	require.ErrorIs(t, err, domain.ErrDevolucionExcede)

	item, _ := e.inv.GetByID(ctx, "item-1")
	assert.Equal(t, int64(40), item.StockActual, "la primera línea también se revierte")
	assert.Empty(t, e.dev.devoluciones)

	// Repartidas en dos líneas que sí caben (6 + 4 = 10): ok.
	resp, err := e.uc.RegistrarDevolucion(ctx, "cajero", dto.DevolucionRequest{
		VentaID: "venta-1",
		Detalles: []dto.DevolucionLineaRequest{
			{InventarioItemID: "item-1", Cantidad: 6},
			{InventarioItemID: "item-1", Cantidad: 4},
		},
	})
	require.NoError(t, err)
	assert.True(t, resp.TotalCordoba.Equal(decimal.RequireFromString("1000")))

	item, _ = e.inv.GetByID(ctx, "item-1")
	assert.Equal(t, int64(50), item.StockActual)
}

func TestDevolucion_ItemQueNoEstaEnLaVenta(t *testing.T) {
	e := nuevoEscenarioDevolucion(t)
	ctx := context.Background()
	require.NoError(t, e.inv.Create(ctx, &entity.InventarioItem{ID: "item-3", Codigo: "item-3", Nombre: "Taladro", StockActual: 5}))

	_, err := e.uc.RegistrarDevolucion(ctx, "cajero", e.devolver("item-3", 1))
	assert.ErrorIs(t, err, domain.ErrDevolucionExcede)
}

func TestDevolucion_VentaDesconocida(t *testing.T) {
	e := nuevoEscenarioDevolucion(t)

	_, err := e.uc.RegistrarDevolucion(context.Background(), "cajero", dto.DevolucionRequest{
		VentaID: "venta-999",
		Detalles: []dto.DevolucionLineaRequest{
			{InventarioItemID: "item-1", Cantidad: 1},
		},
	})
	assert.ErrorIs(t, err, domain.ErrVentaDesconocida)
}

func TestDevolucion_ValidaEntrada(t *testing.T) {
	e := nuevoEscenarioDevolucion(t)
	ctx := context.Background()

	_, err := e.uc.RegistrarDevolucion(ctx, "cajero", dto.DevolucionRequest{VentaID: ""})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = e.uc.RegistrarDevolucion(ctx, "cajero", dto.DevolucionRequest{VentaID: "venta-1"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = e.uc.RegistrarDevolucion(ctx, "cajero", e.devolver("item-1", 0))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = e.uc.RegistrarDevolucion(ctx, "cajero", e.devolver("item-1", -2))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// Precio negativo: rechazado antes de tocar la transacción.
	_, err = e.uc.RegistrarDevolucion(ctx, "cajero", dto.DevolucionRequest{
		VentaID: "venta-1",
		Detalles: []dto.DevolucionLineaRequest{
			{InventarioItemID: "item-1", Cantidad: 2, PrecioUnitarioCordoba: decimal.RequireFromString("-50")},
		},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, e.dev.devoluciones)
}

func TestDevolucion_PrecioExplicitoPrevalece(t *testing.T) {
	e := nuevoEscenarioDevolucion(t)

	resp, err := e.uc.RegistrarDevolucion(context.Background(), "cajero", dto.DevolucionRequest{
		VentaID: "venta-1",
		Detalles: []dto.DevolucionLineaRequest{
			{InventarioItemID: "item-1", Cantidad: 2, PrecioUnitarioCordoba: decimal.RequireFromString("90")},
		},
	})
	require.NoError(t, err)
	assert.True(t, resp.TotalCordoba.Equal(decimal.RequireFromString("180")))
}

func TestDevolucion_GetPorID(t *testing.T) {
	e := nuevoEscenarioDevolucion(t)
	ctx := context.Background()

	creada, err := e.uc.RegistrarDevolucion(ctx, "cajero", e.devolver("item-1", 3))
	require.NoError(t, err)

	resp, err := e.uc.Get(ctx, creada.ID)
	require.NoError(t, err)
	assert.Equal(t, creada.ID, resp.ID)
	assert.Equal(t, "venta-1", resp.VentaID)
	require.Len(t, resp.Detalles, 1)
	assert.Equal(t, int64(3), resp.Detalles[0].Cantidad)

	_, err = e.uc.Get(ctx, "dev-999")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = e.uc.Get(ctx, "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestDevolucion_ListarPorVenta(t *testing.T) {
	e := nuevoEscenarioDevolucion(t)
	ctx := context.Background()

	_, err := e.uc.RegistrarDevolucion(ctx, "cajero", e.devolver("item-1", 2))
	require.NoError(t, err)
	_, err = e.uc.RegistrarDevolucion(ctx, "cajero", e.devolver("item-2", 1))
	require.NoError(t, err)

	notas, err := e.uc.ListarPorVenta(ctx, "venta-1")
	require.NoError(t, err)
	require.Len(t, notas, 2)
	for _, nota := range notas {
		assert.Equal(t, entity.DevolucionEstadoConfirmada, nota.Estado)
		assert.Len(t, nota.Detalles, 1)
	}

	_, err = e.uc.ListarPorVenta(ctx, "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
