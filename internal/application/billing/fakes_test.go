package billing_test

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ncastellon/comercial-api/internal/domain"
	"github.com/ncastellon/comercial-api/internal/domain/entity"
	"github.com/ncastellon/comercial-api/internal/domain/repository"
)

// Fakes en memoria para los casos de uso de facturación. El runner simula el
// rollback restaurando el estado previo cuando fn falla.

type fakeInvRepo struct {
	items map[string]entity.InventarioItem
}

func newFakeInvRepo() *fakeInvRepo {
	return &fakeInvRepo{items: make(map[string]entity.InventarioItem)}
}

func (f *fakeInvRepo) Create(_ context.Context, item *entity.InventarioItem) error {
	f.items[item.ID] = *item
	return nil
}

func (f *fakeInvRepo) GetByID(_ context.Context, id string) (*entity.InventarioItem, error) {
	item, ok := f.items[id]
	if !ok {
		return nil, nil
	}
	return &item, nil
}

func (f *fakeInvRepo) List(_ context.Context, _, _ int) ([]*entity.InventarioItem, error) {
	out := make([]*entity.InventarioItem, 0, len(f.items))
	for id := range f.items {
		item := f.items[id]
		out = append(out, &item)
	}
	return out, nil
}

func (f *fakeInvRepo) GetForUpdate(ctx context.Context, id string) (*entity.InventarioItem, error) {
	return f.GetByID(ctx, id)
}

func (f *fakeInvRepo) UpdateStock(_ context.Context, id string, stockActual int64) error {
	item, ok := f.items[id]
	if !ok {
		return domain.ErrArticuloDesconocido
	}
	item.StockActual = stockActual
	f.items[id] = item
	return nil
}

func (f *fakeInvRepo) UpdateCostos(_ context.Context, id string, costoCordoba, costoDolar decimal.Decimal) error {
	item, ok := f.items[id]
	if !ok {
		return domain.ErrArticuloDesconocido
	}
	item.CostoPromedioCordoba = costoCordoba
	item.CostoPromedioDolar = costoDolar
	f.items[id] = item
	return nil
}

type fakeMovRepo struct {
	movs map[string]entity.Movimiento
}

func newFakeMovRepo() *fakeMovRepo {
	return &fakeMovRepo{movs: make(map[string]entity.Movimiento)}
}

func (f *fakeMovRepo) Create(_ context.Context, mov *entity.Movimiento) error {
	f.movs[mov.ID] = *mov
	return nil
}

func (f *fakeMovRepo) GetByID(_ context.Context, id string) (*entity.Movimiento, error) {
	mov, ok := f.movs[id]
	if !ok {
		return nil, nil
	}
	return &mov, nil
}

func (f *fakeMovRepo) Update(_ context.Context, mov *entity.Movimiento) error {
	f.movs[mov.ID] = *mov
	return nil
}

func (f *fakeMovRepo) Delete(_ context.Context, id string) error {
	delete(f.movs, id)
	return nil
}

func (f *fakeMovRepo) ListByItem(_ context.Context, itemID string, _, _ *time.Time, _, _ int) ([]*entity.Movimiento, error) {
	var out []*entity.Movimiento
	for id := range f.movs {
		mov := f.movs[id]
		if mov.InventarioItemID == itemID {
			out = append(out, &mov)
		}
	}
	return out, nil
}

type fakeTipoMovRepo struct {
	tipos map[string]entity.TipoMovimiento
}

func newFakeTipoMovRepo(tipos ...entity.TipoMovimiento) *fakeTipoMovRepo {
	f := &fakeTipoMovRepo{tipos: make(map[string]entity.TipoMovimiento)}
	for _, t := range tipos {
		f.tipos[t.ID] = t
	}
	return f
}

func (f *fakeTipoMovRepo) GetByID(_ context.Context, id string) (*entity.TipoMovimiento, error) {
	t, ok := f.tipos[id]
	if !ok {
		return nil, nil
	}
	return &t, nil
}

func (f *fakeTipoMovRepo) GetByCodigo(_ context.Context, codigo string) (*entity.TipoMovimiento, error) {
	for id := range f.tipos {
		t := f.tipos[id]
		if t.Codigo == codigo {
			return &t, nil
		}
	}
	return nil, nil
}

func (f *fakeTipoMovRepo) List(_ context.Context) ([]*entity.TipoMovimiento, error) {
	var out []*entity.TipoMovimiento
	for id := range f.tipos {
		t := f.tipos[id]
		out = append(out, &t)
	}
	return out, nil
}

type fakeClienteRepo struct {
	clientes map[string]entity.Cliente
}

func newFakeClienteRepo() *fakeClienteRepo {
	return &fakeClienteRepo{clientes: make(map[string]entity.Cliente)}
}

func (f *fakeClienteRepo) Create(_ context.Context, c *entity.Cliente) error {
	f.clientes[c.ID] = *c
	return nil
}

func (f *fakeClienteRepo) GetByID(_ context.Context, id string) (*entity.Cliente, error) {
	c, ok := f.clientes[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (f *fakeClienteRepo) List(_ context.Context, _, _ int) ([]*entity.Cliente, error) {
	out := make([]*entity.Cliente, 0, len(f.clientes))
	for id := range f.clientes {
		c := f.clientes[id]
		out = append(out, &c)
	}
	return out, nil
}

type fakeVentaRepo struct {
	ventas   map[string]entity.Venta
	detalles map[string][]entity.VentaDetalle
}

func newFakeVentaRepo() *fakeVentaRepo {
	return &fakeVentaRepo{
		ventas:   make(map[string]entity.Venta),
		detalles: make(map[string][]entity.VentaDetalle),
	}
}

func (f *fakeVentaRepo) Create(_ context.Context, v *entity.Venta) error {
	f.ventas[v.ID] = *v
	return nil
}

func (f *fakeVentaRepo) CreateDetalle(_ context.Context, d *entity.VentaDetalle) error {
	f.detalles[d.VentaID] = append(f.detalles[d.VentaID], *d)
	return nil
}

func (f *fakeVentaRepo) GetByID(_ context.Context, id string) (*entity.Venta, error) {
	v, ok := f.ventas[id]
	if !ok {
		return nil, nil
	}
	return &v, nil
}

func (f *fakeVentaRepo) GetForUpdate(ctx context.Context, id string) (*entity.Venta, error) {
	return f.GetByID(ctx, id)
}

func (f *fakeVentaRepo) GetDetalles(_ context.Context, ventaID string) ([]*entity.VentaDetalle, error) {
	lineas := f.detalles[ventaID]
	out := make([]*entity.VentaDetalle, 0, len(lineas))
	for i := range lineas {
		d := lineas[i]
		out = append(out, &d)
	}
	return out, nil
}

func (f *fakeVentaRepo) List(_ context.Context, _, _ int) ([]*entity.Venta, error) {
	out := make([]*entity.Venta, 0, len(f.ventas))
	for id := range f.ventas {
		v := f.ventas[id]
		out = append(out, &v)
	}
	return out, nil
}

type fakeConsecutivoRepo struct {
	ultimo int64
}

func (f *fakeConsecutivoRepo) GetForUpdate(_ context.Context) (int64, error) {
	return f.ultimo, nil
}

func (f *fakeConsecutivoRepo) Avanzar(_ context.Context, ultimoNumero int64) error {
	f.ultimo = ultimoNumero
	return nil
}

func (f *fakeConsecutivoRepo) Ultimo(_ context.Context) (int64, error) {
	return f.ultimo, nil
}

type fakeDevolucionRepo struct {
	devoluciones map[string]entity.Devolucion
	detalles     map[string][]entity.DevolucionDetalle
}

func newFakeDevolucionRepo() *fakeDevolucionRepo {
	return &fakeDevolucionRepo{
		devoluciones: make(map[string]entity.Devolucion),
		detalles:     make(map[string][]entity.DevolucionDetalle),
	}
}

func (f *fakeDevolucionRepo) Create(_ context.Context, d *entity.Devolucion) error {
	f.devoluciones[d.ID] = *d
	return nil
}

func (f *fakeDevolucionRepo) CreateDetalle(_ context.Context, d *entity.DevolucionDetalle) error {
	f.detalles[d.DevolucionID] = append(f.detalles[d.DevolucionID], *d)
	return nil
}

func (f *fakeDevolucionRepo) GetByID(_ context.Context, id string) (*entity.Devolucion, error) {
	d, ok := f.devoluciones[id]
	if !ok {
		return nil, nil
	}
	return &d, nil
}

func (f *fakeDevolucionRepo) GetDetalles(_ context.Context, devolucionID string) ([]*entity.DevolucionDetalle, error) {
	lineas := f.detalles[devolucionID]
	out := make([]*entity.DevolucionDetalle, 0, len(lineas))
	for i := range lineas {
		d := lineas[i]
		out = append(out, &d)
	}
	return out, nil
}

func (f *fakeDevolucionRepo) ListByVenta(_ context.Context, ventaID string) ([]*entity.Devolucion, error) {
	var out []*entity.Devolucion
	for id := range f.devoluciones {
		d := f.devoluciones[id]
		if d.VentaID == ventaID {
			out = append(out, &d)
		}
	}
	return out, nil
}

func (f *fakeDevolucionRepo) CantidadDevuelta(_ context.Context, ventaID, itemID string) (int64, error) {
	var total int64
	for id, dev := range f.devoluciones {
		if dev.VentaID != ventaID {
			continue
		}
		for _, d := range f.detalles[id] {
			if d.InventarioItemID == itemID {
				total += d.Cantidad
			}
		}
	}
	return total, nil
}

type fakeTipoCambioRepo struct {
	registros []entity.TipoCambio
}

func (f *fakeTipoCambioRepo) Vigente(_ context.Context) (*entity.TipoCambio, error) {
	if len(f.registros) == 0 {
		return nil, nil
	}
	ultimo := f.registros[0]
	for _, tc := range f.registros[1:] {
		if tc.Fecha.After(ultimo.Fecha) {
			ultimo = tc
		}
	}
	return &ultimo, nil
}

func (f *fakeTipoCambioRepo) Upsert(_ context.Context, tc *entity.TipoCambio) error {
	for i := range f.registros {
		if f.registros[i].Fecha.Equal(tc.Fecha) {
			f.registros[i] = *tc
			return nil
		}
	}
	f.registros = append(f.registros, *tc)
	return nil
}

func (f *fakeTipoCambioRepo) ListByRango(_ context.Context, desde, hasta time.Time) ([]*entity.TipoCambio, error) {
	var out []*entity.TipoCambio
	for i := range f.registros {
		tc := f.registros[i]
		if !tc.Fecha.Before(desde) && !tc.Fecha.After(hasta) {
			out = append(out, &tc)
		}
	}
	return out, nil
}

// fakeBillingTxRunner ejecuta fn contra los fakes y restaura el estado previo
// si fn falla, igual que el rollback de la tx real.
type fakeBillingTxRunner struct {
	mov   *fakeMovRepo
	inv   *fakeInvRepo
	venta *fakeVentaRepo
	cons  *fakeConsecutivoRepo
	dev   *fakeDevolucionRepo
}

func (r *fakeBillingTxRunner) snapshot() func() {
	movSnap := make(map[string]entity.Movimiento, len(r.mov.movs))
	for k, v := range r.mov.movs {
		movSnap[k] = v
	}
	invSnap := make(map[string]entity.InventarioItem, len(r.inv.items))
	for k, v := range r.inv.items {
		invSnap[k] = v
	}
	ventaSnap := make(map[string]entity.Venta, len(r.venta.ventas))
	for k, v := range r.venta.ventas {
		ventaSnap[k] = v
	}
	ventaDetSnap := make(map[string][]entity.VentaDetalle, len(r.venta.detalles))
	for k, v := range r.venta.detalles {
		ventaDetSnap[k] = append([]entity.VentaDetalle(nil), v...)
	}
	devSnap := make(map[string]entity.Devolucion, len(r.dev.devoluciones))
	for k, v := range r.dev.devoluciones {
		devSnap[k] = v
	}
	devDetSnap := make(map[string][]entity.DevolucionDetalle, len(r.dev.detalles))
	for k, v := range r.dev.detalles {
		devDetSnap[k] = append([]entity.DevolucionDetalle(nil), v...)
	}
	consSnap := r.cons.ultimo

	return func() {
		r.mov.movs = movSnap
		r.inv.items = invSnap
		r.venta.ventas = ventaSnap
		r.venta.detalles = ventaDetSnap
		r.dev.devoluciones = devSnap
		r.dev.detalles = devDetSnap
		r.cons.ultimo = consSnap
	}
}

func (r *fakeBillingTxRunner) RunVenta(_ context.Context, fn func(
	movRepo repository.MovimientoRepository,
	invRepo repository.InventarioRepository,
	ventaRepo repository.VentaRepository,
	consRepo repository.ConsecutivoRepository,
) error) error {
	rollback := r.snapshot()
	if err := fn(r.mov, r.inv, r.venta, r.cons); err != nil {
		rollback()
		return err
	}
	return nil
}

func (r *fakeBillingTxRunner) RunDevolucion(_ context.Context, fn func(
	movRepo repository.MovimientoRepository,
	invRepo repository.InventarioRepository,
	ventaRepo repository.VentaRepository,
	devRepo repository.DevolucionRepository,
) error) error {
	rollback := r.snapshot()
	if err := fn(r.mov, r.inv, r.venta, r.dev); err != nil {
		rollback()
		return err
	}
	return nil
}
