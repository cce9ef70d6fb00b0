package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/ncastellon/comercial-api/internal/domain"
	"github.com/ncastellon/comercial-api/internal/domain/entity"
	"github.com/ncastellon/comercial-api/internal/domain/repository"
)

var _ repository.VentaRepository = (*VentaRepo)(nil)

// VentaRepo implementación sobre PostgreSQL (usable con pool o tx).
type VentaRepo struct {
	q Querier
}

// NewVentaRepository construye el adaptador. Pasar pool o tx (Querier).
func NewVentaRepository(q Querier) *VentaRepo {
	return &VentaRepo{q: q}
}

const columnasVenta = `
	id, cliente_id, numero_factura, numero_factura_fin, moneda, tipo_pago,
	tipo_cambio_valor, total_cordoba, total_dolar, observacion, usuario,
	created_at, updated_at`

// Create persiste la cabecera de una venta.
func (r *VentaRepo) Create(ctx context.Context, venta *entity.Venta) error {
	if venta.ID == "" {
		venta.ID = uuid.New().String()
	}
	query := `
		INSERT INTO ventas (id, cliente_id, numero_factura, numero_factura_fin, moneda,
			tipo_pago, tipo_cambio_valor, total_cordoba, total_dolar,
			observacion, usuario, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(ctx, query,
		venta.ID, venta.ClienteID, venta.NumeroFactura, venta.NumeroFacturaFin,
		venta.Moneda, venta.TipoPago, venta.TipoCambioValor,
		venta.TotalCordoba, venta.TotalDolar,
		venta.Observacion, venta.Usuario, venta.CreatedAt, venta.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("create venta: %w", err)
	}
	return nil
}

// CreateDetalle persiste una línea de venta.
func (r *VentaRepo) CreateDetalle(ctx context.Context, detalle *entity.VentaDetalle) error {
	if detalle.ID == "" {
		detalle.ID = uuid.New().String()
	}
	query := `
		INSERT INTO venta_detalles (id, venta_id, inventario_item_id, cantidad,
			precio_unitario_cordoba, subtotal_cordoba)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query,
		detalle.ID, detalle.VentaID, detalle.InventarioItemID,
		detalle.Cantidad, detalle.PrecioUnitarioCordoba, detalle.SubtotalCordoba,
	)
	if err != nil {
		return fmt.Errorf("create venta detalle: %w", err)
	}
	return nil
}

func scanVenta(row pgx.Row) (*entity.Venta, error) {
	var v entity.Venta
	err := row.Scan(
		&v.ID, &v.ClienteID, &v.NumeroFactura, &v.NumeroFacturaFin, &v.Moneda,
		&v.TipoPago, &v.TipoCambioValor, &v.TotalCordoba, &v.TotalDolar,
		&v.Observacion, &v.Usuario, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// GetByID obtiene una venta por ID. Devuelve nil, nil si no existe.
func (r *VentaRepo) GetByID(ctx context.Context, id string) (*entity.Venta, error) {
	query := `SELECT` + columnasVenta + ` FROM ventas WHERE id = $1`
	venta, err := scanVenta(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get venta: %w", err)
	}
	return venta, nil
}

// GetForUpdate obtiene la venta bloqueando la cabecera (SELECT FOR UPDATE).
// Devoluciones concurrentes contra la misma venta se serializan aquí.
func (r *VentaRepo) GetForUpdate(ctx context.Context, id string) (*entity.Venta, error) {
	query := `SELECT` + columnasVenta + ` FROM ventas WHERE id = $1 FOR UPDATE`
	venta, err := scanVenta(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get venta for update: %w", err)
	}
	return venta, nil
}

// GetDetalles obtiene las líneas de una venta.
func (r *VentaRepo) GetDetalles(ctx context.Context, ventaID string) ([]*entity.VentaDetalle, error) {
	query := `
		SELECT id, venta_id, inventario_item_id, cantidad, precio_unitario_cordoba, subtotal_cordoba
		FROM venta_detalles WHERE venta_id = $1`
	rows, err := r.q.Query(ctx, query, ventaID)
	if err != nil {
		return nil, fmt.Errorf("get venta detalles: %w", err)
	}
	defer rows.Close()
	var list []*entity.VentaDetalle
	for rows.Next() {
		var d entity.VentaDetalle
		if err := rows.Scan(&d.ID, &d.VentaID, &d.InventarioItemID, &d.Cantidad,
			&d.PrecioUnitarioCordoba, &d.SubtotalCordoba); err != nil {
			return nil, fmt.Errorf("scan venta detalle: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

// List lista ventas paginadas, las más recientes primero.
func (r *VentaRepo) List(ctx context.Context, limit, offset int) ([]*entity.Venta, error) {
	query := `SELECT` + columnasVenta + ` FROM ventas ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list ventas: %w", err)
	}
	defer rows.Close()
	var list []*entity.Venta
	for rows.Next() {
		venta, err := scanVenta(rows)
		if err != nil {
			return nil, fmt.Errorf("scan venta: %w", err)
		}
		list = append(list, venta)
	}
	return list, rows.Err()
}
