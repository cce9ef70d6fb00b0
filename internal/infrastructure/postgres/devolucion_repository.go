package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/ncastellon/comercial-api/internal/domain/entity"
	"github.com/ncastellon/comercial-api/internal/domain/repository"
)

var _ repository.DevolucionRepository = (*DevolucionRepo)(nil)

// DevolucionRepo implementación sobre PostgreSQL (usable con pool o tx).
type DevolucionRepo struct {
	q Querier
}

// NewDevolucionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewDevolucionRepository(q Querier) *DevolucionRepo {
	return &DevolucionRepo{q: q}
}

const columnasDevolucion = `
	id, venta_id, estado, tipo_cambio_valor, total_cordoba, observacion, usuario, created_at`

// Create persiste la cabecera de una devolución.
func (r *DevolucionRepo) Create(ctx context.Context, dev *entity.Devolucion) error {
	if dev.ID == "" {
		dev.ID = uuid.New().String()
	}
	query := `
		INSERT INTO devoluciones (id, venta_id, estado, tipo_cambio_valor,
			total_cordoba, observacion, usuario, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		dev.ID, dev.VentaID, dev.Estado, dev.TipoCambioValor,
		dev.TotalCordoba, dev.Observacion, dev.Usuario, dev.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create devolucion: %w", err)
	}
	return nil
}

// CreateDetalle persiste una línea devuelta.
func (r *DevolucionRepo) CreateDetalle(ctx context.Context, detalle *entity.DevolucionDetalle) error {
	if detalle.ID == "" {
		detalle.ID = uuid.New().String()
	}
	query := `
		INSERT INTO devolucion_detalles (id, devolucion_id, inventario_item_id, cantidad, precio_unitario_cordoba)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(ctx, query,
		detalle.ID, detalle.DevolucionID, detalle.InventarioItemID,
		detalle.Cantidad, detalle.PrecioUnitarioCordoba,
	)
	if err != nil {
		return fmt.Errorf("create devolucion detalle: %w", err)
	}
	return nil
}

func scanDevolucion(row pgx.Row) (*entity.Devolucion, error) {
	var d entity.Devolucion
	err := row.Scan(
		&d.ID, &d.VentaID, &d.Estado, &d.TipoCambioValor,
		&d.TotalCordoba, &d.Observacion, &d.Usuario, &d.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// GetByID obtiene una devolución por ID. Devuelve nil, nil si no existe.
func (r *DevolucionRepo) GetByID(ctx context.Context, id string) (*entity.Devolucion, error) {
	query := `SELECT` + columnasDevolucion + ` FROM devoluciones WHERE id = $1`
	dev, err := scanDevolucion(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get devolucion: %w", err)
	}
	return dev, nil
}

// GetDetalles obtiene las líneas de una devolución.
func (r *DevolucionRepo) GetDetalles(ctx context.Context, devolucionID string) ([]*entity.DevolucionDetalle, error) {
	query := `
		SELECT id, devolucion_id, inventario_item_id, cantidad, precio_unitario_cordoba
		FROM devolucion_detalles WHERE devolucion_id = $1`
	rows, err := r.q.Query(ctx, query, devolucionID)
	if err != nil {
		return nil, fmt.Errorf("get devolucion detalles: %w", err)
	}
	defer rows.Close()
	var list []*entity.DevolucionDetalle
	for rows.Next() {
		var d entity.DevolucionDetalle
		if err := rows.Scan(&d.ID, &d.DevolucionID, &d.InventarioItemID,
			&d.Cantidad, &d.PrecioUnitarioCordoba); err != nil {
			return nil, fmt.Errorf("scan devolucion detalle: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

// ListByVenta lista las devoluciones registradas contra una venta.
func (r *DevolucionRepo) ListByVenta(ctx context.Context, ventaID string) ([]*entity.Devolucion, error) {
	query := `SELECT` + columnasDevolucion + ` FROM devoluciones WHERE venta_id = $1 ORDER BY created_at`
	rows, err := r.q.Query(ctx, query, ventaID)
	if err != nil {
		return nil, fmt.Errorf("list devoluciones: %w", err)
	}
	defer rows.Close()
	var list []*entity.Devolucion
	for rows.Next() {
		dev, err := scanDevolucion(rows)
		if err != nil {
			return nil, fmt.Errorf("scan devolucion: %w", err)
		}
		list = append(list, dev)
	}
	return list, rows.Err()
}

// CantidadDevuelta suma las unidades de un artículo ya devueltas contra una
// venta, a través de todas sus devoluciones confirmadas.
func (r *DevolucionRepo) CantidadDevuelta(ctx context.Context, ventaID, itemID string) (int64, error) {
	query := `
		SELECT COALESCE(SUM(dd.cantidad), 0)
		FROM devolucion_detalles dd
		JOIN devoluciones d ON d.id = dd.devolucion_id
		WHERE d.venta_id = $1 AND dd.inventario_item_id = $2 AND d.estado = $3`
	var total int64
	err := r.q.QueryRow(ctx, query, ventaID, itemID, entity.DevolucionEstadoConfirmada).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("cantidad devuelta: %w", err)
	}
	return total, nil
}
