package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/ncastellon/comercial-api/internal/domain"
	"github.com/ncastellon/comercial-api/internal/domain/entity"
	"github.com/ncastellon/comercial-api/internal/domain/repository"
)

var _ repository.InventarioRepository = (*InventarioRepo)(nil)

// InventarioRepo implementación sobre PostgreSQL (usable con pool o tx).
type InventarioRepo struct {
	q Querier
}

// NewInventarioRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInventarioRepository(q Querier) *InventarioRepo {
	return &InventarioRepo{q: q}
}

const columnasInventario = `
	id, codigo, nombre, descripcion, stock_actual,
	costo_promedio_cordoba, costo_promedio_dolar,
	precio_venta_promedio_cordoba, precio_venta_promedio_dolar,
	precio_venta_sugerido_cordoba, precio_venta_sugerido_dolar,
	created_at, updated_at`

// Create persiste un artículo nuevo del catálogo.
func (r *InventarioRepo) Create(ctx context.Context, item *entity.InventarioItem) error {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	query := `
		INSERT INTO inventario_items (id, codigo, nombre, descripcion, stock_actual,
			costo_promedio_cordoba, costo_promedio_dolar,
			precio_venta_promedio_cordoba, precio_venta_promedio_dolar,
			precio_venta_sugerido_cordoba, precio_venta_sugerido_dolar,
			created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(ctx, query,
		item.ID, item.Codigo, item.Nombre, item.Descripcion, item.StockActual,
		item.CostoPromedioCordoba, item.CostoPromedioDolar,
		item.PrecioVentaPromedioCordoba, item.PrecioVentaPromedioDolar,
		item.PrecioVentaSugeridoCordoba, item.PrecioVentaSugeridoDolar,
		item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("create inventario item: %w", err)
	}
	return nil
}

func (r *InventarioRepo) scanItem(row pgx.Row) (*entity.InventarioItem, error) {
	var item entity.InventarioItem
	err := row.Scan(
		&item.ID, &item.Codigo, &item.Nombre, &item.Descripcion, &item.StockActual,
		&item.CostoPromedioCordoba, &item.CostoPromedioDolar,
		&item.PrecioVentaPromedioCordoba, &item.PrecioVentaPromedioDolar,
		&item.PrecioVentaSugeridoCordoba, &item.PrecioVentaSugeridoDolar,
		&item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

// GetByID obtiene un artículo por ID. Devuelve nil, nil si no existe.
func (r *InventarioRepo) GetByID(ctx context.Context, id string) (*entity.InventarioItem, error) {
	query := `SELECT` + columnasInventario + ` FROM inventario_items WHERE id = $1`
	item, err := r.scanItem(r.q.QueryRow(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("get inventario item: %w", err)
	}
	return item, nil
}

// GetForUpdate obtiene el artículo bloqueando la fila (SELECT FOR UPDATE).
// Movimientos concurrentes contra el mismo artículo se serializan aquí.
func (r *InventarioRepo) GetForUpdate(ctx context.Context, id string) (*entity.InventarioItem, error) {
	query := `SELECT` + columnasInventario + ` FROM inventario_items WHERE id = $1 FOR UPDATE`
	item, err := r.scanItem(r.q.QueryRow(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("get inventario item for update: %w", err)
	}
	return item, nil
}

// List lista artículos paginados por código.
func (r *InventarioRepo) List(ctx context.Context, limit, offset int) ([]*entity.InventarioItem, error) {
	query := `SELECT` + columnasInventario + ` FROM inventario_items ORDER BY codigo LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list inventario items: %w", err)
	}
	defer rows.Close()
	var list []*entity.InventarioItem
	for rows.Next() {
		item, err := r.scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan inventario item: %w", err)
		}
		list = append(list, item)
	}
	return list, rows.Err()
}

// UpdateStock fija el stock actual del artículo. Solo el libro de movimientos
// llama aquí, dentro de una transacción con la fila ya bloqueada.
func (r *InventarioRepo) UpdateStock(ctx context.Context, id string, stockActual int64) error {
	query := `UPDATE inventario_items SET stock_actual = $2, updated_at = now() WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, id, stockActual)
	if err != nil {
		return fmt.Errorf("update stock: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrArticuloDesconocido
	}
	return nil
}

// UpdateCostos fija los costos promedio del artículo en ambas monedas.
func (r *InventarioRepo) UpdateCostos(ctx context.Context, id string, costoCordoba, costoDolar decimal.Decimal) error {
	query := `
		UPDATE inventario_items
		SET costo_promedio_cordoba = $2, costo_promedio_dolar = $3, updated_at = now()
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, id, costoCordoba, costoDolar)
	if err != nil {
		return fmt.Errorf("update costos: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrArticuloDesconocido
	}
	return nil
}
