package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementación de StockRepository sobre PostgreSQL (usable con pool o tx).
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador de stock. Pasar pool o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

const stockColumns = `product_id, warehouse_id, stock, reserved_stock, available_stock, damaged_stock, minimum_stock, maximum_stock, updated_at`

func scanStock(row pgx.Row, s *entity.ProductStock) error {
	return row.Scan(
		&s.ProductID, &s.WarehouseID, &s.Stock, &s.ReservedStock, &s.AvailableStock,
		&s.DamagedStock, &s.MinimumStock, &s.MaximumStock, &s.UpdatedAt,
	)
}

// Get obtiene la ficha de stock de un producto en una bodega.
// Sin fila devuelve una ficha en cero lista para recibir movimientos.
func (r *StockRepo) Get(productID, warehouseID string) (*entity.ProductStock, error) {
	query := `
		SELECT ` + stockColumns + `
		FROM product_stock WHERE product_id = $1 AND warehouse_id = $2`
	var s entity.ProductStock
	err := scanStock(r.q.QueryRow(context.Background(), query, productID, warehouseID), &s)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entity.ProductStock{ProductID: productID, WarehouseID: warehouseID}, nil
		}
		return nil, fmt.Errorf("get stock: %w", err)
	}
	return &s, nil
}

// GetForUpdate obtiene la ficha y bloquea la fila para update (SELECT FOR UPDATE).
// Si la fila no existe la materializa en cero primero: FOR UPDATE sobre una fila
// inexistente no bloquea nada y dos primeros movimientos concurrentes sobre el
// mismo par se pisarían entre sí.
func (r *StockRepo) GetForUpdate(productID, warehouseID string) (*entity.ProductStock, error) {
	query := `
		SELECT ` + stockColumns + `
		FROM product_stock WHERE product_id = $1 AND warehouse_id = $2
		FOR UPDATE`
	var s entity.ProductStock
	err := scanStock(r.q.QueryRow(context.Background(), query, productID, warehouseID), &s)
	if errors.Is(err, pgx.ErrNoRows) {
		insert := `
			INSERT INTO product_stock (product_id, warehouse_id, stock, reserved_stock, available_stock, damaged_stock, minimum_stock, maximum_stock, updated_at)
			VALUES ($1, $2, 0, 0, 0, 0, 0, 0, now())
			ON CONFLICT (product_id, warehouse_id) DO NOTHING`
		if _, err := r.q.Exec(context.Background(), insert, productID, warehouseID); err != nil {
			return nil, fmt.Errorf("init stock row: %w", err)
		}
		err = scanStock(r.q.QueryRow(context.Background(), query, productID, warehouseID), &s)
	}
	if err != nil {
		return nil, fmt.Errorf("get stock for update: %w", err)
	}
	return &s, nil
}

// Upsert inserta o actualiza la ficha completa (por producto y bodega).
func (r *StockRepo) Upsert(stock *entity.ProductStock) error {
	query := `
		INSERT INTO product_stock (product_id, warehouse_id, stock, reserved_stock, available_stock, damaged_stock, minimum_stock, maximum_stock, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, now())
		ON CONFLICT (product_id, warehouse_id)
		DO UPDATE SET stock = EXCLUDED.stock,
			reserved_stock = EXCLUDED.reserved_stock,
			available_stock = EXCLUDED.available_stock,
			damaged_stock = EXCLUDED.damaged_stock,
			minimum_stock = EXCLUDED.minimum_stock,
			maximum_stock = EXCLUDED.maximum_stock,
			updated_at = now()`
	_, err := r.q.Exec(context.Background(), query,
		stock.ProductID, stock.WarehouseID, stock.Stock, stock.ReservedStock,
		stock.AvailableStock, stock.DamagedStock, stock.MinimumStock, stock.MaximumStock,
	)
	if err != nil {
		return fmt.Errorf("upsert stock: %w", err)
	}
	return nil
}

// ListByWarehouse lista fichas de una bodega, paginadas.
func (r *StockRepo) ListByWarehouse(warehouseID string, limit, offset int) ([]*entity.ProductStock, error) {
	query := `
		SELECT ` + stockColumns + `
		FROM product_stock WHERE warehouse_id = $1
		ORDER BY product_id
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, warehouseID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list stock: %w", err)
	}
	defer rows.Close()

	var stocks []*entity.ProductStock
	for rows.Next() {
		var s entity.ProductStock
		if err := scanStock(rows, &s); err != nil {
			return nil, fmt.Errorf("scan stock: %w", err)
		}
		stocks = append(stocks, &s)
	}
	return stocks, rows.Err()
}

// ListBelowMinimum lista fichas con stock por debajo del mínimo configurado.
func (r *StockRepo) ListBelowMinimum(warehouseID string) ([]*entity.ProductStock, error) {
	query := `
		SELECT ` + stockColumns + `
		FROM product_stock
		WHERE warehouse_id = $1 AND minimum_stock > 0 AND stock < minimum_stock
		ORDER BY product_id`
	rows, err := r.q.Query(context.Background(), query, warehouseID)
	if err != nil {
		return nil, fmt.Errorf("list stock below minimum: %w", err)
	}
	defer rows.Close()

	var stocks []*entity.ProductStock
	for rows.Next() {
		var s entity.ProductStock
		if err := scanStock(rows, &s); err != nil {
			return nil, fmt.Errorf("scan stock: %w", err)
		}
		stocks = append(stocks, &s)
	}
	return stocks, rows.Err()
}
