package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación de SaleRepository sobre PostgreSQL.
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador de ventas. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

const saleColumns = `id, client_id, seller_id, warehouse_id, selling_channel, status, sale_type, sale_date, total, balance_due, created_at, updated_at`

func scanSale(row pgx.Row, s *entity.Sale) error {
	return row.Scan(
		&s.ID, &s.ClientID, &s.SellerID, &s.WarehouseID, &s.SellingChannel, &s.Status,
		&s.SaleType, &s.SaleDate, &s.Total, &s.BalanceDue, &s.CreatedAt, &s.UpdatedAt,
	)
}

// Create persiste la cabecera de la venta junto con todas sus líneas.
func (r *SaleRepo) Create(sale *entity.Sale) error {
	query := `
		INSERT INTO sales (id, client_id, seller_id, warehouse_id, selling_channel, status, sale_type, sale_date, total, balance_due, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		sale.ID, sale.ClientID, sale.SellerID, sale.WarehouseID, sale.SellingChannel,
		sale.Status, sale.SaleType, sale.SaleDate, sale.Total, sale.BalanceDue,
		sale.CreatedAt, sale.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	for i := range sale.Items {
		if err := r.CreateItem(&sale.Items[i]); err != nil {
			return err
		}
	}
	return nil
}

// GetByID obtiene una venta con sus líneas.
func (r *SaleRepo) GetByID(id string) (*entity.Sale, error) {
	return r.get(id, false)
}

// GetForUpdate obtiene la venta bloqueando su fila (saldo/estado) para update.
func (r *SaleRepo) GetForUpdate(id string) (*entity.Sale, error) {
	return r.get(id, true)
}

func (r *SaleRepo) get(id string, forUpdate bool) (*entity.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}
	var s entity.Sale
	err := scanSale(r.q.QueryRow(context.Background(), query, id), &s)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	items, err := r.listItems(s.ID)
	if err != nil {
		return nil, err
	}
	s.Items = items
	return &s, nil
}

// Update actualiza solo la cabecera editable (fecha). Total y saldo se tocan
// únicamente vía UpdateBalance; el estado vía UpdateStatus o UpdateBalance.
func (r *SaleRepo) Update(sale *entity.Sale) error {
	query := `UPDATE sales SET sale_date = $2, updated_at = $3 WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query, sale.ID, sale.SaleDate, sale.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update sale: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateBalance actualiza saldo pendiente y estado en una sola escritura.
func (r *SaleRepo) UpdateBalance(id string, balanceDue decimal.Decimal, status string) error {
	query := `UPDATE sales SET balance_due = $2, status = $3, updated_at = now() WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query, id, balanceDue, status)
	if err != nil {
		return fmt.Errorf("update sale balance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateStatus actualiza el estado de la venta.
func (r *SaleRepo) UpdateStatus(id, status string) error {
	query := `UPDATE sales SET status = $2, updated_at = now() WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query, id, status)
	if err != nil {
		return fmt.Errorf("update sale status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List devuelve ventas con sus líneas, opcionalmente filtradas por estado.
func (r *SaleRepo) List(status string, limit, offset int) ([]*entity.Sale, error) {
	query := `
		SELECT ` + saleColumns + `
		FROM sales
		WHERE ($1 = '' OR status = $1)
		ORDER BY sale_date DESC, id LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, status, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()

	var sales []*entity.Sale
	for rows.Next() {
		var s entity.Sale
		if err := scanSale(rows, &s); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		sales = append(sales, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, s := range sales {
		items, err := r.listItems(s.ID)
		if err != nil {
			return nil, err
		}
		s.Items = items
	}
	return sales, nil
}

// CreateItem inserta una línea de venta.
func (r *SaleRepo) CreateItem(item *entity.SaleItem) error {
	query := `
		INSERT INTO sale_items (id, sale_id, product_id, quantity, dispatched_stock, unit_price, total_price)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.SaleID, item.ProductID, item.Quantity, item.DispatchedStock,
		item.UnitPrice, item.TotalPrice,
	)
	if err != nil {
		return fmt.Errorf("insert sale item: %w", err)
	}
	return nil
}

// UpdateItem actualiza cantidad y precios de una línea (no toca dispatched_stock).
func (r *SaleRepo) UpdateItem(item *entity.SaleItem) error {
	query := `
		UPDATE sale_items SET quantity = $2, unit_price = $3, total_price = $4
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		item.ID, item.Quantity, item.UnitPrice, item.TotalPrice,
	)
	if err != nil {
		return fmt.Errorf("update sale item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteItem elimina una línea de venta.
func (r *SaleRepo) DeleteItem(itemID string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM sale_items WHERE id = $1`, itemID)
	if err != nil {
		return fmt.Errorf("delete sale item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// GetItemForUpdate obtiene una línea bloqueando su fila (dispatched_stock) para update.
func (r *SaleRepo) GetItemForUpdate(itemID string) (*entity.SaleItem, error) {
	query := `
		SELECT id, sale_id, product_id, quantity, dispatched_stock, unit_price, total_price
		FROM sale_items WHERE id = $1
		FOR UPDATE`
	var it entity.SaleItem
	err := r.q.QueryRow(context.Background(), query, itemID).Scan(
		&it.ID, &it.SaleID, &it.ProductID, &it.Quantity, &it.DispatchedStock,
		&it.UnitPrice, &it.TotalPrice,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get sale item for update: %w", err)
	}
	return &it, nil
}

// UpdateItemDispatchedStock actualiza el acumulado despachado de una línea.
func (r *SaleRepo) UpdateItemDispatchedStock(itemID string, dispatchedStock int64) error {
	query := `UPDATE sale_items SET dispatched_stock = $2 WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query, itemID, dispatchedStock)
	if err != nil {
		return fmt.Errorf("update sale item dispatched stock: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *SaleRepo) listItems(saleID string) ([]entity.SaleItem, error) {
	query := `
		SELECT id, sale_id, product_id, quantity, dispatched_stock, unit_price, total_price
		FROM sale_items WHERE sale_id = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, saleID)
	if err != nil {
		return nil, fmt.Errorf("list sale items: %w", err)
	}
	defer rows.Close()

	var items []entity.SaleItem
	for rows.Next() {
		var it entity.SaleItem
		if err := rows.Scan(&it.ID, &it.SaleID, &it.ProductID, &it.Quantity, &it.DispatchedStock,
			&it.UnitPrice, &it.TotalPrice); err != nil {
			return nil, fmt.Errorf("scan sale item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}
