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

var _ repository.PurchaseRepository = (*PurchaseRepo)(nil)

// PurchaseRepo implementación de PurchaseRepository sobre PostgreSQL.
type PurchaseRepo struct {
	q Querier
}

// NewPurchaseRepository construye el adaptador de compras. Pasar pool o tx (Querier).
func NewPurchaseRepository(q Querier) *PurchaseRepo {
	return &PurchaseRepo{q: q}
}

const purchaseColumns = `id, buyer_id, supplier_id, warehouse_id, purchase_type, status, purchase_date, invoice_number, total, balance_due, created_at, updated_at`

func scanPurchase(row pgx.Row, p *entity.Purchase) error {
	return row.Scan(
		&p.ID, &p.BuyerID, &p.SupplierID, &p.WarehouseID, &p.PurchaseType, &p.Status,
		&p.PurchaseDate, &p.InvoiceNumber, &p.Total, &p.BalanceDue, &p.CreatedAt, &p.UpdatedAt,
	)
}

// Create persiste la cabecera de la compra junto con todas sus líneas.
func (r *PurchaseRepo) Create(purchase *entity.Purchase) error {
	query := `
		INSERT INTO purchases (id, buyer_id, supplier_id, warehouse_id, purchase_type, status, purchase_date, invoice_number, total, balance_due, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		purchase.ID, purchase.BuyerID, purchase.SupplierID, purchase.WarehouseID,
		purchase.PurchaseType, purchase.Status, purchase.PurchaseDate, purchase.InvoiceNumber,
		purchase.Total, purchase.BalanceDue, purchase.CreatedAt, purchase.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert purchase: %w", err)
	}
	for i := range purchase.Items {
		if err := r.CreateItem(&purchase.Items[i]); err != nil {
			return err
		}
	}
	return nil
}

// GetByID obtiene una compra con sus líneas.
func (r *PurchaseRepo) GetByID(id string) (*entity.Purchase, error) {
	return r.get(id, false)
}

// GetForUpdate obtiene la compra bloqueando su fila (saldo) para update.
func (r *PurchaseRepo) GetForUpdate(id string) (*entity.Purchase, error) {
	return r.get(id, true)
}

func (r *PurchaseRepo) get(id string, forUpdate bool) (*entity.Purchase, error) {
	query := `SELECT ` + purchaseColumns + ` FROM purchases WHERE id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}
	var p entity.Purchase
	err := scanPurchase(r.q.QueryRow(context.Background(), query, id), &p)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get purchase: %w", err)
	}
	items, err := r.listItems(p.ID)
	if err != nil {
		return nil, err
	}
	p.Items = items
	return &p, nil
}

// Update actualiza solo la cabecera editable (fecha, factura). Total y saldo
// se tocan únicamente vía UpdateBalance.
func (r *PurchaseRepo) Update(purchase *entity.Purchase) error {
	query := `
		UPDATE purchases SET purchase_date = $2, invoice_number = $3, updated_at = $4
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		purchase.ID, purchase.PurchaseDate, purchase.InvoiceNumber, purchase.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update purchase: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateBalance actualiza saldo pendiente y estado en una sola escritura.
func (r *PurchaseRepo) UpdateBalance(id string, balanceDue decimal.Decimal, status string) error {
	query := `UPDATE purchases SET balance_due = $2, status = $3, updated_at = now() WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query, id, balanceDue, status)
	if err != nil {
		return fmt.Errorf("update purchase balance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List devuelve compras con sus líneas, opcionalmente filtradas por estado.
func (r *PurchaseRepo) List(status string, limit, offset int) ([]*entity.Purchase, error) {
	query := `
		SELECT ` + purchaseColumns + `
		FROM purchases
		WHERE ($1 = '' OR status = $1)
		ORDER BY purchase_date DESC, id LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, status, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list purchases: %w", err)
	}
	defer rows.Close()

	var purchases []*entity.Purchase
	for rows.Next() {
		var p entity.Purchase
		if err := scanPurchase(rows, &p); err != nil {
			return nil, fmt.Errorf("scan purchase: %w", err)
		}
		purchases = append(purchases, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, p := range purchases {
		items, err := r.listItems(p.ID)
		if err != nil {
			return nil, err
		}
		p.Items = items
	}
	return purchases, nil
}

// CreateItem inserta una línea de compra.
func (r *PurchaseRepo) CreateItem(item *entity.PurchaseItem) error {
	query := `
		INSERT INTO purchase_items (id, purchase_id, product_id, quantity, entered_stock, unit_price, total_price)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.PurchaseID, item.ProductID, item.Quantity, item.EnteredStock,
		item.UnitPrice, item.TotalPrice,
	)
	if err != nil {
		return fmt.Errorf("insert purchase item: %w", err)
	}
	return nil
}

// UpdateItem actualiza cantidad y precios de una línea (no toca entered_stock).
func (r *PurchaseRepo) UpdateItem(item *entity.PurchaseItem) error {
	query := `
		UPDATE purchase_items SET quantity = $2, unit_price = $3, total_price = $4
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		item.ID, item.Quantity, item.UnitPrice, item.TotalPrice,
	)
	if err != nil {
		return fmt.Errorf("update purchase item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteItem elimina una línea de compra.
func (r *PurchaseRepo) DeleteItem(itemID string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM purchase_items WHERE id = $1`, itemID)
	if err != nil {
		return fmt.Errorf("delete purchase item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// GetItemForUpdate obtiene una línea bloqueando su fila (entered_stock) para update.
func (r *PurchaseRepo) GetItemForUpdate(itemID string) (*entity.PurchaseItem, error) {
	query := `
		SELECT id, purchase_id, product_id, quantity, entered_stock, unit_price, total_price
		FROM purchase_items WHERE id = $1
		FOR UPDATE`
	var it entity.PurchaseItem
	err := r.q.QueryRow(context.Background(), query, itemID).Scan(
		&it.ID, &it.PurchaseID, &it.ProductID, &it.Quantity, &it.EnteredStock,
		&it.UnitPrice, &it.TotalPrice,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get purchase item for update: %w", err)
	}
	return &it, nil
}

// UpdateItemEnteredStock actualiza el acumulado recibido de una línea.
func (r *PurchaseRepo) UpdateItemEnteredStock(itemID string, enteredStock int64) error {
	query := `UPDATE purchase_items SET entered_stock = $2 WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query, itemID, enteredStock)
	if err != nil {
		return fmt.Errorf("update purchase item entered stock: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PurchaseRepo) listItems(purchaseID string) ([]entity.PurchaseItem, error) {
	query := `
		SELECT id, purchase_id, product_id, quantity, entered_stock, unit_price, total_price
		FROM purchase_items WHERE purchase_id = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, purchaseID)
	if err != nil {
		return nil, fmt.Errorf("list purchase items: %w", err)
	}
	defer rows.Close()

	var items []entity.PurchaseItem
	for rows.Next() {
		var it entity.PurchaseItem
		if err := rows.Scan(&it.ID, &it.PurchaseID, &it.ProductID, &it.Quantity, &it.EnteredStock,
			&it.UnitPrice, &it.TotalPrice); err != nil {
			return nil, fmt.Errorf("scan purchase item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}
