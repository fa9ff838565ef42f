package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.EntryRepository = (*EntryRepo)(nil)

// EntryRepo implementación de EntryRepository sobre PostgreSQL.
type EntryRepo struct {
	q Querier
}

// NewEntryRepository construye el adaptador de entradas. Pasar pool o tx (Querier).
func NewEntryRepository(q Querier) *EntryRepo {
	return &EntryRepo{q: q}
}

// Create persiste la cabecera de la entrada junto con todas sus líneas.
func (r *EntryRepo) Create(entry *entity.Entry) error {
	query := `
		INSERT INTO entries (id, warehouse_keeper_id, supplier_id, warehouse_id, purchase_id, entry_date, invoice_number, note, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		entry.ID, entry.WarehouseKeeperID, entry.SupplierID, entry.WarehouseID, entry.PurchaseID,
		entry.EntryDate, entry.InvoiceNumber, entry.Note, entry.CreatedAt, entry.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert entry: %w", err)
	}
	for i := range entry.Items {
		if err := r.CreateItem(&entry.Items[i]); err != nil {
			return err
		}
	}
	return nil
}

// GetByID obtiene una entrada con sus líneas.
func (r *EntryRepo) GetByID(id string) (*entity.Entry, error) {
	query := `
		SELECT id, warehouse_keeper_id, supplier_id, warehouse_id, COALESCE(purchase_id, ''), entry_date, invoice_number, note, created_at, updated_at
		FROM entries WHERE id = $1`
	var e entity.Entry
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&e.ID, &e.WarehouseKeeperID, &e.SupplierID, &e.WarehouseID, &e.PurchaseID,
		&e.EntryDate, &e.InvoiceNumber, &e.Note, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get entry: %w", err)
	}
	items, err := r.listItems(e.ID)
	if err != nil {
		return nil, err
	}
	e.Items = items
	return &e, nil
}

// Update actualiza solo la cabecera; las líneas se manejan con CreateItem/UpdateItem/DeleteItem.
func (r *EntryRepo) Update(entry *entity.Entry) error {
	query := `
		UPDATE entries SET entry_date = $2, invoice_number = $3, note = $4, updated_at = $5
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		entry.ID, entry.EntryDate, entry.InvoiceNumber, entry.Note, entry.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List devuelve entradas con sus líneas, paginadas por fecha descendente.
func (r *EntryRepo) List(limit, offset int) ([]*entity.Entry, error) {
	query := `
		SELECT id, warehouse_keeper_id, supplier_id, warehouse_id, COALESCE(purchase_id, ''), entry_date, invoice_number, note, created_at, updated_at
		FROM entries ORDER BY entry_date DESC, id LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	defer rows.Close()

	var entries []*entity.Entry
	for rows.Next() {
		var e entity.Entry
		if err := rows.Scan(&e.ID, &e.WarehouseKeeperID, &e.SupplierID, &e.WarehouseID, &e.PurchaseID,
			&e.EntryDate, &e.InvoiceNumber, &e.Note, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		entries = append(entries, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, e := range entries {
		items, err := r.listItems(e.ID)
		if err != nil {
			return nil, err
		}
		e.Items = items
	}
	return entries, nil
}

// CreateItem inserta una línea de entrada.
func (r *EntryRepo) CreateItem(item *entity.EntryItem) error {
	query := `
		INSERT INTO entry_items (id, entry_id, product_id, purchase_item_id, quantity, unit_price, total_price)
		VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.EntryID, item.ProductID, item.PurchaseItemID,
		item.Quantity, item.UnitPrice, item.TotalPrice,
	)
	if err != nil {
		return fmt.Errorf("insert entry item: %w", err)
	}
	return nil
}

// UpdateItem actualiza cantidad y precios de una línea.
func (r *EntryRepo) UpdateItem(item *entity.EntryItem) error {
	query := `
		UPDATE entry_items SET quantity = $2, unit_price = $3, total_price = $4
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		item.ID, item.Quantity, item.UnitPrice, item.TotalPrice,
	)
	if err != nil {
		return fmt.Errorf("update entry item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteItem elimina una línea de entrada.
func (r *EntryRepo) DeleteItem(itemID string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM entry_items WHERE id = $1`, itemID)
	if err != nil {
		return fmt.Errorf("delete entry item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *EntryRepo) listItems(entryID string) ([]entity.EntryItem, error) {
	query := `
		SELECT id, entry_id, product_id, COALESCE(purchase_item_id, ''), quantity, unit_price, total_price
		FROM entry_items WHERE entry_id = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, entryID)
	if err != nil {
		return nil, fmt.Errorf("list entry items: %w", err)
	}
	defer rows.Close()

	var items []entity.EntryItem
	for rows.Next() {
		var it entity.EntryItem
		if err := rows.Scan(&it.ID, &it.EntryID, &it.ProductID, &it.PurchaseItemID,
			&it.Quantity, &it.UnitPrice, &it.TotalPrice); err != nil {
			return nil, fmt.Errorf("scan entry item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}
