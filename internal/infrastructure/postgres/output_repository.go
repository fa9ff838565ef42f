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

var _ repository.OutputRepository = (*OutputRepo)(nil)

// OutputRepo implementación de OutputRepository sobre PostgreSQL.
type OutputRepo struct {
	q Querier
}

// NewOutputRepository construye el adaptador de salidas. Pasar pool o tx (Querier).
func NewOutputRepository(q Querier) *OutputRepo {
	return &OutputRepo{q: q}
}

// Create persiste la cabecera de la salida junto con todas sus líneas.
func (r *OutputRepo) Create(output *entity.Output) error {
	query := `
		INSERT INTO outputs (id, warehouse_keeper_id, client_id, warehouse_id, output_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		output.ID, output.WarehouseKeeperID, output.ClientID, output.WarehouseID,
		output.OutputDate, output.CreatedAt, output.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert output: %w", err)
	}
	for i := range output.Items {
		if err := r.CreateItem(&output.Items[i]); err != nil {
			return err
		}
	}
	return nil
}

// GetByID obtiene una salida con sus líneas.
func (r *OutputRepo) GetByID(id string) (*entity.Output, error) {
	query := `
		SELECT id, warehouse_keeper_id, client_id, warehouse_id, output_date, created_at, updated_at
		FROM outputs WHERE id = $1`
	var o entity.Output
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&o.ID, &o.WarehouseKeeperID, &o.ClientID, &o.WarehouseID,
		&o.OutputDate, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get output: %w", err)
	}
	items, err := r.listItems(o.ID)
	if err != nil {
		return nil, err
	}
	o.Items = items
	return &o, nil
}

// Update actualiza solo la cabecera.
func (r *OutputRepo) Update(output *entity.Output) error {
	query := `UPDATE outputs SET output_date = $2, updated_at = $3 WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query, output.ID, output.OutputDate, output.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update output: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List devuelve salidas con sus líneas, paginadas por fecha descendente.
func (r *OutputRepo) List(limit, offset int) ([]*entity.Output, error) {
	query := `
		SELECT id, warehouse_keeper_id, client_id, warehouse_id, output_date, created_at, updated_at
		FROM outputs ORDER BY output_date DESC, id LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list outputs: %w", err)
	}
	defer rows.Close()

	var outputs []*entity.Output
	for rows.Next() {
		var o entity.Output
		if err := rows.Scan(&o.ID, &o.WarehouseKeeperID, &o.ClientID, &o.WarehouseID,
			&o.OutputDate, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan output: %w", err)
		}
		outputs = append(outputs, &o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, o := range outputs {
		items, err := r.listItems(o.ID)
		if err != nil {
			return nil, err
		}
		o.Items = items
	}
	return outputs, nil
}

// CreateItem inserta una línea de salida.
func (r *OutputRepo) CreateItem(item *entity.OutputItem) error {
	query := `
		INSERT INTO output_items (id, output_id, product_id, sale_item_id, quantity)
		VALUES ($1, $2, $3, NULLIF($4, ''), $5)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.OutputID, item.ProductID, item.SaleItemID, item.Quantity,
	)
	if err != nil {
		return fmt.Errorf("insert output item: %w", err)
	}
	return nil
}

// UpdateItem actualiza la cantidad de una línea.
func (r *OutputRepo) UpdateItem(item *entity.OutputItem) error {
	query := `UPDATE output_items SET quantity = $2 WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query, item.ID, item.Quantity)
	if err != nil {
		return fmt.Errorf("update output item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteItem elimina una línea de salida.
func (r *OutputRepo) DeleteItem(itemID string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM output_items WHERE id = $1`, itemID)
	if err != nil {
		return fmt.Errorf("delete output item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *OutputRepo) listItems(outputID string) ([]entity.OutputItem, error) {
	query := `
		SELECT id, output_id, product_id, COALESCE(sale_item_id, ''), quantity
		FROM output_items WHERE output_id = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, outputID)
	if err != nil {
		return nil, fmt.Errorf("list output items: %w", err)
	}
	defer rows.Close()

	var items []entity.OutputItem
	for rows.Next() {
		var it entity.OutputItem
		if err := rows.Scan(&it.ID, &it.OutputID, &it.ProductID, &it.SaleItemID, &it.Quantity); err != nil {
			return nil, fmt.Errorf("scan output item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}
