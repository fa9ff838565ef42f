package repository

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// StockRepository define el puerto para consultar/actualizar la ficha de stock
// por producto+bodega. Usado dentro de transacciones para garantizar consistencia.
type StockRepository interface {
	Get(productID, warehouseID string) (*entity.ProductStock, error)
	// GetForUpdate bloquea la fila para update (SELECT FOR UPDATE).
	GetForUpdate(productID, warehouseID string) (*entity.ProductStock, error)
	Upsert(stock *entity.ProductStock) error
	ListByWarehouse(warehouseID string, limit, offset int) ([]*entity.ProductStock, error)
	// ListBelowMinimum lista fichas con stock por debajo del mínimo configurado.
	ListBelowMinimum(warehouseID string) ([]*entity.ProductStock, error)
}
