package repository

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// PaymentRepository define el puerto de persistencia para Payment.
// Una transacción admite varios pagos: no hay unicidad por (transaction_id, transaction_type).
type PaymentRepository interface {
	Create(payment *entity.Payment) error
	GetByID(id string) (*entity.Payment, error)
	Update(payment *entity.Payment) error
	ListByTransaction(transactionID, transactionType string) ([]*entity.Payment, error)
	List(limit, offset int) ([]*entity.Payment, error)
}
