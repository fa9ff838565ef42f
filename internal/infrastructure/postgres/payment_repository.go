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

var _ repository.PaymentRepository = (*PaymentRepo)(nil)

// PaymentRepo implementación de PaymentRepository sobre PostgreSQL.
type PaymentRepo struct {
	q Querier
}

// NewPaymentRepository construye el adaptador de pagos. Pasar pool o tx (Querier).
func NewPaymentRepository(q Querier) *PaymentRepo {
	return &PaymentRepo{q: q}
}

const paymentColumns = `id, transaction_id, transaction_type, payment_method, amount, payment_date, created_at, updated_at`

func scanPayment(row pgx.Row, p *entity.Payment) error {
	return row.Scan(
		&p.ID, &p.TransactionID, &p.TransactionType, &p.PaymentMethod,
		&p.Amount, &p.PaymentDate, &p.CreatedAt, &p.UpdatedAt,
	)
}

// Create persiste un nuevo pago.
func (r *PaymentRepo) Create(payment *entity.Payment) error {
	query := `
		INSERT INTO payments (id, transaction_id, transaction_type, payment_method, amount, payment_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		payment.ID, payment.TransactionID, payment.TransactionType, payment.PaymentMethod,
		payment.Amount, payment.PaymentDate, payment.CreatedAt, payment.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert payment: %w", err)
	}
	return nil
}

// GetByID obtiene un pago por ID.
func (r *PaymentRepo) GetByID(id string) (*entity.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE id = $1`
	var p entity.Payment
	err := scanPayment(r.q.QueryRow(context.Background(), query, id), &p)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get payment: %w", err)
	}
	return &p, nil
}

// Update corrige método y fecha de un pago (el monto no es editable).
func (r *PaymentRepo) Update(payment *entity.Payment) error {
	query := `
		UPDATE payments SET payment_method = $2, payment_date = $3, updated_at = $4
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		payment.ID, payment.PaymentMethod, payment.PaymentDate, payment.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update payment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListByTransaction devuelve los pagos aplicados a una transacción.
func (r *PaymentRepo) ListByTransaction(transactionID, transactionType string) ([]*entity.Payment, error) {
	query := `
		SELECT ` + paymentColumns + `
		FROM payments WHERE transaction_id = $1 AND transaction_type = $2
		ORDER BY payment_date, created_at`
	rows, err := r.q.Query(context.Background(), query, transactionID, transactionType)
	if err != nil {
		return nil, fmt.Errorf("list payments by transaction: %w", err)
	}
	defer rows.Close()
	return collectPayments(rows)
}

// List devuelve pagos paginados por fecha descendente.
func (r *PaymentRepo) List(limit, offset int) ([]*entity.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments ORDER BY payment_date DESC, id LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	defer rows.Close()
	return collectPayments(rows)
}

func collectPayments(rows pgx.Rows) ([]*entity.Payment, error) {
	var payments []*entity.Payment
	for rows.Next() {
		var p entity.Payment
		if err := scanPayment(rows, &p); err != nil {
			return nil, fmt.Errorf("scan payment: %w", err)
		}
		payments = append(payments, &p)
	}
	return payments, rows.Err()
}
