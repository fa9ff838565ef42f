package sales

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	appinv "github.com/jhoicas/almacen-api/internal/application/inventory"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// PaymentUseCase aplica pagos contra el saldo de compras y ventas.
// Cada pago descuenta BalanceDue bajo lock de la fila de la transacción;
// cuando el saldo llega a cero la transacción pasa a finished. Un pago
// nunca puede exceder el saldo ni ser anterior a la fecha de la transacción.
type PaymentUseCase struct {
	txRunner    appinv.TxRunner
	paymentRepo repository.PaymentRepository
}

// NewPaymentUseCase crea el caso de uso de pagos.
func NewPaymentUseCase(txRunner appinv.TxRunner, paymentRepo repository.PaymentRepository) *PaymentUseCase {
	return &PaymentUseCase{txRunner: txRunner, paymentRepo: paymentRepo}
}

// Create aplica un pago y devuelve el pago registrado junto al saldo resultante.
func (uc *PaymentUseCase) Create(ctx context.Context, req dto.CreatePaymentRequest) (*dto.PaymentResponse, *dto.BalanceResponse, error) {
	if err := dto.Validate(req); err != nil {
		return nil, nil, err
	}
	if !req.Amount.IsPositive() {
		return nil, nil, domain.NewValidationError("amount", domain.ErrInvalidInput)
	}

	now := time.Now()
	payment := &entity.Payment{
		ID:              uuid.NewString(),
		TransactionID:   req.TransactionID,
		TransactionType: req.TransactionType,
		PaymentMethod:   req.PaymentMethod,
		Amount:          req.Amount,
		PaymentDate:     req.PaymentDate,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	var balance *dto.BalanceResponse
	err := uc.txRunner.Run(ctx, func(r appinv.TxRepos) error {
		var err error
		switch req.TransactionType {
		case entity.TransactionTypePurchase:
			balance, err = settlePurchase(r, payment)
		case entity.TransactionTypeSale:
			balance, err = settleSale(r, payment)
		default:
			err = domain.NewValidationError("transaction_type", domain.ErrInvalidInput)
		}
		if err != nil {
			return err
		}
		return r.Payments.Create(payment)
	})
	if err != nil {
		return nil, nil, err
	}
	return paymentToResponse(payment), balance, nil
}

func settlePurchase(r appinv.TxRepos, payment *entity.Payment) (*dto.BalanceResponse, error) {
	purchase, err := r.Purchases.GetForUpdate(payment.TransactionID)
	if err != nil {
		return nil, err
	}
	if payment.PaymentDate.Before(purchase.PurchaseDate) {
		return nil, domain.NewValidationError("payment_date", domain.ErrPaymentDateBeforeTransaction)
	}
	if payment.Amount.GreaterThan(purchase.BalanceDue) {
		return nil, domain.NewValidationError("amount", domain.ErrPaymentExceedsBalance)
	}
	newBalance := purchase.BalanceDue.Sub(payment.Amount)
	status := purchase.Status
	if newBalance.IsZero() {
		status = entity.PurchaseStatusFinished
	}
	if err := r.Purchases.UpdateBalance(purchase.ID, newBalance, status); err != nil {
		return nil, err
	}
	return &dto.BalanceResponse{
		TransactionID:   purchase.ID,
		TransactionType: entity.TransactionTypePurchase,
		Total:           purchase.Total,
		BalanceDue:      newBalance,
		Status:          status,
	}, nil
}

func settleSale(r appinv.TxRepos, payment *entity.Payment) (*dto.BalanceResponse, error) {
	sale, err := r.Sales.GetForUpdate(payment.TransactionID)
	if err != nil {
		return nil, err
	}
	if payment.PaymentDate.Before(sale.SaleDate) {
		return nil, domain.NewValidationError("payment_date", domain.ErrPaymentDateBeforeTransaction)
	}
	if payment.Amount.GreaterThan(sale.BalanceDue) {
		return nil, domain.NewValidationError("amount", domain.ErrPaymentExceedsBalance)
	}
	newBalance := sale.BalanceDue.Sub(payment.Amount)
	status := sale.Status
	if newBalance.IsZero() {
		status = entity.SaleStatusFinished
	}
	if err := r.Sales.UpdateBalance(sale.ID, newBalance, status); err != nil {
		return nil, err
	}
	return &dto.BalanceResponse{
		TransactionID:   sale.ID,
		TransactionType: entity.TransactionTypeSale,
		Total:           sale.Total,
		BalanceDue:      newBalance,
		Status:          status,
	}, nil
}

// Update corrige método o fecha de un pago ya registrado. No re-aplica el
// pago contra el saldo: el monto no es editable.
func (uc *PaymentUseCase) Update(ctx context.Context, id string, req dto.UpdatePaymentRequest) (*dto.PaymentResponse, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}
	payment, err := uc.paymentRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if req.PaymentMethod != nil {
		payment.PaymentMethod = *req.PaymentMethod
	}
	if req.PaymentDate != nil {
		payment.PaymentDate = *req.PaymentDate
	}
	payment.UpdatedAt = time.Now()
	if err := uc.paymentRepo.Update(payment); err != nil {
		return nil, err
	}
	return paymentToResponse(payment), nil
}

// ListByTransaction devuelve los pagos aplicados a una compra o venta.
func (uc *PaymentUseCase) ListByTransaction(ctx context.Context, transactionID, transactionType string) (*dto.PaymentListResponse, error) {
	payments, err := uc.paymentRepo.ListByTransaction(transactionID, transactionType)
	if err != nil {
		return nil, err
	}
	resp := &dto.PaymentListResponse{Items: make([]dto.PaymentResponse, 0, len(payments))}
	for _, p := range payments {
		resp.Items = append(resp.Items, *paymentToResponse(p))
	}
	return resp, nil
}

// List devuelve pagos paginados.
func (uc *PaymentUseCase) List(ctx context.Context, page dto.PageRequest) (*dto.PaymentListResponse, error) {
	page.DefaultPage()
	payments, err := uc.paymentRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	resp := &dto.PaymentListResponse{
		Items: make([]dto.PaymentResponse, 0, len(payments)),
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}
	for _, p := range payments {
		resp.Items = append(resp.Items, *paymentToResponse(p))
	}
	return resp, nil
}
