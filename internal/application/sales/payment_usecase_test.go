package sales_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	appinv "github.com/jhoicas/almacen-api/internal/application/inventory"
	"github.com/jhoicas/almacen-api/internal/application/sales"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

type paymentEnv struct {
	purchases *fakePurchaseRepo
	sales     *fakeSaleRepo
	payments  *fakePaymentRepo
	uc        *sales.PaymentUseCase
}

func newPaymentEnv() *paymentEnv {
	purchases := newFakePurchaseRepo()
	saleRepo := newFakeSaleRepo()
	payments := newFakePaymentRepo()
	runner := &fakeTxRunner{repos: appinv.TxRepos{
		Stock:     newFakeStockRepo(),
		Purchases: purchases,
		Sales:     saleRepo,
		Payments:  payments,
	}}
	return &paymentEnv{
		purchases: purchases,
		sales:     saleRepo,
		payments:  payments,
		uc:        sales.NewPaymentUseCase(runner, payments),
	}
}

var fechaCompra = time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

// seedPurchase registra una compra con saldo pendiente de 100.
func (e *paymentEnv) seedPurchase(t *testing.T) {
	t.Helper()
	require.NoError(t, e.purchases.Create(&entity.Purchase{
		ID:           idPurchase,
		Status:       entity.PurchaseStatusDone,
		PurchaseDate: fechaCompra,
		Total:        decimal.NewFromInt(100),
		BalanceDue:   decimal.NewFromInt(100),
	}))
}

func paymentRequest(amount int64, date time.Time) dto.CreatePaymentRequest {
	return dto.CreatePaymentRequest{
		TransactionID:   idPurchase,
		TransactionType: entity.TransactionTypePurchase,
		PaymentMethod:   "cash",
		Amount:          decimal.NewFromInt(amount),
		PaymentDate:     date,
	}
}

func TestPaymentCreate_DescuentaSaldo(t *testing.T) {
	env := newPaymentEnv()
	env.seedPurchase(t)

	payment, balance, err := env.uc.Create(context.Background(), paymentRequest(40, fechaCompra.AddDate(0, 0, 5)))
	require.NoError(t, err)

	assert.True(t, payment.Amount.Equal(decimal.NewFromInt(40)))
	assert.True(t, balance.BalanceDue.Equal(decimal.NewFromInt(60)))
	assert.Equal(t, entity.PurchaseStatusDone, balance.Status, "con saldo pendiente la compra sigue done")

	p, err := env.purchases.GetByID(idPurchase)
	require.NoError(t, err)
	assert.True(t, p.BalanceDue.Equal(decimal.NewFromInt(60)))
}

// Saldar la deuda completa transiciona la transacción a finished.
func TestPaymentCreate_SaldoEnCero_Finaliza(t *testing.T) {
	env := newPaymentEnv()
	env.seedPurchase(t)

	_, balance, err := env.uc.Create(context.Background(), paymentRequest(100, fechaCompra.AddDate(0, 0, 1)))
	require.NoError(t, err)

	assert.True(t, balance.BalanceDue.IsZero())
	assert.Equal(t, entity.PurchaseStatusFinished, balance.Status)

	p, err := env.purchases.GetByID(idPurchase)
	require.NoError(t, err)
	assert.Equal(t, entity.PurchaseStatusFinished, p.Status)
}

func TestPaymentCreate_PagosParcialesAcumulados(t *testing.T) {
	env := newPaymentEnv()
	env.seedPurchase(t)

	_, _, err := env.uc.Create(context.Background(), paymentRequest(30, fechaCompra.AddDate(0, 0, 1)))
	require.NoError(t, err)
	_, balance, err := env.uc.Create(context.Background(), paymentRequest(70, fechaCompra.AddDate(0, 0, 2)))
	require.NoError(t, err)

	assert.True(t, balance.BalanceDue.IsZero())
	assert.Equal(t, entity.PurchaseStatusFinished, balance.Status)

	pagos, err := env.uc.ListByTransaction(context.Background(), idPurchase, entity.TransactionTypePurchase)
	require.NoError(t, err)
	assert.Len(t, pagos.Items, 2)
}

func TestPaymentCreate_ExcedeSaldo_Rechaza(t *testing.T) {
	env := newPaymentEnv()
	env.seedPurchase(t)

	_, _, err := env.uc.Create(context.Background(), paymentRequest(120, fechaCompra.AddDate(0, 0, 1)))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrPaymentExceedsBalance)

	p, err := env.purchases.GetByID(idPurchase)
	require.NoError(t, err)
	assert.True(t, p.BalanceDue.Equal(decimal.NewFromInt(100)), "un pago rechazado no toca el saldo")

	pagos, err := env.payments.List(0, 0)
	require.NoError(t, err)
	assert.Empty(t, pagos, "un pago rechazado no se registra")
}

func TestPaymentCreate_FechaAnteriorALaCompra_Rechaza(t *testing.T) {
	env := newPaymentEnv()
	env.seedPurchase(t)

	_, _, err := env.uc.Create(context.Background(), paymentRequest(10, fechaCompra.AddDate(0, 0, -1)))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrPaymentDateBeforeTransaction)
}

func TestPaymentCreate_MontoNoPositivo_Rechaza(t *testing.T) {
	env := newPaymentEnv()
	env.seedPurchase(t)

	req := paymentRequest(0, fechaCompra)
	req.Amount = decimal.NewFromInt(-5)
	_, _, err := env.uc.Create(context.Background(), req)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestPaymentCreate_ContraVenta_Finaliza(t *testing.T) {
	env := newPaymentEnv()
	require.NoError(t, env.sales.Create(&entity.Sale{
		ID:         idSale,
		Status:     entity.SaleStatusDone,
		SaleDate:   fechaCompra,
		Total:      decimal.NewFromInt(50),
		BalanceDue: decimal.NewFromInt(50),
	}))

	req := dto.CreatePaymentRequest{
		TransactionID:   idSale,
		TransactionType: entity.TransactionTypeSale,
		PaymentMethod:   "qr",
		Amount:          decimal.NewFromInt(50),
		PaymentDate:     fechaCompra.AddDate(0, 0, 3),
	}
	_, balance, err := env.uc.Create(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, entity.SaleStatusFinished, balance.Status)

	s, err := env.sales.GetByID(idSale)
	require.NoError(t, err)
	assert.Equal(t, entity.SaleStatusFinished, s.Status)
	assert.True(t, s.BalanceDue.IsZero())
}

func TestPaymentUpdate_SoloCorrigeMetodoYFecha(t *testing.T) {
	env := newPaymentEnv()
	env.seedPurchase(t)

	payment, _, err := env.uc.Create(context.Background(), paymentRequest(40, fechaCompra.AddDate(0, 0, 1)))
	require.NoError(t, err)

	metodo := "card"
	updated, err := env.uc.Update(context.Background(), payment.ID, dto.UpdatePaymentRequest{PaymentMethod: &metodo})
	require.NoError(t, err)

	assert.Equal(t, "card", updated.PaymentMethod)
	assert.True(t, updated.Amount.Equal(decimal.NewFromInt(40)), "el monto no es editable")

	p, err := env.purchases.GetByID(idPurchase)
	require.NoError(t, err)
	assert.True(t, p.BalanceDue.Equal(decimal.NewFromInt(60)), "la corrección no re-aplica el pago")
}
