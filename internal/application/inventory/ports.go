package inventory

import (
	"context"

	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// TxRepos agrupa los repositorios atados a una misma transacción de BD.
type TxRepos struct {
	Stock     repository.StockRepository
	Entries   repository.EntryRepository
	Outputs   repository.OutputRepository
	Purchases repository.PurchaseRepository
	Sales     repository.SaleRepository
	Payments  repository.PaymentRepository
}

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios
// atados a esa tx. Commit si fn retorna nil; Rollback si retorna error.
// Garantiza que cada reconciliación multi-línea y cada pago sean todo-o-nada.
type TxRunner interface {
	Run(ctx context.Context, fn func(r TxRepos) error) error
}
