package inventory

import (
	"time"

	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/inventory"
)

// PrevLine cantidad previa de una línea existente de una transacción multi-línea.
type PrevLine struct {
	ID        string
	ProductID string
	Ref       string // vínculo opcional (línea de compra o de venta)
	Quantity  int64
}

// ReqLine línea solicitada en una actualización. ID vacío = línea nueva.
type ReqLine struct {
	ID        string
	ProductID string
	Ref       string
	Quantity  int64
}

// LineDelta movimiento neto que una actualización de líneas requiere sobre el stock.
// Para líneas nuevas Prev es 0; para eliminadas Removed es true y New es 0.
type LineDelta struct {
	ID        string // vacío para líneas nuevas
	ProductID string
	Ref       string
	Prev      int64
	New       int64
	Removed   bool
}

// Delta devuelve la variación neta de la línea (New - Prev).
func (d LineDelta) Delta() int64 { return d.New - d.Prev }

// DiffLines compara líneas previas contra las solicitadas y devuelve los deltas,
// en el orden del payload, con las eliminaciones al final. Una línea solicitada
// con id que no pertenece a la transacción se rechaza, igual que cambiar el
// producto de una línea existente (se elimina la línea y se crea otra).
// Reenviar las líneas sin cambios produce deltas en cero: la reconciliación es
// idempotente.
func DiffLines(previous []PrevLine, requested []ReqLine) ([]LineDelta, error) {
	prevByID := make(map[string]PrevLine, len(previous))
	for _, p := range previous {
		prevByID[p.ID] = p
	}
	seen := make(map[string]bool, len(requested))

	deltas := make([]LineDelta, 0, len(requested))
	for _, req := range requested {
		if req.ID == "" {
			deltas = append(deltas, LineDelta{ProductID: req.ProductID, Ref: req.Ref, New: req.Quantity})
			continue
		}
		prev, ok := prevByID[req.ID]
		if !ok {
			return nil, domain.NewValidationError("id", domain.ErrNotFound)
		}
		if req.ProductID != "" && req.ProductID != prev.ProductID {
			return nil, domain.NewValidationError("product_id", domain.ErrConflict)
		}
		seen[req.ID] = true
		deltas = append(deltas, LineDelta{
			ID:        req.ID,
			ProductID: prev.ProductID,
			Ref:       prev.Ref,
			Prev:      prev.Quantity,
			New:       req.Quantity,
		})
	}
	for _, p := range previous {
		if !seen[p.ID] {
			deltas = append(deltas, LineDelta{
				ID:        p.ID,
				ProductID: p.ProductID,
				Ref:       p.Ref,
				Prev:      p.Quantity,
				Removed:   true,
			})
		}
	}
	return deltas, nil
}

// movementOp un movimiento a aplicar sobre una misma ficha de stock.
type movementOp struct {
	kind inventory.MovementKind
	qty  int64
}

// applyMovements bloquea la ficha de stock (SELECT FOR UPDATE), aplica los
// movimientos en orden y persiste el resultado. El primer rechazo aborta sin
// escribir; el Rollback de la transacción descarta lo demás.
func applyMovements(r TxRepos, productID, warehouseID string, now time.Time, ops ...movementOp) error {
	if len(ops) == 0 {
		return nil
	}
	stock, err := r.Stock.GetForUpdate(productID, warehouseID)
	if err != nil {
		return err
	}
	for _, op := range ops {
		if err := inventory.Apply(stock, op.kind, op.qty); err != nil {
			return err
		}
	}
	stock.UpdatedAt = now
	return r.Stock.Upsert(stock)
}

// deltaOps traduce un delta de línea a movimientos en la dirección indicada:
// forward es el kind de la transacción (RECEIVE para entradas/compras,
// DISPATCH para salidas) y el delta negativo aplica el kind inverso.
func deltaOps(forward inventory.MovementKind, delta int64) []movementOp {
	if delta == 0 {
		return nil
	}
	inverse := inventory.MovementDispatch
	if forward == inventory.MovementDispatch {
		inverse = inventory.MovementReceive
	}
	if delta > 0 {
		return []movementOp{{kind: forward, qty: delta}}
	}
	return []movementOp{{kind: inverse, qty: -delta}}
}

// ReceiveDelta aplica el delta de una línea de compra/entrada sobre el stock:
// positivo recibe, negativo revierte con un despacho.
func ReceiveDelta(r TxRepos, productID, warehouseID string, delta int64, now time.Time) error {
	return applyMovements(r, productID, warehouseID, now, deltaOps(inventory.MovementReceive, delta)...)
}

// ReserveDelta ajusta la reserva de un producto en una bodega: positivo
// compromete unidades disponibles, negativo las libera.
func ReserveDelta(r TxRepos, productID, warehouseID string, delta int64, now time.Time) error {
	if delta == 0 {
		return nil
	}
	return applyMovements(r, productID, warehouseID, now, movementOp{kind: inventory.MovementAdjustReservation, qty: delta})
}
