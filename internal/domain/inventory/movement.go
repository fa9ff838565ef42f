package inventory

import (
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// MovementKind clasifica el efecto de un movimiento sobre la ficha de stock.
type MovementKind string

const (
	// MovementReceive suma unidades físicas (entradas y compras).
	MovementReceive MovementKind = "RECEIVE"
	// MovementDispatch resta unidades físicas disponibles (salidas y ventas).
	MovementDispatch MovementKind = "DISPATCH"
	// MovementMarkDamaged mueve unidades de disponible a dañado.
	MovementMarkDamaged MovementKind = "MARK_DAMAGED"
	// MovementAdjustReservation compromete (+) o libera (-) unidades disponibles.
	MovementAdjustReservation MovementKind = "ADJUST_RESERVATION"
)

// Valid indica si el kind es uno de los cuatro soportados.
func (k MovementKind) Valid() bool {
	switch k {
	case MovementReceive, MovementDispatch, MovementMarkDamaged, MovementAdjustReservation:
		return true
	}
	return false
}

// Apply aplica un movimiento sobre la ficha de stock en memoria. No persiste nada:
// el caller decide dentro de qué transacción guardar el resultado. Si retorna error,
// la ficha queda sin modificar.
//
// Reglas:
//   - RECEIVE: rechaza si MaximumStock > 0 y Stock+qty lo supera.
//   - DISPATCH: rechaza si AvailableStock no cubre qty, o si MinimumStock > 0
//     y Stock-qty quedaría por debajo.
//   - MARK_DAMAGED: rechaza si qty supera AvailableStock.
//   - ADJUST_RESERVATION: qty con signo; + reserva (consume disponible),
//     - libera (devuelve a disponible). Nunca deja campos negativos.
//
// Tras cada aplicación exitosa se mantiene
// Stock = AvailableStock + ReservedStock + DamagedStock.
func Apply(stock *entity.ProductStock, kind MovementKind, quantity int64) error {
	switch kind {
	case MovementReceive:
		if quantity <= 0 {
			return domain.NewValidationError("quantity", domain.ErrInvalidQuantity)
		}
		if stock.MaximumStock > 0 && stock.Stock+quantity > stock.MaximumStock {
			return domain.NewValidationError("quantity", domain.ErrMaxStockExceeded)
		}
		stock.Stock += quantity
		stock.AvailableStock += quantity
		return nil

	case MovementDispatch:
		if quantity <= 0 {
			return domain.NewValidationError("quantity", domain.ErrInvalidQuantity)
		}
		if stock.AvailableStock-quantity < 0 {
			return domain.NewValidationError("quantity", domain.ErrInsufficientAvailableStock)
		}
		if stock.MinimumStock > 0 && stock.Stock-quantity < stock.MinimumStock {
			return domain.NewValidationError("quantity", domain.ErrBelowMinimumStock)
		}
		stock.Stock -= quantity
		stock.AvailableStock -= quantity
		return nil

	case MovementMarkDamaged:
		if quantity <= 0 {
			return domain.NewValidationError("quantity", domain.ErrInvalidQuantity)
		}
		if quantity > stock.AvailableStock {
			return domain.NewValidationError("quantity", domain.ErrExceedsAvailableStock)
		}
		stock.DamagedStock += quantity
		stock.AvailableStock -= quantity
		return nil

	case MovementAdjustReservation:
		if quantity == 0 {
			return domain.NewValidationError("quantity", domain.ErrInvalidQuantity)
		}
		if quantity > 0 && stock.AvailableStock-quantity < 0 {
			return domain.NewValidationError("quantity", domain.ErrInsufficientAvailableStock)
		}
		if quantity < 0 && stock.ReservedStock+quantity < 0 {
			return domain.NewValidationError("quantity", domain.ErrInsufficientReservedStock)
		}
		stock.ReservedStock += quantity
		stock.AvailableStock -= quantity
		return nil
	}
	return domain.NewValidationError("kind", domain.ErrInvalidInput)
}
