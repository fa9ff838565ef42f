package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrDuplicate    = errors.New("recurso duplicado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrUnauthorized = errors.New("no autorizado")
	ErrForbidden    = errors.New("acceso denegado")
	ErrConflict     = errors.New("conflicto con el estado actual")

	// Reglas de stock.
	ErrInvalidQuantity            = errors.New("la cantidad debe ser un entero positivo")
	ErrMaxStockExceeded           = errors.New("el nuevo stock no puede ser mayor al máximo permitido")
	ErrBelowMinimumStock          = errors.New("el stock no puede ser menor al stock mínimo")
	ErrInsufficientAvailableStock = errors.New("stock disponible insuficiente")
	ErrExceedsAvailableStock      = errors.New("la cantidad excede el stock disponible")
	ErrInsufficientReservedStock  = errors.New("stock reservado insuficiente")
	ErrExceedsPurchasedQuantity   = errors.New("la cantidad ingresada excede la cantidad comprada")
	ErrExceedsSoldQuantity        = errors.New("la cantidad despachada excede la cantidad vendida")

	// Reglas de saldos y pagos.
	ErrPaymentExceedsBalance        = errors.New("el pago excede el saldo pendiente")
	ErrPaymentDateBeforeTransaction = errors.New("la fecha del pago no puede ser anterior a la transacción")
)

// ValidationError asocia una violación de regla de negocio con el campo que la produjo,
// para que el caller la devuelva como error 400 estructurado. Envuelve el sentinel
// correspondiente, así errors.Is sigue funcionando.
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Err.Error()
	}
	return e.Field + ": " + e.Err.Error()
}

func (e *ValidationError) Unwrap() error { return e.Err }

// NewValidationError construye un ValidationError para el campo indicado.
func NewValidationError(field string, err error) *ValidationError {
	return &ValidationError{Field: field, Err: err}
}

// AsValidation devuelve el ValidationError si err lo es (o envuelve uno).
func AsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
