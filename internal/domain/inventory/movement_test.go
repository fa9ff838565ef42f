package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/inventory"
)

// fichaBase construye una ficha de stock consistente para los tests.
func fichaBase(stock, reserved, damaged, min, max int64) *entity.ProductStock {
	return &entity.ProductStock{
		ProductID:      "p1",
		WarehouseID:    "w1",
		Stock:          stock,
		ReservedStock:  reserved,
		DamagedStock:   damaged,
		AvailableStock: stock - reserved - damaged,
		MinimumStock:   min,
		MaximumStock:   max,
	}
}

// assertInvariante verifica Stock = Available + Reserved + Damaged y no-negatividad.
func assertInvariante(t *testing.T, s *entity.ProductStock) {
	t.Helper()
	assert.Equal(t, s.Stock, s.AvailableStock+s.ReservedStock+s.DamagedStock,
		"el stock total debe ser la suma de disponible, reservado y dañado")
	assert.GreaterOrEqual(t, s.Stock, int64(0))
	assert.GreaterOrEqual(t, s.AvailableStock, int64(0))
	assert.GreaterOrEqual(t, s.ReservedStock, int64(0))
	assert.GreaterOrEqual(t, s.DamagedStock, int64(0))
}

func TestApply_Receive(t *testing.T) {
	s := fichaBase(10, 0, 0, 0, 0)
	require.NoError(t, inventory.Apply(s, inventory.MovementReceive, 5))
	assert.Equal(t, int64(15), s.Stock)
	assert.Equal(t, int64(15), s.AvailableStock)
	assertInvariante(t, s)
}

// Recepción que supera el stock máximo configurado: rechaza y no modifica nada.
func TestApply_Receive_SuperaMaximo(t *testing.T) {
	s := fichaBase(10, 0, 0, 0, 20)
	err := inventory.Apply(s, inventory.MovementReceive, 15)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrMaxStockExceeded)
	assert.Equal(t, int64(10), s.Stock, "un rechazo no debe dejar cambios parciales")
	assertInvariante(t, s)
}

func TestApply_Receive_MaximoCeroNoRestringe(t *testing.T) {
	s := fichaBase(10, 0, 0, 0, 0)
	require.NoError(t, inventory.Apply(s, inventory.MovementReceive, 1000))
	assert.Equal(t, int64(1010), s.Stock)
}

func TestApply_Dispatch(t *testing.T) {
	s := fichaBase(50, 0, 0, 0, 0)
	require.NoError(t, inventory.Apply(s, inventory.MovementDispatch, 20))
	assert.Equal(t, int64(30), s.Stock)
	assert.Equal(t, int64(30), s.AvailableStock)
	assertInvariante(t, s)
}

// Despacho que excede el disponible: disponible queda intacto.
func TestApply_Dispatch_ExcedeDisponible(t *testing.T) {
	s := fichaBase(40, 0, 0, 0, 0)
	err := inventory.Apply(s, inventory.MovementDispatch, 60)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientAvailableStock)
	assert.Equal(t, int64(40), s.AvailableStock)
	assertInvariante(t, s)
}

// Despacho que dejaría el stock por debajo del mínimo configurado.
func TestApply_Dispatch_BajoMinimo(t *testing.T) {
	s := fichaBase(30, 0, 0, 25, 0)
	err := inventory.Apply(s, inventory.MovementDispatch, 10)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBelowMinimumStock)
	assert.Equal(t, int64(30), s.Stock)
}

// El disponible descuenta lo reservado: no se puede despachar stock comprometido.
func TestApply_Dispatch_NoTocaReservado(t *testing.T) {
	s := fichaBase(50, 30, 0, 0, 0) // disponible = 20
	err := inventory.Apply(s, inventory.MovementDispatch, 25)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientAvailableStock)
}

func TestApply_MarkDamaged(t *testing.T) {
	s := fichaBase(50, 10, 0, 0, 0) // disponible = 40
	require.NoError(t, inventory.Apply(s, inventory.MovementMarkDamaged, 5))
	assert.Equal(t, int64(50), s.Stock, "marcar dañado no cambia el total físico")
	assert.Equal(t, int64(5), s.DamagedStock)
	assert.Equal(t, int64(35), s.AvailableStock)
	assertInvariante(t, s)
}

func TestApply_MarkDamaged_ExcedeDisponible(t *testing.T) {
	s := fichaBase(50, 45, 0, 0, 0) // disponible = 5
	err := inventory.Apply(s, inventory.MovementMarkDamaged, 6)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrExceedsAvailableStock)
	assertInvariante(t, s)
}

func TestApply_AdjustReservation_Reservar(t *testing.T) {
	s := fichaBase(50, 0, 0, 0, 0)
	require.NoError(t, inventory.Apply(s, inventory.MovementAdjustReservation, 20))
	assert.Equal(t, int64(20), s.ReservedStock)
	assert.Equal(t, int64(30), s.AvailableStock)
	assert.Equal(t, int64(50), s.Stock, "reservar no mueve el total físico")
	assertInvariante(t, s)
}

func TestApply_AdjustReservation_Liberar(t *testing.T) {
	s := fichaBase(50, 20, 0, 0, 0)
	require.NoError(t, inventory.Apply(s, inventory.MovementAdjustReservation, -15))
	assert.Equal(t, int64(5), s.ReservedStock)
	assert.Equal(t, int64(45), s.AvailableStock)
	assertInvariante(t, s)
}

func TestApply_AdjustReservation_SinDisponible(t *testing.T) {
	s := fichaBase(50, 45, 0, 0, 0) // disponible = 5
	err := inventory.Apply(s, inventory.MovementAdjustReservation, 10)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientAvailableStock)
	assertInvariante(t, s)
}

func TestApply_AdjustReservation_LiberaMasDeLoReservado(t *testing.T) {
	s := fichaBase(50, 10, 0, 0, 0)
	err := inventory.Apply(s, inventory.MovementAdjustReservation, -11)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientReservedStock)
	assertInvariante(t, s)
}

// Cantidades cero o negativas se rechazan en todos los kinds que no admiten signo.
func TestApply_CantidadInvalida(t *testing.T) {
	kinds := []inventory.MovementKind{
		inventory.MovementReceive,
		inventory.MovementDispatch,
		inventory.MovementMarkDamaged,
	}
	for _, k := range kinds {
		for _, qty := range []int64{0, -3} {
			s := fichaBase(10, 0, 0, 0, 0)
			err := inventory.Apply(s, k, qty)
			assert.ErrorIs(t, err, domain.ErrInvalidQuantity, "kind=%s qty=%d", k, qty)
			assert.Equal(t, int64(10), s.Stock)
		}
	}
	s := fichaBase(10, 0, 0, 0, 0)
	assert.ErrorIs(t, inventory.Apply(s, inventory.MovementAdjustReservation, 0), domain.ErrInvalidQuantity)
}

func TestApply_KindDesconocido(t *testing.T) {
	s := fichaBase(10, 0, 0, 0, 0)
	err := inventory.Apply(s, inventory.MovementKind("TRANSFER"), 5)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Los rechazos llegan como ValidationError con el campo que los produjo.
func TestApply_RechazoConCampo(t *testing.T) {
	s := fichaBase(40, 0, 0, 0, 0)
	err := inventory.Apply(s, inventory.MovementDispatch, 60)
	ve, ok := domain.AsValidation(err)
	require.True(t, ok)
	assert.Equal(t, "quantity", ve.Field)
}
