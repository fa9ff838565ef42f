package inventory_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	appinv "github.com/jhoicas/almacen-api/internal/application/inventory"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

type outputEnv struct {
	stock   *fakeStockRepo
	outputs *fakeOutputRepo
	sales   *fakeSaleRepo
	uc      *appinv.OutputUseCase
}

func newOutputEnv() *outputEnv {
	stock := newFakeStockRepo()
	outputs := newFakeOutputRepo()
	sales := newFakeSaleRepo()
	runner := &fakeTxRunner{repos: appinv.TxRepos{
		Stock:     stock,
		Entries:   newFakeEntryRepo(),
		Outputs:   outputs,
		Purchases: newFakePurchaseRepo(),
		Sales:     sales,
	}}
	uc := appinv.NewOutputUseCase(
		runner,
		outputs,
		newFakeProductRepo(idProduct, idProduct2),
		newFakeClientRepo(idClient),
		newFakeWarehouseRepo(idWarehouse),
	)
	return &outputEnv{stock: stock, outputs: outputs, sales: sales, uc: uc}
}

func (e *outputEnv) ficha(t *testing.T, productID string) *entity.ProductStock {
	t.Helper()
	s, err := e.stock.Get(productID, idWarehouse)
	require.NoError(t, err)
	return s
}

// seedStock deja 20 unidades físicas, 8 de ellas reservadas.
func (e *outputEnv) seedStock(t *testing.T) {
	t.Helper()
	require.NoError(t, e.stock.Upsert(&entity.ProductStock{
		ProductID: idProduct, WarehouseID: idWarehouse,
		Stock: 20, ReservedStock: 8, AvailableStock: 12,
	}))
}

// seedSale registra una venta confirmada con una línea de 8 unidades sin despachar.
func (e *outputEnv) seedSale(t *testing.T) {
	t.Helper()
	require.NoError(t, e.sales.Create(&entity.Sale{
		ID:          idSale,
		WarehouseID: idWarehouse,
		Status:      entity.SaleStatusDone,
		Items: []entity.SaleItem{
			{ID: idSaleItem, SaleID: idSale, ProductID: idProduct, Quantity: 8},
		},
	}))
}

func TestOutputCreate_LineaSuelta_DespachaDisponible(t *testing.T) {
	env := newOutputEnv()
	env.seedStock(t)

	req := dto.CreateOutputRequest{
		ClientID:    idClient,
		WarehouseID: idWarehouse,
		OutputDate:  time.Now(),
		Items:       []dto.OutputLineRequest{{ProductID: idProduct, Quantity: 5}},
	}
	resp, err := env.uc.Create(context.Background(), idKeeper, req)
	require.NoError(t, err)
	require.Len(t, resp.Items, 1)

	s := env.ficha(t, idProduct)
	assert.Equal(t, int64(15), s.Stock)
	assert.Equal(t, int64(7), s.AvailableStock)
	assert.Equal(t, int64(8), s.ReservedStock, "una salida suelta no toca la reserva")
}

func TestOutputCreate_SinDisponible_Rechaza(t *testing.T) {
	env := newOutputEnv()
	env.seedStock(t) // disponible: 12

	req := dto.CreateOutputRequest{
		ClientID:    idClient,
		WarehouseID: idWarehouse,
		OutputDate:  time.Now(),
		Items:       []dto.OutputLineRequest{{ProductID: idProduct, Quantity: 13}},
	}
	_, err := env.uc.Create(context.Background(), idKeeper, req)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientAvailableStock)

	assert.Equal(t, int64(20), env.ficha(t, idProduct).Stock)
}

// Una línea vinculada a una venta confirmada despacha unidades ya reservadas:
// el físico y la reserva bajan juntos y el disponible queda intacto.
func TestOutputCreate_VinculadaAVenta_ConsumeReserva(t *testing.T) {
	env := newOutputEnv()
	env.seedStock(t)
	env.seedSale(t)

	req := dto.CreateOutputRequest{
		ClientID:    idClient,
		WarehouseID: idWarehouse,
		OutputDate:  time.Now(),
		Items:       []dto.OutputLineRequest{{ProductID: idProduct, SaleItemID: idSaleItem, Quantity: 5}},
	}
	_, err := env.uc.Create(context.Background(), idKeeper, req)
	require.NoError(t, err)

	s := env.ficha(t, idProduct)
	assert.Equal(t, int64(15), s.Stock)
	assert.Equal(t, int64(3), s.ReservedStock)
	assert.Equal(t, int64(12), s.AvailableStock, "el disponible no cambia al despachar reservado")

	si, err := env.sales.GetItemForUpdate(idSaleItem)
	require.NoError(t, err)
	assert.Equal(t, int64(5), si.DispatchedStock)
}

func TestOutputCreate_ExcedeLoVendido_Rechaza(t *testing.T) {
	env := newOutputEnv()
	env.seedStock(t)
	env.seedSale(t) // vendidos: 8

	req := dto.CreateOutputRequest{
		ClientID:    idClient,
		WarehouseID: idWarehouse,
		OutputDate:  time.Now(),
		Items:       []dto.OutputLineRequest{{ProductID: idProduct, SaleItemID: idSaleItem, Quantity: 10}},
	}
	_, err := env.uc.Create(context.Background(), idKeeper, req)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrExceedsSoldQuantity)

	s := env.ficha(t, idProduct)
	assert.Equal(t, int64(20), s.Stock, "el rechazo debe ocurrir antes de mover stock")
	assert.Equal(t, int64(8), s.ReservedStock)
}

// Reducir una línea vinculada reingresa las unidades y las vuelve a reservar:
// la venta sigue confirmada, así que el sobrante regresa comprometido.
func TestOutputUpdate_ReducirLineaVinculada_ReingresaYReserva(t *testing.T) {
	env := newOutputEnv()
	env.seedStock(t)
	env.seedSale(t)

	create := dto.CreateOutputRequest{
		ClientID:    idClient,
		WarehouseID: idWarehouse,
		OutputDate:  time.Now(),
		Items:       []dto.OutputLineRequest{{ProductID: idProduct, SaleItemID: idSaleItem, Quantity: 5}},
	}
	resp, err := env.uc.Create(context.Background(), idKeeper, create)
	require.NoError(t, err)

	items := []dto.OutputLineRequest{
		{ID: resp.Items[0].ID, ProductID: idProduct, SaleItemID: idSaleItem, Quantity: 2},
	}
	_, err = env.uc.Update(context.Background(), resp.ID, dto.UpdateOutputRequest{Items: items})
	require.NoError(t, err)

	s := env.ficha(t, idProduct)
	assert.Equal(t, int64(18), s.Stock)
	assert.Equal(t, int64(6), s.ReservedStock)
	assert.Equal(t, int64(12), s.AvailableStock)

	si, err := env.sales.GetItemForUpdate(idSaleItem)
	require.NoError(t, err)
	assert.Equal(t, int64(2), si.DispatchedStock)
}

func TestOutputUpdate_ReenvioSinCambios_NoMueveStock(t *testing.T) {
	env := newOutputEnv()
	env.seedStock(t)

	create := dto.CreateOutputRequest{
		ClientID:    idClient,
		WarehouseID: idWarehouse,
		OutputDate:  time.Now(),
		Items:       []dto.OutputLineRequest{{ProductID: idProduct, Quantity: 5}},
	}
	resp, err := env.uc.Create(context.Background(), idKeeper, create)
	require.NoError(t, err)

	items := []dto.OutputLineRequest{
		{ID: resp.Items[0].ID, ProductID: idProduct, Quantity: 5},
	}
	_, err = env.uc.Update(context.Background(), resp.ID, dto.UpdateOutputRequest{Items: items})
	require.NoError(t, err)

	assert.Equal(t, int64(15), env.ficha(t, idProduct).Stock)
}

func TestOutputUpdate_LineaAusente_DevuelveUnidades(t *testing.T) {
	env := newOutputEnv()
	env.seedStock(t)

	create := dto.CreateOutputRequest{
		ClientID:    idClient,
		WarehouseID: idWarehouse,
		OutputDate:  time.Now(),
		Items: []dto.OutputLineRequest{
			{ProductID: idProduct, Quantity: 5},
			{ProductID: idProduct2, Quantity: 3},
		},
	}
	// la segunda línea necesita stock propio
	require.NoError(t, env.stock.Upsert(&entity.ProductStock{
		ProductID: idProduct2, WarehouseID: idWarehouse,
		Stock: 3, AvailableStock: 3,
	}))
	resp, err := env.uc.Create(context.Background(), idKeeper, create)
	require.NoError(t, err)

	items := []dto.OutputLineRequest{
		{ID: resp.Items[0].ID, ProductID: idProduct, Quantity: 5},
	}
	updated, err := env.uc.Update(context.Background(), resp.ID, dto.UpdateOutputRequest{Items: items})
	require.NoError(t, err)

	assert.Len(t, updated.Items, 1)
	assert.Equal(t, int64(3), env.ficha(t, idProduct2).Stock, "eliminar la línea reingresa sus unidades")
}
