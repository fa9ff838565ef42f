package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/usecase"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

const idAgenciaAjena = "bbbbbbbb-bbbb-4bbb-8bbb-bbbbbbbbbbbb"

type fakeAgencyRepo struct{ agencies map[string]*entity.Agency }

func newFakeAgencyRepo() *fakeAgencyRepo {
	return &fakeAgencyRepo{agencies: make(map[string]*entity.Agency)}
}

func (f *fakeAgencyRepo) Create(a *entity.Agency) error { f.agencies[a.ID] = a; return nil }
func (f *fakeAgencyRepo) GetByID(id string) (*entity.Agency, error) {
	if a, ok := f.agencies[id]; ok {
		return a, nil
	}
	return nil, domain.ErrNotFound
}
func (f *fakeAgencyRepo) Update(a *entity.Agency) error { f.agencies[a.ID] = a; return nil }
func (f *fakeAgencyRepo) List(_, _ int) ([]*entity.Agency, error) {
	var out []*entity.Agency
	for _, a := range f.agencies {
		out = append(out, a)
	}
	return out, nil
}

type fakeWarehouseRepo struct{ warehouses map[string]*entity.Warehouse }

func newFakeWarehouseRepo() *fakeWarehouseRepo {
	return &fakeWarehouseRepo{warehouses: make(map[string]*entity.Warehouse)}
}

func (f *fakeWarehouseRepo) Create(w *entity.Warehouse) error { f.warehouses[w.ID] = w; return nil }
func (f *fakeWarehouseRepo) GetByID(id string) (*entity.Warehouse, error) {
	if w, ok := f.warehouses[id]; ok {
		return w, nil
	}
	return nil, domain.ErrNotFound
}
func (f *fakeWarehouseRepo) Update(w *entity.Warehouse) error { f.warehouses[w.ID] = w; return nil }
func (f *fakeWarehouseRepo) List(_, _ int) ([]*entity.Warehouse, error) {
	var out []*entity.Warehouse
	for _, w := range f.warehouses {
		out = append(out, w)
	}
	return out, nil
}

func TestAgencyCreateYUpdate(t *testing.T) {
	uc := usecase.NewAgencyUseCase(newFakeAgencyRepo())

	created, err := uc.Create(dto.CreateAgencyRequest{Name: "Central", Location: "Av. Principal 100", City: "PT"})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Central", created.Name)

	ciudad := "LP"
	updated, err := uc.Update(created.ID, dto.UpdateAgencyRequest{City: &ciudad})
	require.NoError(t, err)
	assert.Equal(t, "LP", updated.City)
	assert.Equal(t, "Central", updated.Name, "los campos no enviados se conservan")
}

func TestWarehouseCreate_RequiereAgenciaExistente(t *testing.T) {
	agencyRepo := newFakeAgencyRepo()
	uc := usecase.NewWarehouseUseCase(newFakeWarehouseRepo(), agencyRepo)

	_, err := uc.Create(dto.CreateWarehouseRequest{
		AgencyID: idAgenciaAjena,
		Name:     "Bodega Norte",
		Location: "Calle 2",
		City:     "PT",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	ve, ok := domain.AsValidation(err)
	require.True(t, ok)
	assert.Equal(t, "agency_id", ve.Field)
}

func TestWarehouseCreate_ConAgencia_QuedaVinculada(t *testing.T) {
	const idAgencia = "cccccccc-cccc-4ccc-8ccc-cccccccccccc"
	agencyRepo := newFakeAgencyRepo()
	require.NoError(t, agencyRepo.Create(&entity.Agency{ID: idAgencia, Name: "Sur"}))

	uc := usecase.NewWarehouseUseCase(newFakeWarehouseRepo(), agencyRepo)
	bodega, err := uc.Create(dto.CreateWarehouseRequest{
		AgencyID: idAgencia,
		Name:     "Bodega Sur 1",
		Location: "Parque Industrial",
		City:     "SCZ",
	})
	require.NoError(t, err)
	assert.Equal(t, idAgencia, bodega.AgencyID)
}
