package repository

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// AgencyRepository define el puerto de persistencia para Agency.
type AgencyRepository interface {
	Create(agency *entity.Agency) error
	GetByID(id string) (*entity.Agency, error)
	Update(agency *entity.Agency) error
	List(limit, offset int) ([]*entity.Agency, error)
}
