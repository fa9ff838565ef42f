package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// AgencyUseCase casos de uso CRUD para agencias.
type AgencyUseCase struct {
	repo repository.AgencyRepository
}

// NewAgencyUseCase construye el caso de uso.
func NewAgencyUseCase(repo repository.AgencyRepository) *AgencyUseCase {
	return &AgencyUseCase{repo: repo}
}

// Create crea una nueva agencia.
func (uc *AgencyUseCase) Create(in dto.CreateAgencyRequest) (*dto.AgencyResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	now := time.Now()
	agency := &entity.Agency{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Location:  in.Location,
		City:      in.City,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(agency); err != nil {
		return nil, err
	}
	return toAgencyResponse(agency), nil
}

// GetByID obtiene una agencia por ID.
func (uc *AgencyUseCase) GetByID(id string) (*dto.AgencyResponse, error) {
	agency, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return toAgencyResponse(agency), nil
}

// Update actualiza una agencia.
func (uc *AgencyUseCase) Update(id string, in dto.UpdateAgencyRequest) (*dto.AgencyResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	agency, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		agency.Name = *in.Name
	}
	if in.Location != nil {
		agency.Location = *in.Location
	}
	if in.City != nil {
		agency.City = *in.City
	}
	agency.UpdatedAt = time.Now()
	if err := uc.repo.Update(agency); err != nil {
		return nil, err
	}
	return toAgencyResponse(agency), nil
}

// List devuelve agencias paginadas.
func (uc *AgencyUseCase) List(page dto.PageRequest) (*dto.AgencyListResponse, error) {
	page.DefaultPage()
	agencies, err := uc.repo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	resp := &dto.AgencyListResponse{
		Items: make([]dto.AgencyResponse, 0, len(agencies)),
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}
	for _, a := range agencies {
		resp.Items = append(resp.Items, *toAgencyResponse(a))
	}
	return resp, nil
}

func toAgencyResponse(a *entity.Agency) *dto.AgencyResponse {
	return &dto.AgencyResponse{
		ID:        a.ID,
		Name:      a.Name,
		Location:  a.Location,
		City:      a.City,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}
