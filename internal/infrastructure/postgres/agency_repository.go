package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.AgencyRepository = (*AgencyRepo)(nil)

// AgencyRepo implementación de AgencyRepository sobre PostgreSQL.
type AgencyRepo struct {
	q Querier
}

// NewAgencyRepository construye el adaptador de agencias. Pasar pool o tx (Querier).
func NewAgencyRepository(q Querier) *AgencyRepo {
	return &AgencyRepo{q: q}
}

// Create persiste una nueva agencia.
func (r *AgencyRepo) Create(agency *entity.Agency) error {
	query := `
		INSERT INTO agencies (id, name, location, city, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		agency.ID, agency.Name, agency.Location, agency.City,
		agency.CreatedAt, agency.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert agency: %w", err)
	}
	return nil
}

// GetByID obtiene una agencia por ID.
func (r *AgencyRepo) GetByID(id string) (*entity.Agency, error) {
	query := `SELECT id, name, location, city, created_at, updated_at FROM agencies WHERE id = $1`
	var a entity.Agency
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&a.ID, &a.Name, &a.Location, &a.City, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get agency: %w", err)
	}
	return &a, nil
}

// Update actualiza una agencia.
func (r *AgencyRepo) Update(agency *entity.Agency) error {
	query := `
		UPDATE agencies SET name = $2, location = $3, city = $4, updated_at = $5
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		agency.ID, agency.Name, agency.Location, agency.City, agency.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update agency: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List devuelve agencias paginadas.
func (r *AgencyRepo) List(limit, offset int) ([]*entity.Agency, error) {
	query := `SELECT id, name, location, city, created_at, updated_at FROM agencies ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list agencies: %w", err)
	}
	defer rows.Close()

	var agencies []*entity.Agency
	for rows.Next() {
		var a entity.Agency
		if err := rows.Scan(&a.ID, &a.Name, &a.Location, &a.City, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan agency: %w", err)
		}
		agencies = append(agencies, &a)
	}
	return agencies, rows.Err()
}
