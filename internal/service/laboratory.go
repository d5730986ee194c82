package service

import (
	"context"
	"fmt"

	"github.com/clinilab/clinilab/internal/domain"
	"github.com/clinilab/clinilab/internal/errs"
	"github.com/clinilab/clinilab/internal/server"
	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"
)

// LaboratoryStore is the persistence surface the laboratory service needs.
// *repository.LaboratoryRepository satisfies it; tests use mocks.
type LaboratoryStore interface {
	FindAll(ctx context.Context) ([]domain.Laboratory, error)
	FindActive(ctx context.Context) ([]domain.Laboratory, error)
	FindAvailable(ctx context.Context) ([]domain.Laboratory, error)
	FindByID(ctx context.Context, id int64) (*domain.Laboratory, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, l *domain.Laboratory) error
	Update(ctx context.Context, l *domain.Laboratory) error
	SetActive(ctx context.Context, id int64, active bool) (*domain.Laboratory, error)
	HardDelete(ctx context.Context, id int64) error
	FindByTipo(ctx context.Context, tipo string) ([]domain.Laboratory, error)
	SearchByNombre(ctx context.Context, nombre string) ([]domain.Laboratory, error)
}

// LaboratoryService implements the laboratorios registry rules: email
// uniqueness on create and the soft-delete / permanent-delete split.
type LaboratoryService struct {
	server *server.Server
	repo   LaboratoryStore
}

func NewLaboratoryService(s *server.Server, repo LaboratoryStore) *LaboratoryService {
	return &LaboratoryService{
		server: s,
		repo:   repo,
	}
}

func laboratoryNotFound(id int64) *errs.HTTPError {
	return errs.NewNotFoundError(fmt.Sprintf("Laboratorio no encontrado con id: %d", id))
}

func (s *LaboratoryService) List(ctx context.Context) ([]domain.Laboratory, error) {
	return s.repo.FindAll(ctx)
}

func (s *LaboratoryService) ListActive(ctx context.Context) ([]domain.Laboratory, error) {
	return s.repo.FindActive(ctx)
}

func (s *LaboratoryService) ListAvailable(ctx context.Context) ([]domain.Laboratory, error) {
	return s.repo.FindAvailable(ctx)
}

func (s *LaboratoryService) Get(ctx context.Context, id int64) (*domain.Laboratory, error) {
	lab, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, laboratoryNotFound(id)
		}
		return nil, err
	}
	return lab, nil
}

// Create enforces email uniqueness with a read-then-write check. A race
// between two concurrent creates can pass both checks; the unique constraint
// rejects the second write and sqlerr translates it to the same DuplicateKey.
func (s *LaboratoryService) Create(ctx context.Context, lab *domain.Laboratory) error {
	exists, err := s.repo.ExistsByEmail(ctx, lab.Email)
	if err != nil {
		return err
	}
	if exists {
		return errs.NewDuplicateKeyError("Ya existe un laboratorio con ese email")
	}
	return s.repo.Create(ctx, lab)
}

// Update replaces every mutable field. Email uniqueness on update relies on
// the storage constraint alone, matching the registry's historic behavior.
func (s *LaboratoryService) Update(ctx context.Context, id int64, lab *domain.Laboratory) error {
	lab.ID = id
	if err := s.repo.Update(ctx, lab); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return laboratoryNotFound(id)
		}
		return err
	}
	return nil
}

// Deactivate is the default delete: it flips activo to false and keeps the
// row, so the laboratory disappears from active/available listings but
// stays retrievable by id.
func (s *LaboratoryService) Deactivate(ctx context.Context, id int64) error {
	if _, err := s.repo.SetActive(ctx, id, false); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return laboratoryNotFound(id)
		}
		return err
	}
	return nil
}

// Activate reverses a soft delete and returns the updated laboratory.
func (s *LaboratoryService) Activate(ctx context.Context, id int64) (*domain.Laboratory, error) {
	lab, err := s.repo.SetActive(ctx, id, true)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, laboratoryNotFound(id)
		}
		return nil, err
	}
	return lab, nil
}

// DeletePermanent removes the row for good; the id becomes absent from
// every subsequent lookup.
func (s *LaboratoryService) DeletePermanent(ctx context.Context, id int64) error {
	if err := s.repo.HardDelete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return laboratoryNotFound(id)
		}
		return err
	}
	return nil
}

func (s *LaboratoryService) ListByTipo(ctx context.Context, tipo string) ([]domain.Laboratory, error) {
	return s.repo.FindByTipo(ctx, tipo)
}

func (s *LaboratoryService) SearchByNombre(ctx context.Context, nombre string) ([]domain.Laboratory, error) {
	return s.repo.SearchByNombre(ctx, nombre)
}
