// Package services contains server-side business logic. EmployeeService
// validates roster writes, assigns identities and delegates persistence to
// the repositories vended by a RepositoryManager.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/rosterkeeper/internal/common"
	"github.com/dmitrijs2005/rosterkeeper/internal/dbx"
	"github.com/dmitrijs2005/rosterkeeper/internal/models"
	"github.com/dmitrijs2005/rosterkeeper/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

type EmployeeService struct {
	db          dbx.DBTX
	repomanager repomanager.RepositoryManager
	newID       func() string
}

// NewEmployeeService constructs an EmployeeService. Identities are random
// UUIDs.
func NewEmployeeService(db dbx.DBTX, m repomanager.RepositoryManager) *EmployeeService {
	return &EmployeeService{db: db, repomanager: m, newID: uuid.NewString}
}

// List returns every employee ordered by name.
func (s *EmployeeService) List(ctx context.Context) ([]models.Employee, error) {
	repo := s.repomanager.Employees(s.db)
	list, err := repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing employees: %w", err)
	}
	return list, nil
}

// Create stores fields exactly as given under a freshly assigned identity.
func (s *EmployeeService) Create(ctx context.Context, fields models.EmployeeFields) (*models.Employee, error) {
	if err := fields.Validate(); err != nil {
		return nil, err
	}

	e := fields.WithID(s.newID())
	repo := s.repomanager.Employees(s.db)
	created, err := repo.Create(ctx, &e)
	if err != nil {
		return nil, fmt.Errorf("error creating employee: %w", err)
	}
	return created, nil
}

// Update replaces the writable fields of the employee with the given id.
func (s *EmployeeService) Update(ctx context.Context, id string, fields models.EmployeeFields) (*models.Employee, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: id is required", common.ErrorValidation)
	}
	if err := fields.Validate(); err != nil {
		return nil, err
	}

	e := fields.WithID(id)
	repo := s.repomanager.Employees(s.db)
	updated, err := repo.Update(ctx, &e)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("error updating employee: %w", err)
	}
	return updated, nil
}

// Delete removes the employee with the given id.
func (s *EmployeeService) Delete(ctx context.Context, id string) error {
	repo := s.repomanager.Employees(s.db)
	if err := repo.Delete(ctx, id); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return err
		}
		return fmt.Errorf("error deleting employee: %w", err)
	}
	return nil
}
