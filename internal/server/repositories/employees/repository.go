package employees

import (
	"context"

	"github.com/dmitrijs2005/rosterkeeper/internal/models"
)

// Repository persists roster records. Missing records are reported as
// common.ErrorNotFound.
type Repository interface {
	List(ctx context.Context) ([]models.Employee, error)
	Create(ctx context.Context, e *models.Employee) (*models.Employee, error)
	Update(ctx context.Context, e *models.Employee) (*models.Employee, error)
	Delete(ctx context.Context, id string) error
}
