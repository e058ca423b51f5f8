// Package employees implements the roster repository over database/sql.
// Queries use $n placeholders in order of appearance so they run unchanged
// on both pgx and modernc sqlite.
package employees

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/rosterkeeper/internal/common"
	"github.com/dmitrijs2005/rosterkeeper/internal/dbx"
	"github.com/dmitrijs2005/rosterkeeper/internal/models"
)

type SQLRepository struct {
	db dbx.DBTX
}

func NewSQLRepository(db dbx.DBTX) *SQLRepository {
	return &SQLRepository{db: db}
}

func (r *SQLRepository) List(ctx context.Context) ([]models.Employee, error) {
	query :=
		`SELECT id, name, employee_number, email, phone FROM employees
		 ORDER BY name ASC, id ASC
		 `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]models.Employee, 0)
	for rows.Next() {
		var e models.Employee
		if err := rows.Scan(&e.ID, &e.Name, &e.EmployeeNumber, &e.Email, &e.Phone); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *SQLRepository) Create(ctx context.Context, e *models.Employee) (*models.Employee, error) {
	query :=
		`INSERT INTO employees (id, name, employee_number, email, phone)
		 VALUES ($1, $2, $3, $4, $5)
		 `

	_, err := r.db.ExecContext(ctx, query, e.ID, e.Name, e.EmployeeNumber, e.Email, e.Phone)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return e, nil
}

func (r *SQLRepository) Update(ctx context.Context, e *models.Employee) (*models.Employee, error) {
	query :=
		`UPDATE employees
		 SET name = $1, employee_number = $2, email = $3, phone = $4, updated_at = CURRENT_TIMESTAMP
		 WHERE id = $5
		 RETURNING id
		 `

	var id string
	err := r.db.QueryRowContext(ctx, query, e.Name, e.EmployeeNumber, e.Email, e.Phone, e.ID).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return e, nil
}

func (r *SQLRepository) Delete(ctx context.Context, id string) error {
	query :=
		`DELETE FROM employees
		 WHERE id = $1
		 `

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}

	return nil
}
