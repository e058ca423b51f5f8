// Package repomanager vends repository implementations bound to a DBTX and
// applies the embedded schema migrations with goose.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/rosterkeeper/internal/dbx"
	"github.com/dmitrijs2005/rosterkeeper/internal/server/migrations"
	"github.com/dmitrijs2005/rosterkeeper/internal/server/repositories/employees"
	"github.com/pressly/goose/v3"
)

type RepositoryManager interface {
	RunMigrations(ctx context.Context, db *sql.DB) error
	Employees(db dbx.DBTX) employees.Repository
}

// SQLRepositoryManager serves both PostgreSQL and SQLite; the dialect only
// matters to goose.
type SQLRepositoryManager struct {
	dialect dbx.Dialect
}

// NewSQLRepositoryManager constructs a RepositoryManager for the given dialect.
func NewSQLRepositoryManager(dialect dbx.Dialect) *SQLRepositoryManager {
	return &SQLRepositoryManager{dialect: dialect}
}

// Employees returns an employees.Repository bound to the provided DBTX.
func (m *SQLRepositoryManager) Employees(db dbx.DBTX) employees.Repository {
	return employees.NewSQLRepository(db)
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations points goose at the embedded migrations and brings the
// schema up to date.
func (m *SQLRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect(string(m.dialect)); err != nil {
		return err
	}
	return gooseUpContext(ctx, db, ".")
}
