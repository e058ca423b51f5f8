package dbx

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

// Dialect is the goose dialect matching the opened driver.
type Dialect string

const (
	DialectPostgres Dialect = "pgx"
	DialectSQLite   Dialect = "sqlite3"
)

var ErrUnsupportedDSN = errors.New("unsupported database DSN")

// openDB is a seam for tests.
var openDB = sql.Open

// Open connects to the database described by dsn and verifies the
// connection.
//
//	postgres://... | postgresql://...   pgx
//	sqlite://<path> | file:... | :memory:   modernc sqlite
//
// SQLite connections are limited to a single open connection so that
// writers never contend for the database lock.
func Open(ctx context.Context, dsn string) (*sql.DB, Dialect, error) {
	driver, source, dialect, err := resolve(dsn)
	if err != nil {
		return nil, "", err
	}

	db, err := openDB(driver, source)
	if err != nil {
		return nil, "", fmt.Errorf("open %s: %w", driver, err)
	}

	if dialect == DialectSQLite {
		db.SetMaxOpenConns(1)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, "", fmt.Errorf("ping %s: %w", driver, err)
	}

	return db, dialect, nil
}

func resolve(dsn string) (driver, source string, dialect Dialect, err error) {
	switch {
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return "pgx", dsn, DialectPostgres, nil
	case strings.HasPrefix(dsn, "sqlite://"):
		return "sqlite", strings.TrimPrefix(dsn, "sqlite://"), DialectSQLite, nil
	case strings.HasPrefix(dsn, "file:"), dsn == ":memory:":
		return "sqlite", dsn, DialectSQLite, nil
	}
	return "", "", "", fmt.Errorf("%w: %q", ErrUnsupportedDSN, dsn)
}
