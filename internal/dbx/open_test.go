package dbx

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		dsn        string
		driver     string
		source     string
		dialect    Dialect
		wantErrMsg string
	}{
		{dsn: "postgres://u:p@h:5432/roster", driver: "pgx", source: "postgres://u:p@h:5432/roster", dialect: DialectPostgres},
		{dsn: "postgresql://h/roster", driver: "pgx", source: "postgresql://h/roster", dialect: DialectPostgres},
		{dsn: "sqlite://roster.db", driver: "sqlite", source: "roster.db", dialect: DialectSQLite},
		{dsn: "file:roster?mode=memory", driver: "sqlite", source: "file:roster?mode=memory", dialect: DialectSQLite},
		{dsn: ":memory:", driver: "sqlite", source: ":memory:", dialect: DialectSQLite},
		{dsn: "mysql://nope", wantErrMsg: "unsupported database DSN"},
	}

	for _, tt := range tests {
		t.Run(tt.dsn, func(t *testing.T) {
			driver, source, dialect, err := resolve(tt.dsn)
			if tt.wantErrMsg != "" {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrUnsupportedDSN))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.driver, driver)
			assert.Equal(t, tt.source, source)
			assert.Equal(t, tt.dialect, dialect)
		})
	}
}

func TestOpen_SQLiteInMemory(t *testing.T) {
	db, dialect, err := Open(context.Background(), "sqlite://file:dbx_open?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	assert.Equal(t, DialectSQLite, dialect)

	var one int
	require.NoError(t, db.QueryRow(`SELECT 1`).Scan(&one))
	assert.Equal(t, 1, one)
}

func TestOpen_PostgresUsesPgxDriver(t *testing.T) {
	mockDB, _, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = mockDB.Close() })

	orig := openDB
	t.Cleanup(func() { openDB = orig })

	var gotDriver, gotSource string
	openDB = func(driver, source string) (*sql.DB, error) {
		gotDriver, gotSource = driver, source
		return mockDB, nil
	}

	db, dialect, err := Open(context.Background(), "postgres://u:p@h/roster")
	require.NoError(t, err)
	assert.Same(t, mockDB, db)
	assert.Equal(t, DialectPostgres, dialect)
	assert.Equal(t, "pgx", gotDriver)
	assert.Equal(t, "postgres://u:p@h/roster", gotSource)
}

func TestOpen_PingError(t *testing.T) {
	mockDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)

	orig := openDB
	t.Cleanup(func() { openDB = orig })
	openDB = func(string, string) (*sql.DB, error) { return mockDB, nil }

	mock.ExpectPing().WillReturnError(errors.New("refused"))
	mock.ExpectClose()

	_, _, err = Open(context.Background(), "postgres://h/roster")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ping pgx: refused")
}

func TestOpen_Unsupported(t *testing.T) {
	_, _, err := Open(context.Background(), "redis://h")
	require.ErrorIs(t, err, ErrUnsupportedDSN)
}
