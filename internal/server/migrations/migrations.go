// Package migrations embeds the record store schema applied by goose at
// server start-up. The SQL is kept portable between PostgreSQL and SQLite.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
