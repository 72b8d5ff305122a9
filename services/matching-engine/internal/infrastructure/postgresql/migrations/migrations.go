// Package migrations embeds the engine's PostgreSQL schema.
package migrations

import "embed"

// FS holds the NAME.up.sql / NAME.down.sql files applied by pkg/migration-pg.
//
//go:embed *.sql
var FS embed.FS
