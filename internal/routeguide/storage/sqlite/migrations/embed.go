package migrations

import "embed"

// FS contains embedded SQLite migrations for feature storage.
//
//go:embed *.sql
var FS embed.FS
