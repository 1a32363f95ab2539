// Package migrations встраивает SQL миграции в бинарный файл.
package migrations

import "embed"

// Каталоги внутри FS.
const (
	PostgresDir = "postgres"
	SQLiteDir   = "sqlite"
)

//go:embed postgres/*.sql sqlite/*.sql
var FS embed.FS
