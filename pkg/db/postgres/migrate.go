package postgres

import (
	"context"

	_ "github.com/golang-migrate/migrate/v4/database/postgres"

	"addressbook/migrations"
	"addressbook/pkg/db/migrate"
)

// Migrate применяет встроенные миграции Postgres по URL подключения.
func Migrate(ctx context.Context, connectionURL string) error {
	return migrate.Up(ctx, migrations.FS, migrations.PostgresDir, connectionURL)
}
