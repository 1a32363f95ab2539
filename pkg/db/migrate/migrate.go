// Package migrate применяет встроенные SQL миграции через golang-migrate.
package migrate

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"go.uber.org/zap"

	"addressbook/pkg/logger"
)

// Константы для сообщений об ошибках миграций.
const (
	ErrOpenSource              = "failed to open migrations source"
	ErrCreateMigrationInstance = "failed to create migration instance"
	ErrApplyMigrations         = "failed to apply migrations"

	LogMigrationsApplied = "database migrations successfully applied"
)

// Up применяет миграции из каталога dir внутри fsys к базе databaseURL.
// Драйвер базы должен быть зарегистрирован импортом вызывающего пакета.
func Up(ctx context.Context, fsys fs.FS, dir, databaseURL string) error {
	log := logger.Log(ctx).With(zap.String("dir", dir))

	source, err := iofs.New(fsys, dir)
	if err != nil {
		log.Error(ctx, ErrOpenSource, zap.Error(err))
		return fmt.Errorf("%s: %w", ErrOpenSource, err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", source, databaseURL)
	if err != nil {
		log.Error(ctx, ErrCreateMigrationInstance, zap.Error(err))
		return fmt.Errorf("%s: %w", ErrCreateMigrationInstance, err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		log.Error(ctx, ErrApplyMigrations, zap.Error(err))
		return fmt.Errorf("%s: %w", ErrApplyMigrations, err)
	}

	log.Debug(ctx, LogMigrationsApplied)
	return nil
}
