// Package sqlite открывает файл базы SQLite через modernc.org/sqlite и применяет миграции.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/golang-migrate/migrate/v4/database/sqlite"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"addressbook/migrations"
	"addressbook/pkg/db/migrate"
	"addressbook/pkg/logger"
)

const driverName = "sqlite"

const (
	ErrCreateDir = "failed to create database directory"
	ErrOpen      = "failed to open sqlite database"
	ErrPing      = "failed to ping sqlite database"
)

// Open открывает базу path, создавая каталог при необходимости, и применяет миграции.
func Open(ctx context.Context, path string) (*sql.DB, error) {
	log := logger.Log(ctx).With(zap.String("path", path))

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.Error(ctx, ErrCreateDir, zap.Error(err))
			return nil, fmt.Errorf("%s: %w", ErrCreateDir, err)
		}
	}

	if err := migrate.Up(ctx, migrations.FS, migrations.SQLiteDir, "sqlite://"+path); err != nil {
		return nil, err
	}

	db, err := sql.Open(driverName, path+"?_pragma=busy_timeout(5000)")
	if err != nil {
		log.Error(ctx, ErrOpen, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", ErrOpen, err)
	}
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		log.Error(ctx, ErrPing, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", ErrPing, err)
	}

	log.Debug(ctx, "sqlite database opened")
	return db, nil
}
