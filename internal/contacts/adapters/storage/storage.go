// Package storage выбирает реализацию репозитория контактов по конфигурации.
package storage

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"addressbook/internal/contacts/adapters/file"
	pgrepo "addressbook/internal/contacts/adapters/postgres"
	redisrepo "addressbook/internal/contacts/adapters/redis"
	sqliterepo "addressbook/internal/contacts/adapters/sqlite"
	"addressbook/internal/contacts/config"
	"addressbook/internal/contacts/ports/repositories"
	"addressbook/pkg/db/postgres"
	pkgredis "addressbook/pkg/db/redis"
	"addressbook/pkg/db/sqlite"
	"addressbook/pkg/logger"
)

// Константы для сообщений об ошибках.
const (
	ErrUnknownDriver   = "unknown storage driver"
	ErrConnectRedis    = "failed to connect to redis"
	ErrConnectPostgres = "failed to connect to postgres"
	ErrMigratePostgres = "failed to apply postgres migrations"
	ErrOpenSQLite      = "failed to open sqlite storage"
)

// New открывает хранилище, выбранное в cfg.Storage.Driver.
// Закрытие соединения выполняет Close возвращенного репозитория.
func New(ctx context.Context, cfg *config.Config) (repositories.ContactRepository, error) {
	log := logger.Log(ctx).With(zap.String("driver", cfg.Storage.Driver))

	switch cfg.Storage.Driver {
	case config.DriverFile:
		log.Debug(ctx, "using file storage", zap.String("path", cfg.Storage.FilePath))
		return file.NewContactRepository(cfg.Storage.FilePath), nil

	case config.DriverRedis:
		client, err := pkgredis.NewClient(ctx, cfg.Redis.ClientConfig())
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrConnectRedis, err)
		}
		return redisrepo.NewContactRepository(client, cfg.Redis.KeyPrefix), nil

	case config.DriverPostgres:
		if err := postgres.Migrate(ctx, cfg.Postgres.GetConnectionURL()); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMigratePostgres, err)
		}
		db, err := postgres.New(ctx, postgres.Options{
			DSN:      cfg.Postgres.GetDSN(),
			MinConns: cfg.Postgres.MinConn,
			MaxConns: cfg.Postgres.MaxConn,
		})
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrConnectPostgres, err)
		}
		return pgrepo.NewContactRepository(db.Pool()), nil

	case config.DriverSQLite:
		db, err := sqlite.Open(ctx, cfg.Storage.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrOpenSQLite, err)
		}
		return sqliterepo.NewContactRepository(db), nil
	}

	log.Error(ctx, ErrUnknownDriver)
	return nil, fmt.Errorf("%s: %q", ErrUnknownDriver, cfg.Storage.Driver)
}
