// Package config содержит конфигурацию адресной книги.
package config

import (
	"context"
	"fmt"
	"os"
	"slices"

	"go.uber.org/zap"

	pkgconfig "addressbook/pkg/config"
	"addressbook/pkg/logger"
)

// EnvConfigFile - путь к необязательному YAML файлу конфигурации.
const EnvConfigFile = "ADDRESSBOOK_CONFIG"

const (
	serviceName = "addressbook"

	LogConfigLoaded  = "configuration loaded"
	ErrInvalidConfig = "invalid configuration"
)

// Config представляет полную конфигурацию приложения.
type Config struct {
	Logging   LoggingConfig   `yaml:"logging"`
	Storage   StorageConfig   `yaml:"storage"`
	Redis     RedisConfig     `yaml:"redis"`
	Postgres  PostgresConfig  `yaml:"postgres"`
	Birthdays BirthdaysConfig `yaml:"birthdays"`
	Shutdown  ShutdownConfig  `yaml:"shutdown"`
}

// Load загружает конфигурацию из файла ADDRESSBOOK_CONFIG (если задан) и переменных окружения.
func Load(ctx context.Context) (*Config, error) {
	cfg, err := pkgconfig.Load[Config](ctx, serviceName, os.Getenv(EnvConfigFile))
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrInvalidConfig, err)
	}

	logger.Log(ctx).Debug(ctx, LogConfigLoaded,
		zap.String("storage_driver", cfg.Storage.Driver),
		zap.String("log_level", cfg.Logging.Level),
		zap.String("log_mode", cfg.Logging.Mode),
		zap.Int("birthdays_window_days", cfg.Birthdays.WindowDays),
		zap.Int("shutdown_timeout_seconds", cfg.Shutdown.Timeout))

	return cfg, nil
}

// Validate проверяет значения, которые cleanenv не проверяет сам.
func (c *Config) Validate() error {
	if !slices.Contains(Drivers, c.Storage.Driver) {
		return fmt.Errorf("unknown storage driver %q, expected one of %v", c.Storage.Driver, Drivers)
	}
	if c.Birthdays.WindowDays < 0 {
		return fmt.Errorf("birthdays window must not be negative, got %d", c.Birthdays.WindowDays)
	}
	if c.Shutdown.Timeout <= 0 {
		return fmt.Errorf("shutdown timeout must be positive, got %d", c.Shutdown.Timeout)
	}
	return nil
}
