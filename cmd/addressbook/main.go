// Package main реализует точку входа адресной книги.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"addressbook/internal/contacts/adapters/cli"
	"addressbook/internal/contacts/adapters/services"
	"addressbook/internal/contacts/adapters/storage"
	"addressbook/internal/contacts/app"
	"addressbook/internal/contacts/config"
	"addressbook/pkg/logger"
	"addressbook/pkg/shutdown"
)

// Константы для переменных окружения.
const (
	EnvLoggerMode  = "ADDRESSBOOK_LOGGER_MODE"
	EnvLoggerLevel = "ADDRESSBOOK_LOGGER_LEVEL"
)

// Константы для сообщений об ошибках.
const (
	ErrInitLogger           = "failed to initialize logger"
	ErrSyncLogger           = "failed to sync logger"
	ErrLoadConfig           = "failed to load configuration"
	ErrInitLoggerWithConfig = "failed to initialize logger with configuration settings"
	ErrInitStorage          = "failed to initialize storage"
	ErrCommand              = "command failed"
)

// Константы для игнорируемых ошибок.
const (
	ErrSyncStderr = "sync /dev/stderr: invalid argument"
	ErrSyncStdout = "sync /dev/stdout: invalid argument"
)

const defaultLoggerLevel = "warn"

func main() {
	env := logger.Development
	if strings.ToLower(os.Getenv(EnvLoggerMode)) == "production" {
		env = logger.Production
	}

	level := os.Getenv(EnvLoggerLevel)
	if level == "" {
		level = defaultLoggerLevel
	}

	log, err := logger.NewLogger(env, level)
	if err != nil {
		panic(ErrInitLogger + ": " + err.Error())
	}

	logger.SetGlobalLogger(log)

	ctx, stop := shutdown.NotifyContext(logger.NewSessionContext(context.Background(), ""))

	var exitCode int

	func() {
		defer stop()
		defer func() {
			if err := logger.Log(ctx).Sync(); err != nil {
				errMsg := err.Error()
				if strings.Contains(errMsg, ErrSyncStderr) || strings.Contains(errMsg, ErrSyncStdout) {
					return
				}
				if _, writeErr := fmt.Fprintf(os.Stderr, "%s: %v\n", ErrSyncLogger, err); writeErr != nil {
					panic(writeErr)
				}
			}
		}()

		cfg, err := config.Load(ctx)
		if err != nil {
			log.Error(ctx, ErrLoadConfig, zap.Error(err))
			exitCode = 1
			return
		}

		finalLogger, err := logger.NewLogger(cfg.Logging.GetEnvironment(), cfg.Logging.Level)
		if err != nil {
			log.Error(ctx, ErrInitLoggerWithConfig, zap.Error(err))
			exitCode = 1
			return
		}
		logger.SetGlobalLogger(finalLogger)
		log = finalLogger

		repo, err := storage.New(ctx, cfg)
		if err != nil {
			log.Error(ctx, ErrInitStorage, zap.Error(err))
			exitCode = 1
			return
		}

		useCase := app.NewContactUseCase(repo, services.SystemClock{},
			app.WithWindowDays(cfg.Birthdays.WindowDays),
			app.WithShutdownTimeout(cfg.Shutdown.GetTimeout()))

		if err := cli.Run(ctx, useCase, os.Args[1:], os.Stdout, os.Stderr); err != nil {
			if _, writeErr := fmt.Fprintf(os.Stderr, "%s: %v\n", ErrCommand, err); writeErr != nil {
				panic(writeErr)
			}
			exitCode = 1
		}
	}()

	if exitCode != 0 {
		os.Exit(exitCode)
	}
}
