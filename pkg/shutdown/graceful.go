// Package shutdown выполняет завершающие хуки сессии и перехватывает SIGINT/SIGTERM.
// Пакет никогда не завершает процесс сам: решение об exit code остается вызывающему коду.
package shutdown

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/multierr"
)

// ErrTimeout возвращается, если хуки не уложились в timeout.
var ErrTimeout = errors.New("shutdown timed out")

// Hook - один шаг завершения, например сохранение или закрытие соединения.
type Hook func(context.Context) error

// NotifyContext возвращает контекст, который отменяется при SIGINT или SIGTERM.
func NotifyContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}

// Run выполняет хуки по порядку в рамках timeout и возвращает все их ошибки.
// Ошибка одного хука не останавливает следующие.
func Run(ctx context.Context, timeout time.Duration, hooks ...Hook) error {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), timeout)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		var errs error
		for _, hook := range hooks {
			errs = multierr.Append(errs, hook(ctx))
		}
		done <- errs
	}()

	select {
	case err := <-done:
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return multierr.Append(err, timeoutError(timeout))
		}
		return err
	case <-ctx.Done():
		return timeoutError(timeout)
	}
}

func timeoutError(timeout time.Duration) error {
	return fmt.Errorf("%w after %s", ErrTimeout, timeout)
}
