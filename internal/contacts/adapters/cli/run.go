package cli

import (
	"context"
	"io"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"addressbook/internal/contacts/app"
	"addressbook/pkg/logger"
)

// Run проводит одну сессию: загружает книгу, выполняет команду из args
// и сохраняет книгу через Shutdown, даже если команда завершилась ошибкой.
func Run(ctx context.Context, uc *app.ContactUseCase, args []string, out, errOut io.Writer) error {
	log := logger.Log(ctx).With(zap.String("method", "cli.Run"))

	if err := uc.Load(ctx); err != nil {
		return multierr.Append(err, uc.Shutdown(ctx))
	}

	root := NewRootCommand(uc)
	root.SetArgs(args)
	root.SetOut(out)
	root.SetErr(errOut)

	execErr := root.ExecuteContext(ctx)
	if execErr != nil && !IsUserError(execErr) {
		log.Error(ctx, "command failed", zap.Error(execErr))
	}

	return multierr.Append(execErr, uc.Shutdown(ctx))
}
