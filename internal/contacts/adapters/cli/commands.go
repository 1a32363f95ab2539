// Package cli описывает дерево команд адресной книги на cobra.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"addressbook/internal/contacts/app"
	"addressbook/internal/contacts/domain/entities"
)

// ContactService - операции адресной книги, доступные из командной строки.
type ContactService interface {
	AddContact(ctx context.Context, name, phone string) (bool, error)
	ChangePhone(ctx context.Context, name, oldPhone, newPhone string) error
	Phones(ctx context.Context, name string) ([]entities.Phone, error)
	All(ctx context.Context) ([]entities.Entry, error)
	AddBirthday(ctx context.Context, name, date string) error
	ShowBirthday(ctx context.Context, name string) (entities.Birthday, error)
	WindowDays() int
	BirthdaysByWeekday(ctx context.Context, windowDays int) ([]app.WeekdayBirthdays, error)
	Delete(ctx context.Context, name string) error
}

var _ ContactService = (*app.ContactUseCase)(nil)

// Сообщения пользователю.
const (
	MsgContactAdded    = "Contact added."
	MsgContactUpdated  = "Contact updated."
	MsgPhoneChanged    = "Phone changed."
	MsgBirthdayAdded   = "Birthday added."
	MsgContactDeleted  = "Contact deleted."
	MsgNoContacts      = "No contacts."
	MsgNoPhones        = "No phones."
	MsgNoBirthdays     = "No upcoming birthdays."
	placeholderNoPhone = "-"
)

const flagDays = "days"

// UserError - ошибка, которую нужно показать пользователю как сообщение.
// Код выхода для нее 1, трассировка не печатается.
type UserError struct {
	Err error
}

func (e *UserError) Error() string { return e.Err.Error() }

func (e *UserError) Unwrap() error { return e.Err }

// IsUserError сообщает, вызвана ли ошибка вводом пользователя.
func IsUserError(err error) bool {
	var ue *UserError
	return errors.As(err, &ue)
}

func userFacing(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, entities.ErrValidation) ||
		errors.Is(err, entities.ErrContactNotFound) ||
		errors.Is(err, entities.ErrPhoneNotFound) ||
		errors.Is(err, app.ErrBirthdayNotSet) {
		return &UserError{Err: err}
	}
	return err
}

// NewRootCommand собирает корневую команду со всеми подкомандами.
func NewRootCommand(svc ContactService) *cobra.Command {
	root := &cobra.Command{
		Use:           "addressbook",
		Short:         "Contact manager with phones and birthdays",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newAddCommand(svc),
		newChangeCommand(svc),
		newPhoneCommand(svc),
		newAllCommand(svc),
		newAddBirthdayCommand(svc),
		newShowBirthdayCommand(svc),
		newBirthdaysCommand(svc),
		newDeleteCommand(svc),
	)
	return root
}

func newAddCommand(svc ContactService) *cobra.Command {
	return &cobra.Command{
		Use:   "add <name> [phone]",
		Short: "Add a contact or a phone to an existing contact",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var phone string
			if len(args) == 2 {
				phone = args[1]
			}
			created, err := svc.AddContact(cmd.Context(), args[0], phone)
			if err != nil {
				return userFacing(err)
			}
			if created {
				return writeLine(cmd.OutOrStdout(), MsgContactAdded)
			}
			return writeLine(cmd.OutOrStdout(), MsgContactUpdated)
		},
	}
}

func newChangeCommand(svc ContactService) *cobra.Command {
	return &cobra.Command{
		Use:   "change <name> <old phone> <new phone>",
		Short: "Replace a phone number of a contact",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := svc.ChangePhone(cmd.Context(), args[0], args[1], args[2]); err != nil {
				return userFacing(err)
			}
			return writeLine(cmd.OutOrStdout(), MsgPhoneChanged)
		},
	}
}

func newPhoneCommand(svc ContactService) *cobra.Command {
	return &cobra.Command{
		Use:   "phone <name>",
		Short: "Show phones of a contact",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			phones, err := svc.Phones(cmd.Context(), args[0])
			if err != nil {
				return userFacing(err)
			}
			if len(phones) == 0 {
				return writeLine(cmd.OutOrStdout(), MsgNoPhones)
			}
			values := make([]string, 0, len(phones))
			for _, p := range phones {
				values = append(values, p.String())
			}
			return writeLine(cmd.OutOrStdout(), fmt.Sprintf("%s: %s", args[0], strings.Join(values, ", ")))
		},
	}
}

func newAllCommand(svc ContactService) *cobra.Command {
	return &cobra.Command{
		Use:   "all",
		Short: "List all contacts with their first phone",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			entries, err := svc.All(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(entries) == 0 {
				return writeLine(out, MsgNoContacts)
			}
			for _, e := range entries {
				phone := placeholderNoPhone
				if e.Phone != nil {
					phone = e.Phone.String()
				}
				if err := writeLine(out, fmt.Sprintf("%s: %s", e.Name, phone)); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func newAddBirthdayCommand(svc ContactService) *cobra.Command {
	return &cobra.Command{
		Use:   "add-birthday <name> <DD.MM.YYYY>",
		Short: "Set the birthday of a contact",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := svc.AddBirthday(cmd.Context(), args[0], args[1]); err != nil {
				return userFacing(err)
			}
			return writeLine(cmd.OutOrStdout(), MsgBirthdayAdded)
		},
	}
}

func newShowBirthdayCommand(svc ContactService) *cobra.Command {
	return &cobra.Command{
		Use:   "show-birthday <name>",
		Short: "Show the birthday of a contact",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			birthday, err := svc.ShowBirthday(cmd.Context(), args[0])
			if err != nil {
				return userFacing(err)
			}
			return writeLine(cmd.OutOrStdout(), fmt.Sprintf("%s: %s", args[0], birthday.String()))
		},
	}
}

func newBirthdaysCommand(svc ContactService) *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "birthdays",
		Short: "Show upcoming birthdays grouped by weekday",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed(flagDays) {
				days = svc.WindowDays()
			}
			groups, err := svc.BirthdaysByWeekday(cmd.Context(), days)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(groups) == 0 {
				return writeLine(out, MsgNoBirthdays)
			}
			for _, g := range groups {
				if err := writeLine(out, fmt.Sprintf("%s: %s", g.Weekday, strings.Join(g.Names, ", "))); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&days, flagDays, 0, "window size in days (defaults to the configured window)")
	return cmd
}

func newDeleteCommand(svc ContactService) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a contact",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := svc.Delete(cmd.Context(), args[0]); err != nil {
				return userFacing(err)
			}
			return writeLine(cmd.OutOrStdout(), MsgContactDeleted)
		},
	}
}

func writeLine(w io.Writer, line string) error {
	_, err := fmt.Fprintln(w, line)
	return err
}
