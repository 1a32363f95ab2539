package cli_test

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"addressbook/internal/contacts/adapters/cli"
	"addressbook/internal/contacts/adapters/file"
	"addressbook/internal/contacts/adapters/services"
	"addressbook/internal/contacts/app"
	"addressbook/internal/contacts/domain/entities"
	"addressbook/pkg/logger"
)

// 10.06.2024 - понедельник.
var monday = time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC)

type session struct {
	t    *testing.T
	path string
}

func newSession(t *testing.T) *session {
	t.Helper()
	return &session{t: t, path: filepath.Join(t.TempDir(), "book.yaml")}
}

func (s *session) run(args ...string) (string, error) {
	s.t.Helper()
	return s.runContext(context.Background(), args...)
}

func (s *session) runContext(ctx context.Context, args ...string) (string, error) {
	s.t.Helper()

	uc := app.NewContactUseCase(file.NewContactRepository(s.path), services.FixedClock{At: monday})
	var out, errOut bytes.Buffer
	err := cli.Run(ctx, uc, args, &out, &errOut)
	return out.String(), err
}

func (s *session) mustRun(args ...string) string {
	s.t.Helper()

	out, err := s.run(args...)
	require.NoError(s.t, err)
	return out
}

func TestAddAndAll(t *testing.T) {
	s := newSession(t)

	assert.Equal(t, cli.MsgNoContacts+"\n", s.mustRun("all"))
	assert.Equal(t, cli.MsgContactAdded+"\n", s.mustRun("add", "John", "1234567890"))
	assert.Equal(t, cli.MsgContactUpdated+"\n", s.mustRun("add", "John", "5555555555"))
	assert.Equal(t, cli.MsgContactAdded+"\n", s.mustRun("add", "Jane"))

	assert.Equal(t, "John: 1234567890\nJane: -\n", s.mustRun("all"))
	assert.Equal(t, "John: 1234567890, 5555555555\n", s.mustRun("phone", "John"))
	assert.Equal(t, cli.MsgNoPhones+"\n", s.mustRun("phone", "Jane"))
}

func TestChange(t *testing.T) {
	s := newSession(t)
	s.mustRun("add", "John", "1234567890")

	assert.Equal(t, cli.MsgPhoneChanged+"\n", s.mustRun("change", "John", "1234567890", "0987654321"))
	assert.Equal(t, "John: 0987654321\n", s.mustRun("phone", "John"))

	_, err := s.run("change", "John", "1111111111", "2222222222")
	require.Error(t, err)
	assert.True(t, cli.IsUserError(err))
	assert.ErrorIs(t, err, entities.ErrPhoneNotFound)

	_, err = s.run("change", "John", "0987654321", "12ab")
	require.Error(t, err)
	assert.ErrorIs(t, err, entities.ErrValidation)
	assert.Equal(t, "John: 0987654321\n", s.mustRun("phone", "John"))
}

func TestBirthdayCommands(t *testing.T) {
	s := newSession(t)
	s.mustRun("add", "John", "1234567890")

	assert.Equal(t, cli.MsgBirthdayAdded+"\n", s.mustRun("add-birthday", "John", "12.06.1990"))
	assert.Equal(t, "John: 12.06.1990\n", s.mustRun("show-birthday", "John"))

	_, err := s.run("add-birthday", "John", "1990-06-12")
	require.Error(t, err)
	assert.True(t, cli.IsUserError(err))
	assert.Equal(t, "John: 12.06.1990\n", s.mustRun("show-birthday", "John"))

	s.mustRun("add", "Jane")
	_, err = s.run("show-birthday", "Jane")
	require.Error(t, err)
	assert.ErrorIs(t, err, app.ErrBirthdayNotSet)
}

func TestBirthdays(t *testing.T) {
	s := newSession(t)

	assert.Equal(t, cli.MsgNoBirthdays+"\n", s.mustRun("birthdays"))

	s.mustRun("add", "John")
	s.mustRun("add-birthday", "John", "12.06.1990")
	s.mustRun("add", "Jane")
	s.mustRun("add-birthday", "Jane", "10.06.1985")
	s.mustRun("add", "Bob")
	s.mustRun("add-birthday", "Bob", "12.06.2000")
	s.mustRun("add", "Alice")
	s.mustRun("add-birthday", "Alice", "30.06.1995")

	assert.Equal(t, "Monday: Jane\nWednesday: John, Bob\n", s.mustRun("birthdays"))
	assert.Equal(t, "Monday: Jane\n", s.mustRun("birthdays", "--days", "1"))
	assert.Equal(t, "Monday: Jane\n", s.mustRun("birthdays", "--days", "0"))
	assert.Equal(t, cli.MsgNoBirthdays+"\n", s.mustRun("birthdays", "--days", "-1"))
	assert.Equal(t, "Monday: Jane\nWednesday: John, Bob\nSunday: Alice\n", s.mustRun("birthdays", "--days", "20"))
}

func TestBirthdaysMatchAddressBookGrouping(t *testing.T) {
	s := newSession(t)
	contacts := [][2]string{
		{"Sun", "16.06.1999"},
		{"NextMonday", "17.06.2001"},
		{"Wed", "12.06.1990"},
		{"Today", "10.06.1985"},
		{"Passed", "09.06.1990"},
	}

	book := entities.NewAddressBook()
	for _, c := range contacts {
		s.mustRun("add", c[0])
		s.mustRun("add-birthday", c[0], c[1])

		r, err := entities.NewRecord(c[0])
		require.NoError(t, err)
		require.NoError(t, r.SetBirthday(c[1]))
		book.Upsert(r)
	}

	lines := strings.Split(strings.TrimSuffix(s.mustRun("birthdays"), "\n"), "\n")
	grouped := book.UpcomingBirthdays(monday, entities.DefaultWindowDays)

	require.Len(t, lines, len(grouped))
	for day, names := range grouped {
		assert.Contains(t, lines, day+": "+strings.Join(names, ", "))
	}
	assert.Equal(t, "Monday: NextMonday, Today", lines[0], "current weekday comes first")
}

func TestDelete(t *testing.T) {
	s := newSession(t)
	s.mustRun("add", "John", "1234567890")

	assert.Equal(t, cli.MsgContactDeleted+"\n", s.mustRun("delete", "John"))
	assert.Equal(t, cli.MsgNoContacts+"\n", s.mustRun("all"))

	_, err := s.run("delete", "John")
	require.Error(t, err)
	assert.ErrorIs(t, err, entities.ErrContactNotFound)
}

func TestValidationErrors(t *testing.T) {
	s := newSession(t)

	_, err := s.run("add", "John", "123")
	require.Error(t, err)
	assert.True(t, cli.IsUserError(err))

	_, err = s.run("add", "   ", "1234567890")
	require.Error(t, err)
	assert.ErrorIs(t, err, entities.ErrValidation)

	_, err = s.run("phone", "Nobody")
	require.Error(t, err)
	assert.ErrorIs(t, err, entities.ErrContactNotFound)

	assert.Equal(t, cli.MsgNoContacts+"\n", s.mustRun("all"))
}

func TestArgumentErrors(t *testing.T) {
	s := newSession(t)

	_, err := s.run("change", "John")
	require.Error(t, err)
	assert.False(t, cli.IsUserError(err))

	_, err = s.run("unknown")
	assert.Error(t, err)
}

func TestRunLogsOnlyUnexpectedErrors(t *testing.T) {
	s := newSession(t)
	core, logs := observer.New(zapcore.ErrorLevel)
	ctx := logger.NewContext(context.Background(), logger.FromZap(zap.New(core)))

	_, err := s.runContext(ctx, "phone", "Nobody")
	require.Error(t, err)
	assert.Zero(t, logs.Len(), "user errors are reported to the caller only")

	_, err = s.runContext(ctx, "change", "John")
	require.Error(t, err)
	assert.Equal(t, 1, logs.FilterMessage("command failed").Len())
}
