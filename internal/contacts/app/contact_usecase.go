// Package app implements application business logic for the contacts service.
package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"addressbook/internal/contacts/domain/entities"
	"addressbook/internal/contacts/ports/repositories"
	"addressbook/internal/contacts/ports/services"
	"addressbook/pkg/logger"
	"addressbook/pkg/shutdown"
)

// Ошибки уровня бизнес-логики.
var (
	ErrBirthdayNotSet = errors.New("birthday not set")
	ErrNotLoaded      = errors.New("address book not loaded")
)

const daysInWeek = 7

const (
	errLoadContacts = "failed to load contacts"
	errSaveContacts = "failed to save contacts"
	errCloseStorage = "failed to close storage"
)

// ContactUseCase - сессия работы с адресной книгой: загрузка при старте,
// команды над контактами и сохранение в Shutdown.
type ContactUseCase struct {
	repo            repositories.ContactRepository
	clock           services.Clock
	windowDays      int
	shutdownTimeout time.Duration

	book *entities.AddressBook
}

// Option настраивает ContactUseCase.
type Option func(*ContactUseCase)

// WithWindowDays задает окно поиска дней рождения по умолчанию.
func WithWindowDays(days int) Option {
	return func(uc *ContactUseCase) { uc.windowDays = days }
}

// WithShutdownTimeout ограничивает время сохранения и закрытия хранилища.
func WithShutdownTimeout(timeout time.Duration) Option {
	return func(uc *ContactUseCase) { uc.shutdownTimeout = timeout }
}

// NewContactUseCase создает новый экземпляр ContactUseCase.
func NewContactUseCase(repo repositories.ContactRepository, clock services.Clock, opts ...Option) *ContactUseCase {
	uc := &ContactUseCase{
		repo:            repo,
		clock:           clock,
		windowDays:      entities.DefaultWindowDays,
		shutdownTimeout: 5 * time.Second,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Load читает сохраненные контакты. Отсутствие состояния дает пустую книгу.
func (uc *ContactUseCase) Load(ctx context.Context) error {
	log := logger.Log(ctx).With(zap.String("method", "ContactUseCase.Load"))

	data, err := uc.repo.Load(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", errLoadContacts, err)
	}

	book, err := entities.BookFromData(data)
	if err != nil {
		return fmt.Errorf("%s: %w", errLoadContacts, err)
	}
	uc.book = book

	log.Debug(ctx, "contacts loaded", zap.Int("count", book.Len()))
	return nil
}

// AddContact создает контакт, если его нет, и добавляет телефон, если он передан.
// Возвращает true, если контакт был создан.
func (uc *ContactUseCase) AddContact(_ context.Context, name, phone string) (bool, error) {
	if uc.book == nil {
		return false, ErrNotLoaded
	}

	if record, ok := uc.book.Lookup(name); ok {
		if phone == "" {
			return false, nil
		}
		return false, record.AddPhone(phone)
	}

	record, err := entities.NewRecord(name)
	if err != nil {
		return false, err
	}
	if phone != "" {
		if err := record.AddPhone(phone); err != nil {
			return false, err
		}
	}
	uc.book.Upsert(record)
	return true, nil
}

// ChangePhone заменяет номер контакта.
func (uc *ContactUseCase) ChangePhone(_ context.Context, name, oldPhone, newPhone string) error {
	record, err := uc.lookup(name)
	if err != nil {
		return err
	}
	return record.ChangePhone(oldPhone, newPhone)
}

// Phones возвращает телефоны контакта.
func (uc *ContactUseCase) Phones(_ context.Context, name string) ([]entities.Phone, error) {
	record, err := uc.lookup(name)
	if err != nil {
		return nil, err
	}
	return record.Phones(), nil
}

// All возвращает список контактов с основным телефоном.
func (uc *ContactUseCase) All(_ context.Context) ([]entities.Entry, error) {
	if uc.book == nil {
		return nil, ErrNotLoaded
	}
	return uc.book.ListAll(), nil
}

// AddBirthday задает день рождения контакта.
func (uc *ContactUseCase) AddBirthday(_ context.Context, name, date string) error {
	record, err := uc.lookup(name)
	if err != nil {
		return err
	}
	return record.SetBirthday(date)
}

// ShowBirthday возвращает день рождения контакта.
func (uc *ContactUseCase) ShowBirthday(_ context.Context, name string) (entities.Birthday, error) {
	record, err := uc.lookup(name)
	if err != nil {
		return entities.Birthday{}, err
	}
	birthday, ok := record.Birthday()
	if !ok {
		return entities.Birthday{}, fmt.Errorf("%w for %q", ErrBirthdayNotSet, name)
	}
	return birthday, nil
}

// WeekdayBirthdays - контакты, чей день рождения выпадает на один день недели.
type WeekdayBirthdays struct {
	Weekday time.Weekday
	Names   []string
}

// WindowDays возвращает окно поиска дней рождения по умолчанию.
func (uc *ContactUseCase) WindowDays() int {
	return uc.windowDays
}

// BirthdaysByWeekday группирует дни рождения в окне windowDays по дням недели
// и упорядочивает группы от текущего дня недели вперед.
func (uc *ContactUseCase) BirthdaysByWeekday(_ context.Context, windowDays int) ([]WeekdayBirthdays, error) {
	if uc.book == nil {
		return nil, ErrNotLoaded
	}

	now := uc.clock.Now()
	grouped := uc.book.UpcomingBirthdays(now, windowDays)

	out := make([]WeekdayBirthdays, 0, len(grouped))
	for i := range daysInWeek {
		day := (now.Weekday() + time.Weekday(i)) % daysInWeek
		if names, ok := grouped[day.String()]; ok {
			out = append(out, WeekdayBirthdays{Weekday: day, Names: names})
		}
	}
	return out, nil
}

// Delete удаляет контакт.
func (uc *ContactUseCase) Delete(_ context.Context, name string) error {
	if uc.book == nil {
		return ErrNotLoaded
	}
	if !uc.book.Delete(name) {
		return fmt.Errorf("%w: %q", entities.ErrContactNotFound, name)
	}
	return nil
}

// Shutdown сохраняет книгу и закрывает хранилище. Процесс не завершается:
// вызывающий код сам решает, что делать с возвращенной ошибкой.
func (uc *ContactUseCase) Shutdown(ctx context.Context) error {
	log := logger.Log(ctx).With(zap.String("method", "ContactUseCase.Shutdown"))

	hooks := make([]shutdown.Hook, 0, 2)
	if uc.book != nil {
		data := entities.BookData(uc.book)
		hooks = append(hooks, func(ctx context.Context) error {
			if err := uc.repo.Save(ctx, data); err != nil {
				return fmt.Errorf("%s: %w", errSaveContacts, err)
			}
			log.Debug(ctx, "contacts saved", zap.Int("count", len(data)))
			return nil
		})
	}
	hooks = append(hooks, func(ctx context.Context) error {
		if err := uc.repo.Close(ctx); err != nil {
			return fmt.Errorf("%s: %w", errCloseStorage, err)
		}
		return nil
	})

	if err := shutdown.Run(ctx, uc.shutdownTimeout, hooks...); err != nil {
		log.Error(ctx, "shutdown failed", zap.Error(err))
		return err
	}
	return nil
}

func (uc *ContactUseCase) lookup(name string) (*entities.Record, error) {
	if uc.book == nil {
		return nil, ErrNotLoaded
	}
	record, ok := uc.book.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", entities.ErrContactNotFound, name)
	}
	return record, nil
}
