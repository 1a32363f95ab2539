// Package entities определяет доменные сущности адресной книги.
package entities

import (
	"slices"
	"strings"
	"time"
)

const oneDay = 24 * time.Hour

// Record - один контакт: имя, телефоны и необязательный день рождения.
// Имя задается при создании и не меняется.
type Record struct {
	name     string
	phones   []Phone
	birthday *Birthday
}

// NewRecord создает контакт без телефонов и дня рождения.
func NewRecord(name string) (*Record, error) {
	if strings.TrimSpace(name) == "" {
		return nil, newValidationError("name", name, "must not be empty")
	}
	return &Record{name: name}, nil
}

func (r *Record) Name() string { return r.name }

// Phones возвращает копию списка телефонов в порядке добавления.
func (r *Record) Phones() []Phone {
	return slices.Clone(r.phones)
}

// PrimaryPhone возвращает первый добавленный телефон.
func (r *Record) PrimaryPhone() (Phone, bool) {
	if len(r.phones) == 0 {
		return Phone{}, false
	}
	return r.phones[0], true
}

// AddPhone добавляет номер в конец списка. Дубликаты допускаются.
func (r *Record) AddPhone(raw string) error {
	phone, err := NewPhone(raw)
	if err != nil {
		return err
	}
	r.phones = append(r.phones, phone)
	return nil
}

// FindPhone сообщает, есть ли номер у контакта.
func (r *Record) FindPhone(raw string) (Phone, bool) {
	i := slices.IndexFunc(r.phones, func(p Phone) bool { return p.value == raw })
	if i < 0 {
		return Phone{}, false
	}
	return r.phones[i], true
}

// ChangePhone заменяет первое вхождение oldRaw на newRaw, сохраняя позицию.
func (r *Record) ChangePhone(oldRaw, newRaw string) error {
	phone, err := NewPhone(newRaw)
	if err != nil {
		return err
	}
	i := slices.IndexFunc(r.phones, func(p Phone) bool { return p.value == oldRaw })
	if i < 0 {
		return ErrPhoneNotFound
	}
	r.phones[i] = phone
	return nil
}

// SetBirthday задает день рождения, заменяя предыдущий.
func (r *Record) SetBirthday(raw string) error {
	birthday, err := ParseBirthday(raw)
	if err != nil {
		return err
	}
	r.birthday = &birthday
	return nil
}

// Birthday возвращает день рождения, если он задан.
func (r *Record) Birthday() (Birthday, bool) {
	if r.birthday == nil {
		return Birthday{}, false
	}
	return *r.birthday, true
}

// DaysUntilBirthday возвращает число целых дней от now до следующего дня рождения.
// Второй результат false, если день рождения не задан.
func (r *Record) DaysUntilBirthday(now time.Time) (int, bool) {
	if r.birthday == nil {
		return 0, false
	}
	next := r.birthday.NextOccurrence(now)
	return int(next.Sub(civil(now)) / oneDay), true
}
