package entities

import (
	"slices"
	"time"
)

// DefaultWindowDays - окно поиска ближайших дней рождения по умолчанию.
const DefaultWindowDays = 7

// Entry - строка списка контактов: имя и первый телефон, если он есть.
type Entry struct {
	Name  string
	Phone *Phone
}

// UpcomingBirthday - контакт, чей день рождения попадает в окно.
type UpcomingBirthday struct {
	Name    string
	Days    int
	Date    time.Time
	Weekday time.Weekday
}

// AddressBook хранит контакты по имени в порядке первого добавления.
// Ключ записи всегда совпадает с Record.Name().
type AddressBook struct {
	records map[string]*Record
	order   []string
}

// NewAddressBook создает книгу из записей; повторное имя заменяет запись.
func NewAddressBook(records ...*Record) *AddressBook {
	b := &AddressBook{records: make(map[string]*Record, len(records))}
	for _, r := range records {
		b.Upsert(r)
	}
	return b
}

// Upsert добавляет или заменяет запись по ее имени. Замена сохраняет позицию.
func (b *AddressBook) Upsert(record *Record) {
	if record == nil {
		return
	}
	if _, ok := b.records[record.name]; !ok {
		b.order = append(b.order, record.name)
	}
	b.records[record.name] = record
}

// Lookup возвращает запись по имени.
func (b *AddressBook) Lookup(name string) (*Record, bool) {
	r, ok := b.records[name]
	return r, ok
}

// Delete удаляет запись и сообщает, была ли она.
func (b *AddressBook) Delete(name string) bool {
	if _, ok := b.records[name]; !ok {
		return false
	}
	delete(b.records, name)
	b.order = slices.DeleteFunc(b.order, func(n string) bool { return n == name })
	return true
}

func (b *AddressBook) Len() int { return len(b.order) }

// Records возвращает записи в порядке добавления.
func (b *AddressBook) Records() []*Record {
	out := make([]*Record, 0, len(b.order))
	for _, name := range b.order {
		out = append(out, b.records[name])
	}
	return out
}

// ListAll возвращает имя и основной телефон каждого контакта.
func (b *AddressBook) ListAll() []Entry {
	out := make([]Entry, 0, len(b.order))
	for _, name := range b.order {
		e := Entry{Name: name}
		if p, ok := b.records[name].PrimaryPhone(); ok {
			e.Phone = &p
		}
		out = append(out, e)
	}
	return out
}

// Upcoming возвращает контакты с днем рождения через 0..windowDays дней в порядке книги.
// Даты считаются по календарю, Date приводится к UTC.
func (b *AddressBook) Upcoming(now time.Time, windowDays int) []UpcomingBirthday {
	var out []UpcomingBirthday
	for _, name := range b.order {
		days, ok := b.records[name].DaysUntilBirthday(now)
		if !ok || days < 0 || days > windowDays {
			continue
		}
		date := civil(now).AddDate(0, 0, days)
		out = append(out, UpcomingBirthday{
			Name:    name,
			Days:    days,
			Date:    date,
			Weekday: date.Weekday(),
		})
	}
	return out
}

// UpcomingBirthdays группирует Upcoming по названию дня недели.
// Пустые дни в результат не попадают.
func (b *AddressBook) UpcomingBirthdays(now time.Time, windowDays int) map[string][]string {
	result := make(map[string][]string)
	for _, u := range b.Upcoming(now, windowDays) {
		day := u.Weekday.String()
		result[day] = append(result[day], u.Name)
	}
	return result
}
