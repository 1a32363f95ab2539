package entities

import (
	"time"
)

// BirthdayLayout - текстовый формат даты рождения DD.MM.YYYY.
const BirthdayLayout = "02.01.2006"

// Birthday - календарная дата рождения без времени и часового пояса.
type Birthday struct {
	year  int
	month time.Month
	day   int
}

// ParseBirthday разбирает дату в формате DD.MM.YYYY.
// Несуществующие даты (31.02.2020) и нулевой год отклоняются.
func ParseBirthday(raw string) (Birthday, error) {
	if len(raw) != len(BirthdayLayout) {
		return Birthday{}, newValidationError("birthday", raw, "must use the DD.MM.YYYY format")
	}
	t, err := time.Parse(BirthdayLayout, raw)
	if err != nil {
		return Birthday{}, newValidationError("birthday", raw, "must be a real date in the DD.MM.YYYY format")
	}
	if t.Year() < 1 {
		return Birthday{}, newValidationError("birthday", raw, "year must be positive")
	}
	return Birthday{year: t.Year(), month: t.Month(), day: t.Day()}, nil
}

func (b Birthday) Year() int { return b.year }

func (b Birthday) Month() time.Month { return b.month }

func (b Birthday) Day() int { return b.day }

func (b Birthday) Value() string { return b.String() }

func (b Birthday) String() string {
	return b.Date(time.UTC).Format(BirthdayLayout)
}

// Date возвращает полночь даты рождения в loc.
func (b Birthday) Date(loc *time.Location) time.Time {
	return time.Date(b.year, b.month, b.day, 0, 0, 0, 0, loc)
}

// OccurrenceIn возвращает полночь дня рождения в году year.
// 29 февраля в невисокосный год отмечается 28 февраля.
func (b Birthday) OccurrenceIn(year int, loc *time.Location) time.Time {
	day := b.day
	if b.month == time.February && day == 29 && !isLeap(year) {
		day = 28
	}
	return time.Date(year, b.month, day, 0, 0, 0, 0, loc)
}

// NextOccurrence возвращает ближайший день рождения, который не раньше now.
// Кандидат на полночь сравнивается с полным моментом now.
// Результат - гражданская дата в UTC: часовой пояс now учитывается только
// для чтения календарной даты и времени суток.
func (b Birthday) NextOccurrence(now time.Time) time.Time {
	now = civil(now)
	next := b.OccurrenceIn(now.Year(), time.UTC)
	if next.Before(now) {
		next = b.OccurrenceIn(now.Year()+1, time.UTC)
	}
	return next
}

// civil переносит показания часов t в UTC без пересчета.
// Разница двух таких моментов не зависит от переходов на летнее время.
func civil(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
}

func isLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}
