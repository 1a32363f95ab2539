package config

// BirthdaysConfig задает окно поиска ближайших дней рождения.
type BirthdaysConfig struct {
	WindowDays int `yaml:"window_days" env:"ADDRESSBOOK_BIRTHDAYS_WINDOW_DAYS" env-default:"7"`
}
