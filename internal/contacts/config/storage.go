package config

// Поддерживаемые хранилища.
const (
	DriverFile     = "file"
	DriverRedis    = "redis"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Drivers перечисляет допустимые значения StorageConfig.Driver.
var Drivers = []string{DriverFile, DriverRedis, DriverPostgres, DriverSQLite}

// StorageConfig выбирает хранилище контактов.
type StorageConfig struct {
	Driver     string `yaml:"driver" env:"ADDRESSBOOK_STORAGE_DRIVER" env-default:"file"`
	FilePath   string `yaml:"file_path" env:"ADDRESSBOOK_FILE_PATH" env-default:"addressbook.yaml"`
	SQLitePath string `yaml:"sqlite_path" env:"ADDRESSBOOK_SQLITE_PATH" env-default:"addressbook.db"`
}
