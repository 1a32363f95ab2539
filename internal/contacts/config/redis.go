package config

import (
	"time"

	pkgredis "addressbook/pkg/db/redis"
)

// RedisConfig содержит настройки подключения к Redis.
type RedisConfig struct {
	Host      string        `yaml:"host" env:"ADDRESSBOOK_REDIS_HOST" env-default:"localhost"`
	Port      int           `yaml:"port" env:"ADDRESSBOOK_REDIS_PORT" env-default:"6379"`
	Password  string        `yaml:"password" env:"ADDRESSBOOK_REDIS_PASSWORD" env-default:""`
	DB        int           `yaml:"db" env:"ADDRESSBOOK_REDIS_DB" env-default:"0"`
	PoolSize  int           `yaml:"pool_size" env:"ADDRESSBOOK_REDIS_POOL_SIZE" env-default:"10"`
	Timeout   time.Duration `yaml:"timeout" env:"ADDRESSBOOK_REDIS_TIMEOUT" env-default:"5s"`
	KeyPrefix string        `yaml:"key_prefix" env:"ADDRESSBOOK_REDIS_KEY_PREFIX" env-default:"addressbook"`
}

// ClientConfig переводит настройки в конфигурацию клиента pkg/db/redis.
func (r *RedisConfig) ClientConfig() *pkgredis.Config {
	return &pkgredis.Config{
		Host:     r.Host,
		Port:     r.Port,
		Password: r.Password,
		DB:       r.DB,
		PoolSize: r.PoolSize,
		Timeout:  r.Timeout,
	}
}
