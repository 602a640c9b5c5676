package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Supported values for DB_DRIVER.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
	DriverMemory   = "memory"
)

// DevJWTSecret is the JWT_SECRET default. It is only accepted by the local
// sqlite and memory drivers.
const DevJWTSecret = "change-me"

// Config holds the application configuration.
type Config struct {
	ServiceName string
	AppPort     string
	LogLevel    string

	DBDriver        string
	DatabaseDSN     string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	CacheTTL      time.Duration

	RabbitMQURL string
	JWTSecret   string
}

// Load reads the configuration from environment variables, falling back to defaults.
func Load() (Config, error) {
	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv() // Load environment variables

	cfg := Config{
		ServiceName:     v.GetString("SERVICE_NAME"),
		AppPort:         v.GetString("APP_PORT"),
		LogLevel:        v.GetString("LOG_LEVEL"),
		DBDriver:        v.GetString("DB_DRIVER"),
		DatabaseDSN:     v.GetString("DATABASE_DSN"),
		MaxOpenConns:    v.GetInt("DB_MAX_OPEN_CONNS"),
		MaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
		ConnMaxLifetime: v.GetDuration("DB_CONN_MAX_LIFETIME"),
		RedisAddr:       v.GetString("REDIS_ADDR"),
		RedisPassword:   v.GetString("REDIS_PASSWORD"),
		RedisDB:         v.GetInt("REDIS_DB"),
		CacheTTL:        v.GetDuration("CACHE_TTL"),
		RabbitMQURL:     v.GetString("RABBITMQ_URL"),
		JWTSecret:       v.GetString("JWT_SECRET"),
	}

	switch cfg.DBDriver {
	case DriverPostgres, DriverSQLite, DriverMemory:
	default:
		return Config{}, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}
	if cfg.DBDriver != DriverMemory && cfg.DatabaseDSN == "" {
		return Config{}, fmt.Errorf("DATABASE_DSN is required for driver %s", cfg.DBDriver)
	}
	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("JWT_SECRET must not be empty")
	}
	if cfg.DBDriver == DriverPostgres && cfg.UsesDevJWTSecret() {
		return Config{}, fmt.Errorf("JWT_SECRET must be set for driver %s", cfg.DBDriver)
	}
	return cfg, nil
}

// UsesDevJWTSecret reports whether tokens are signed with the public default secret.
func (c Config) UsesDevJWTSecret() bool {
	return c.JWTSecret == DevJWTSecret
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("SERVICE_NAME", "shop")
	v.SetDefault("APP_PORT", ":8080")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("DB_DRIVER", DriverSQLite)
	v.SetDefault("DATABASE_DSN", "file:shop.db?cache=shared")
	v.SetDefault("DB_MAX_OPEN_CONNS", 25)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)
	v.SetDefault("DB_CONN_MAX_LIFETIME", 5*time.Minute)
	v.SetDefault("REDIS_ADDR", "") // empty disables the category cache
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("CACHE_TTL", 10*time.Minute)
	v.SetDefault("RABBITMQ_URL", "") // empty disables order events
	v.SetDefault("JWT_SECRET", DevJWTSecret)
}
