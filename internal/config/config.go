package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	GinMode           string        `koanf:"gin_mode" validate:"required,oneof=debug release test"`
	HTTPAddr          string        `koanf:"http_addr" validate:"required"`
	LogLevel          string        `koanf:"log_level" validate:"required,oneof=trace debug info warn error"`
	TZ                string        `koanf:"tz" validate:"required"`
	DBDriver          string        `koanf:"db_driver" validate:"required,oneof=postgres sqlite"`
	DBHost            string        `koanf:"db_host" validate:"required_if=DBDriver postgres"`
	DBPort            string        `koanf:"db_port" validate:"required_if=DBDriver postgres"`
	DBUser            string        `koanf:"db_user" validate:"required_if=DBDriver postgres"`
	DBPass            string        `koanf:"db_pass"`
	DBName            string        `koanf:"db_name" validate:"required_if=DBDriver postgres"`
	DBSSLMode         string        `koanf:"db_sslmode"`
	SQLitePath        string        `koanf:"sqlite_path" validate:"required_if=DBDriver sqlite"`
	DBConnectAttempts int           `koanf:"db_connect_attempts" validate:"gte=1"`
	DBConnectDelay    time.Duration `koanf:"db_connect_delay" validate:"gte=0"`
	ShutdownTimeout   time.Duration `koanf:"shutdown_timeout" validate:"gt=0"`
}

func defaults() *Config {
	return &Config{
		GinMode:           "debug",
		HTTPAddr:          ":8080",
		LogLevel:          "info",
		TZ:                "UTC",
		DBDriver:          DriverPostgres,
		DBHost:            "localhost",
		DBPort:            "5432",
		DBUser:            "postgres",
		DBName:            "postgres",
		SQLitePath:        "books.db",
		DBConnectAttempts: 10,
		DBConnectDelay:    2 * time.Second,
		ShutdownTimeout:   10 * time.Second,
	}
}

// Load reads an optional .env file (path overridable with ENV_FILE), then
// maps the process environment onto Config. Variables already set in the
// environment win over the file.
func Load() (*Config, error) {
	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load %s: %w", envFile, err)
	}

	k := koanf.New(".")
	if err := k.Load(env.Provider("", ".", strings.ToLower), nil); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	cfg := defaults()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if cfg.DBSSLMode == "" {
		if cfg.GinMode == "release" {
			cfg.DBSSLMode = "require"
		} else {
			cfg.DBSSLMode = "disable"
		}
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func (c *Config) DSN() string {
	if c.DBDriver == DriverSQLite {
		return c.SQLitePath
	}

	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		c.DBHost,
		c.DBUser,
		c.DBPass,
		c.DBName,
		c.DBPort,
		c.DBSSLMode,
		c.TZ,
	)
}

func (c *Config) Pretty() bool {
	return c.GinMode != "release"
}
