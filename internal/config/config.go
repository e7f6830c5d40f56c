package config

import (
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	StoreDriverPostgres = "postgres"
	StoreDriverMemory   = "memory"
)

// DatabaseConfig holds PostgreSQL database connection settings.
type DatabaseConfig struct {
	Host               string `yaml:"host" env:"DB_HOST"`
	Port               string `yaml:"port" env:"DB_PORT" env-default:"5432"`
	User               string `yaml:"user" env:"DB_USER"`
	Password           string `yaml:"password" env:"DB_PASSWORD"`
	Name               string `yaml:"name" env:"DB_NAME"`
	SSLMode            string `yaml:"sslmode" env:"DB_SSLMODE" env-default:"disable"`
	MaxOpenConns       int    `yaml:"max_open_conns" env:"DB_MAX_OPEN_CONNS" env-default:"10"`
	MaxIdleConns       int    `yaml:"max_idle_conns" env:"DB_MAX_IDLE_CONNS" env-default:"5"`
	ConnMaxLifetimeSec int    `yaml:"conn_max_lifetime_sec" env:"DB_CONN_MAX_LIFETIME_SEC" env-default:"300"`
}

// MinIOConfig holds object storage settings for the import archive.
// An empty Endpoint disables archiving.
type MinIOConfig struct {
	Endpoint  string `yaml:"endpoint" env:"MINIO_ENDPOINT"`
	AccessKey string `yaml:"access_key" env:"MINIO_ACCESS_KEY"`
	SecretKey string `yaml:"secret_key" env:"MINIO_SECRET_KEY"`
	Bucket    string `yaml:"bucket" env:"MINIO_BUCKET" env-default:"student-imports"`
	UseSSL    bool   `yaml:"use_ssl" env:"MINIO_USE_SSL" env-default:"false"`
}

// Enabled reports whether an object store endpoint was configured.
func (c MinIOConfig) Enabled() bool {
	return c.Endpoint != ""
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables, optionally layered over a YAML file named by CONFIG_PATH.
type AppConfig struct {
	AppHost        string         `yaml:"app_host" env:"APP_HOST" env-default:"localhost:8080"`
	Port           string         `yaml:"port" env:"PORT" env-default:"8080"`
	Timezone       string         `yaml:"timezone" env:"APP_TIMEZONE" env-default:"UTC"`
	LogLevel       string         `yaml:"log_level" env:"LOG_LEVEL" env-default:"info"`
	StoreDriver    string         `yaml:"store_driver" env:"STORE_DRIVER" env-default:"postgres"`
	ImportMaxBytes int            `yaml:"import_max_bytes" env:"IMPORT_MAX_BYTES" env-default:"4194304"`
	Database       DatabaseConfig `yaml:"database"`
	MinIO          MinIOConfig    `yaml:"minio"`
}

// Location resolves the configured time zone, falling back to UTC.
func (c *AppConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// When CONFIG_PATH is set the YAML file is read first; real environment variables take precedence.
func Load() (*AppConfig, error) {
	var cfg AppConfig

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("read env: %w", err)
	}

	switch cfg.StoreDriver {
	case StoreDriverPostgres, StoreDriverMemory:
	default:
		return nil, fmt.Errorf("unsupported store driver %q", cfg.StoreDriver)
	}

	return &cfg, nil
}
