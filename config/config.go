package config

import (
	"fmt"
	"log"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	AppPort    string `env:"APP_PORT" envDefault:"8000"`
	GinMode    string `env:"GIN_MODE"`
	CORSOrigin string `env:"CORS_ORIGIN" envDefault:"http://localhost:3000"`

	Database DatabaseConfig
	Log      LogConfig
}

type DatabaseConfig struct {
	Driver string `env:"DB_DRIVER" envDefault:"sqlite"`
	// DSN, when set, replaces the individual settings. SQLite DSNs still
	// get the foreign key pragma appended.
	DSN  string `env:"DB_DSN"`
	Host string `env:"DB_HOST" envDefault:"127.0.0.1"`
	Port string `env:"DB_PORT"`
	User string `env:"DB_USER"`
	Pass string `env:"DB_PASS"`
	Name string `env:"DB_NAME" envDefault:"retro_inventory"`
	// Path is the SQLite database file, or ":memory:".
	Path string `env:"DB_PATH" envDefault:"data/inventory.db"`

	MaxOpenConns int `env:"DB_MAX_OPEN_CONNS" envDefault:"10"`
	MaxIdleConns int `env:"DB_MAX_IDLE_CONNS" envDefault:"5"`
}

type LogConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"text"`
	// File enables a rotating log file instead of stderr.
	File       string `env:"LOG_FILE"`
	MaxSizeMB  int    `env:"LOG_MAX_SIZE_MB" envDefault:"50"`
	MaxBackups int    `env:"LOG_MAX_BACKUPS" envDefault:"3"`
	MaxAgeDays int    `env:"LOG_MAX_AGE_DAYS" envDefault:"28"`
}

// Load reads .env when present and parses the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file loaded, using system environment")
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &cfg, cfg.validate()
}

// LoadFrom parses configuration from the given variables only.
func LoadFrom(vars map[string]string) (*Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: vars}); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &cfg, cfg.validate()
}

func (c *Config) validate() error {
	if c.CORSOrigin == "" {
		return fmt.Errorf("CORS_ORIGIN must not be empty")
	}
	switch c.Database.Driver {
	case "mysql", "postgres", "sqlite":
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.Database.Driver)
	}
	return nil
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + c.AppPort
}

// ConnectionString builds the driver connection string from the individual settings.
func (d DatabaseConfig) ConnectionString() string {
	if d.DSN != "" && d.Driver != "sqlite" {
		return d.DSN
	}

	switch d.Driver {
	case "mysql":
		return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			d.User, d.Pass, d.Host, orDefault(d.Port, "3306"), d.Name)
	case "postgres":
		return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			d.Host, orDefault(d.Port, "5432"), d.User, d.Pass, d.Name)
	default:
		// the pragma has to be in the DSN so every pooled connection gets it
		target := orDefault(d.DSN, d.Path)
		if strings.Contains(target, "foreign_keys") {
			return target
		}
		sep := "?"
		if strings.Contains(target, "?") {
			sep = "&"
		}
		return target + sep + "_pragma=foreign_keys(1)"
	}
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
