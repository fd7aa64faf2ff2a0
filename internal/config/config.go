package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	Port            string        `env:"PORT" envDefault:"8080"`
	GinMode         string        `env:"GIN_MODE" envDefault:"release"`
	CatalogPath     string        `env:"PORTFOLIO_CATALOG" envDefault:"data/projects.yaml"`
	DBPath          string        `env:"PORTFOLIO_DB" envDefault:"data/portfolio.db"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`

	Log       Log
	Admin     Admin
	Analytics Analytics
	SMTP      SMTP
}

// Log controls the logger
type Log struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"text"`
}

// Admin holds dashboard credentials. An empty password disables the dashboard.
type Admin struct {
	Username string `env:"ADMIN_USERNAME" envDefault:"admin"`
	Password string `env:"ADMIN_PASSWORD"`
}

// Analytics holds visitor tracking settings
type Analytics struct {
	Enabled   bool          `env:"VISITOR_TRACKING" envDefault:"true"`
	Retention time.Duration `env:"VISITOR_RETENTION" envDefault:"8760h"`
}

// SMTP holds contact form mail settings
type SMTP struct {
	Host string `env:"SMTP_HOST" envDefault:"smtp.gmail.com"`
	Port string `env:"SMTP_PORT" envDefault:"587"`
	User string `env:"SMTP_USER"`
	Pass string `env:"SMTP_PASS"`
	To   string `env:"CONTACT_TO"`
}

// Load reads a .env file when one exists, then parses the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	return Parse()
}

// Parse builds a Config from the current environment only.
func Parse() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects settings the server cannot run with.
func (c *Config) Validate() error {
	port, err := strconv.Atoi(c.Port)
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("invalid PORT %q", c.Port)
	}
	switch c.GinMode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("invalid GIN_MODE %q", c.GinMode)
	}
	if c.CatalogPath == "" {
		return errors.New("PORTFOLIO_CATALOG is required")
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("invalid SHUTDOWN_TIMEOUT %s", c.ShutdownTimeout)
	}
	if c.Analytics.Retention <= 0 {
		return fmt.Errorf("invalid VISITOR_RETENTION %s", c.Analytics.Retention)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("invalid LOG_FORMAT %q", c.Log.Format)
	}
	return nil
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + c.Port
}

// AnalyticsEnabled reports whether visitor tracking has somewhere to write.
func (c *Config) AnalyticsEnabled() bool {
	return c.Analytics.Enabled && c.DBPath != ""
}

// AdminEnabled reports whether the admin dashboard should be served.
func (c *Config) AdminEnabled() bool {
	return c.Admin.Password != "" && c.AnalyticsEnabled()
}
