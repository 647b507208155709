package config

import (
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/sevigo/quality-warden/internal/logger"
)

// Supported database drivers.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite3"
)

// Config holds the application's configuration values.
type Config struct {
	Server   ServerConfig
	Database DBConfig
	Logging  logger.Config
	Quality  QualityConfig
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	Port string
}

// DBConfig configures the database connection.
type DBConfig struct {
	Driver   string
	Host     string
	Port     int
	Username string
	Password string
	Database string
	SSLMode  string
	// Path is the database file when Driver is sqlite3.
	Path            string
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

// QualityConfig configures the nomination engine.
type QualityConfig struct {
	// Lockdown rejects every nomination operation while set.
	Lockdown               bool
	ReviewerGroupAlias     string
	ReviewersPerNomination int
	DefaultPageSize        int
}

// DSN returns the data source name for the configured driver.
func (c DBConfig) DSN() string {
	if c.Driver == DriverSQLite {
		sep := "?"
		if strings.Contains(c.Path, "?") {
			sep = "&"
		}
		return c.Path + sep + "_foreign_keys=on"
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.Username, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     c.Database,
		RawQuery: url.Values{"sslmode": {c.SSLMode}}.Encode(),
	}
	return u.String()
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case DriverPostgres:
		if c.Database.Username == "" {
			return errors.New("DB_USERNAME must be set for the postgres driver")
		}
	case DriverSQLite:
		if c.Database.Path == "" {
			return errors.New("DB_PATH must be set for the sqlite3 driver")
		}
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.Database.Driver)
	}
	if c.Quality.ReviewerGroupAlias == "" {
		return errors.New("REVIEWER_GROUP_ALIAS must not be empty")
	}
	if c.Quality.ReviewersPerNomination <= 0 {
		return fmt.Errorf("REVIEWERS_PER_NOMINATION must be positive, got %d", c.Quality.ReviewersPerNomination)
	}
	if c.Quality.DefaultPageSize <= 0 {
		return fmt.Errorf("DEFAULT_PAGE_SIZE must be positive, got %d", c.Quality.DefaultPageSize)
	}
	return nil
}

// LoadConfig reads configuration from environment variables and an optional .env
// file, applies defaults and validates the result. Command-line flags bound to
// the same keys by the CLI take precedence.
func LoadConfig() (*Config, error) {
	viper.AutomaticEnv()
	setDefaults()

	if _, err := os.Stat(".env"); err == nil {
		viper.SetConfigFile(".env")
		viper.SetConfigType("env")
		if err := viper.ReadInConfig(); err != nil {
			slog.Error("failed to read config file", "error", err)
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: viper.GetString("SERVER_PORT"),
		},
		Database: DBConfig{
			Driver:          strings.ToLower(viper.GetString("DB_DRIVER")),
			Host:            viper.GetString("DB_HOST"),
			Port:            viper.GetInt("DB_PORT"),
			Username:        viper.GetString("DB_USERNAME"),
			Password:        viper.GetString("DB_PASSWORD"),
			Database:        viper.GetString("DB_NAME"),
			SSLMode:         viper.GetString("DB_SSLMODE"),
			Path:            viper.GetString("DB_PATH"),
			MaxOpenConns:    viper.GetInt("DB_MAX_OPEN_CONNS"),
			ConnMaxLifetime: viper.GetDuration("DB_CONN_MAX_LIFETIME"),
			ConnMaxIdleTime: viper.GetDuration("DB_CONN_MAX_IDLE_TIME"),
		},
		Logging: logger.Config{
			Level:  strings.ToLower(viper.GetString("LOG_LEVEL")),
			Format: viper.GetString("LOG_FORMAT"),
			Output: viper.GetString("LOG_OUTPUT"),
		},
		Quality: QualityConfig{
			Lockdown:               viper.GetBool("LOCKDOWN"),
			ReviewerGroupAlias:     viper.GetString("REVIEWER_GROUP_ALIAS"),
			ReviewersPerNomination: viper.GetInt("REVIEWERS_PER_NOMINATION"),
			DefaultPageSize:        viper.GetInt("DEFAULT_PAGE_SIZE"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("LOG_FORMAT", "text")
	viper.SetDefault("LOG_OUTPUT", "stdout")
	viper.SetDefault("DB_DRIVER", DriverPostgres)
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", 5432)
	viper.SetDefault("DB_NAME", "quality")
	viper.SetDefault("DB_SSLMODE", "disable")
	viper.SetDefault("DB_PATH", "quality.db")
	viper.SetDefault("DB_MAX_OPEN_CONNS", 10)
	viper.SetDefault("DB_CONN_MAX_LIFETIME", 30*time.Minute)
	viper.SetDefault("DB_CONN_MAX_IDLE_TIME", 5*time.Minute)
	viper.SetDefault("LOCKDOWN", false)
	viper.SetDefault("REVIEWER_GROUP_ALIAS", "omegaup:quality-reviewer")
	viper.SetDefault("REVIEWERS_PER_NOMINATION", 2)
	viper.SetDefault("DEFAULT_PAGE_SIZE", 1000)
}
