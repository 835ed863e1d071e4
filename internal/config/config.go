package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

const (
	DefaultCantidad = 1000
	DefaultURLEnv   = "DATABASE_URL"
	DefaultProvider = "mysql"
)

type Config struct {
	Database       Database `json:"database" mapstructure:"database"`
	MigrationsPath string   `json:"migrations_path" mapstructure:"migrations_path"` // empty: embedded migrations
	DatasetsPath   string   `json:"datasets_path" mapstructure:"datasets_path"`     // empty: embedded datasets
	SkipMigrations bool     `json:"skip_migrations" mapstructure:"skip_migrations"`
	Cantidad       int      `json:"cantidad" mapstructure:"cantidad"`
	Seed           int64    `json:"seed" mapstructure:"seed"`
	Workers        int      `json:"workers" mapstructure:"workers"`
	MetricsFile    string   `json:"metrics_file" mapstructure:"metrics_file"`
	SummaryFile    string   `json:"summary_file" mapstructure:"summary_file"`
	Log            Log      `json:"log" mapstructure:"log"`
}

type Database struct {
	Provider string `json:"provider" mapstructure:"provider"`
	URLEnv   string `json:"url_env" mapstructure:"url_env"`
}

type Log struct {
	Level string `json:"level" mapstructure:"level"`
	JSON  bool   `json:"json" mapstructure:"json"`
}

func Load() (*Config, error) {
	var cfg Config

	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.Database.URLEnv == "" {
		cfg.Database.URLEnv = DefaultURLEnv
	}
	if cfg.Cantidad == 0 {
		cfg.Cantidad = DefaultCantidad
	}
	if cfg.Workers == 0 {
		cfg.Workers = 1
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}

	return &cfg, nil
}

func (c *Config) GetDatabaseURL() (string, error) {
	dbURL := os.Getenv(c.Database.URLEnv)
	if dbURL == "" {
		return "", fmt.Errorf("database URL not found in environment variable %s", c.Database.URLEnv)
	}
	return dbURL, nil
}

// ResolveProvider returns the configured provider, or the one implied by the
// connection URL scheme when none is configured.
func (c *Config) ResolveProvider(dbURL string) string {
	if c.Database.Provider != "" {
		return NormalizeProvider(c.Database.Provider)
	}
	return DetectProvider(dbURL)
}

func DetectProvider(dbURL string) string {
	lower := strings.ToLower(dbURL)
	switch {
	case strings.HasPrefix(lower, "postgres://"), strings.HasPrefix(lower, "postgresql://"):
		return "postgresql"
	case strings.HasPrefix(lower, "sqlite://"), strings.HasPrefix(lower, "file:"),
		strings.HasSuffix(lower, ".db"), strings.HasSuffix(lower, ".sqlite"):
		return "sqlite"
	default:
		return DefaultProvider
	}
}

func NormalizeProvider(provider string) string {
	switch strings.ToLower(provider) {
	case "postgresql", "postgres", "pg":
		return "postgresql"
	case "sqlite", "sqlite3":
		return "sqlite"
	default:
		return strings.ToLower(provider)
	}
}

func (c *Config) Validate() error {
	if c.Database.Provider != "" {
		supportedProviders := []string{"postgresql", "mysql", "sqlite"}
		provider := NormalizeProvider(c.Database.Provider)
		supported := false
		for _, p := range supportedProviders {
			if provider == p {
				supported = true
				break
			}
		}
		if !supported {
			return fmt.Errorf("unsupported database provider: %s. Supported providers: %v", c.Database.Provider, supportedProviders)
		}
	}

	if c.Cantidad < 1 {
		return fmt.Errorf("cantidad must be at least 1, got %d", c.Cantidad)
	}

	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}

	return nil
}
