// Package config loads the service configuration from TOML files and the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

const (
	DefaultConfigPath = "config/cartera.toml"

	// MaxBatchSize is the DynamoDB TransactWriteItems action limit.
	MaxBatchSize = 100
)

type Config struct {
	Environment string          `toml:"environment"`
	Timezone    string          `toml:"timezone"`
	Server      ServerConfig    `toml:"server"`
	Logging     LoggingConfig   `toml:"logging"`
	Auth        AuthConfig      `toml:"auth"`
	Storage     StorageConfig   `toml:"storage"`
	Import      ImportConfig    `toml:"import"`
	Dashboard   DashboardConfig `toml:"dashboard"`
}

type ServerConfig struct {
	Port int `toml:"port"`
}

type LoggingConfig struct {
	Level string `toml:"level"`
}

// AuthConfig holds the HS256 secret used to verify bearer tokens. An empty
// secret disables authentication.
type AuthConfig struct {
	JWTSecret string `toml:"jwt_secret"`
}

type StorageConfig struct {
	InstallmentsTable string `toml:"installments_table"`
	ClientsTable      string `toml:"clients_table"`
}

type ImportConfig struct {
	BatchSize            int     `toml:"batch_size"`
	MaxConcurrentBatches int     `toml:"max_concurrent_batches"`
	BatchesPerSecond     float64 `toml:"batches_per_second"` // 0 = unlimited
}

type DashboardConfig struct {
	ProjectionMonths int `toml:"projection_months"`
}

func NewDefaultConfig() *Config {
	return &Config{
		Environment: "development",
		Timezone:    "America/Argentina/Buenos_Aires",
		Server:      ServerConfig{Port: 8080},
		Logging:     LoggingConfig{Level: "info"},
		Storage: StorageConfig{
			InstallmentsTable: "installments",
			ClientsTable:      "clients",
		},
		Import: ImportConfig{
			BatchSize:            MaxBatchSize,
			MaxConcurrentBatches: 4,
		},
		Dashboard: DashboardConfig{ProjectionMonths: 12},
	}
}

// LoadConfig merges the given files in order over the defaults, skipping
// missing ones, then applies environment overrides.
func LoadConfig(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	for _, path := range paths {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	applyEnvOverrides(config)
	config.normalize()

	return config, nil
}

// Path returns the config file named by CARTERA_CONFIG, or the default one.
func Path() string {
	if p := os.Getenv("CARTERA_CONFIG"); p != "" {
		return p
	}
	return DefaultConfigPath
}

func applyEnvOverrides(config *Config) {
	if env := os.Getenv("CARTERA_ENV"); env != "" {
		config.Environment = env
	}
	if port := os.Getenv("CARTERA_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			config.Server.Port = p
		}
	}
	if level := os.Getenv("CARTERA_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}
	if tz := os.Getenv("CARTERA_TIMEZONE"); tz != "" {
		config.Timezone = tz
	}
	if v := os.Getenv("CARTERA_JWT_SECRET"); v != "" {
		config.Auth.JWTSecret = v
	}
	if v := os.Getenv("INSTALLMENTS_TABLE"); v != "" {
		config.Storage.InstallmentsTable = v
	}
	if v := os.Getenv("CLIENTS_TABLE"); v != "" {
		config.Storage.ClientsTable = v
	}
	if v := os.Getenv("IMPORT_BATCH_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			config.Import.BatchSize = n
		}
	}
}

func (c *Config) normalize() {
	if c.Import.BatchSize <= 0 || c.Import.BatchSize > MaxBatchSize {
		c.Import.BatchSize = MaxBatchSize
	}
	if c.Import.MaxConcurrentBatches <= 0 {
		c.Import.MaxConcurrentBatches = 1
	}
	if c.Import.BatchesPerSecond < 0 {
		c.Import.BatchesPerSecond = 0
	}
	if c.Dashboard.ProjectionMonths <= 0 {
		c.Dashboard.ProjectionMonths = 12
	}
}

// Location resolves the configured timezone, falling back to UTC.
func (c *Config) Location() *time.Location {
	if c.Timezone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
