// Package config loads the process configuration from UTXOINDEX_* environment
// variables.
package config

import (
	"github.com/gabapcia/utxoindex/internal/pkg/validator"

	"github.com/kelseyhightower/envconfig"
)

// envPrefix namespaces every variable, e.g. UTXOINDEX_STORE_DRIVER.
const envPrefix = "utxoindex"

// Store drivers accepted in Config.Store.Driver.
const (
	DriverLevelDB = "leveldb"
	DriverRedis   = "redis"
	DriverMemory  = "memory"
)

// Redis holds the connection settings used when the redis driver is selected.
type Redis struct {
	Addr     string `envconfig:"ADDR" default:"localhost:6379" validate:"required,hostname_port"`
	Username string `envconfig:"USERNAME"`
	Password string `envconfig:"PASSWORD"`
	DB       int    `envconfig:"DB" default:"0" validate:"gte=0"`
}

// Store selects and configures the storage engine behind the index.
type Store struct {
	Driver      string `envconfig:"DRIVER" default:"leveldb" validate:"oneof=leveldb redis memory"`
	LevelDBPath string `envconfig:"LEVELDB_PATH" default:"./data/utxoindex" validate:"required_if=Driver leveldb"`
	Redis       Redis  `envconfig:"REDIS"`
}

// Telemetry controls OTLP export.
type Telemetry struct {
	Enabled     bool   `envconfig:"ENABLED" default:"false"`
	ServiceName string `envconfig:"SERVICE_NAME" default:"utxoindex" validate:"required"`
}

// Config is the complete process configuration.
type Config struct {
	LogLevel  string    `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn error"`
	Store     Store     `envconfig:"STORE"`
	Telemetry Telemetry `envconfig:"TELEMETRY"`
}

// Load reads the configuration from the environment and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return Config{}, err
	}

	if err := validator.Validate(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
