// Package config defines the engine's configuration tree and its viper-based
// loader.  Configuration comes from a YAML file with GREENLIGHT_* environment
// overrides; every field has a working default so a bare binary starts.
package config

import (
	"fmt"
	"time"

	"github.com/slatedeck/GreenLight-Intelligence/internal/infrastructure/database/postgres"
	"github.com/slatedeck/GreenLight-Intelligence/internal/infrastructure/database/redis"
	"github.com/slatedeck/GreenLight-Intelligence/internal/infrastructure/messaging/kafka"
	"github.com/slatedeck/GreenLight-Intelligence/internal/infrastructure/monitoring/logging"
)

// Config is the full configuration tree.
type Config struct {
	Server   ServerConfig   `mapstructure:"server" yaml:"server"`
	Log      LogConfig      `mapstructure:"log" yaml:"log"`
	Storage  StorageConfig  `mapstructure:"storage" yaml:"storage"`
	Postgres PostgresConfig `mapstructure:"postgres" yaml:"postgres"`
	Redis    RedisConfig    `mapstructure:"redis" yaml:"redis"`
	Kafka    KafkaConfig    `mapstructure:"kafka" yaml:"kafka"`

	// Debug switches invariant handling to panic-on-violation.
	Debug bool `mapstructure:"debug" yaml:"debug"`
}

// ServerConfig configures the HTTP API server.
type ServerConfig struct {
	Host            string        `mapstructure:"host" yaml:"host"`
	Port            int           `mapstructure:"port" yaml:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout" yaml:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout" yaml:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" yaml:"shutdown_timeout"`
}

// Addr renders the listen address.
func (s ServerConfig) Addr() string { return fmt.Sprintf("%s:%d", s.Host, s.Port) }

// LogConfig mirrors logging.LogConfig with mapstructure tags.
type LogConfig struct {
	Level            string   `mapstructure:"level" yaml:"level"`
	Format           string   `mapstructure:"format" yaml:"format"`
	OutputPaths      []string `mapstructure:"output_paths" yaml:"output_paths"`
	ErrorOutputPaths []string `mapstructure:"error_output_paths" yaml:"error_output_paths"`
}

// ToLogging converts to the logging package's config type.
func (l LogConfig) ToLogging() logging.LogConfig {
	return logging.LogConfig{
		Level:            l.Level,
		Format:           l.Format,
		OutputPaths:      l.OutputPaths,
		ErrorOutputPaths: l.ErrorOutputPaths,
	}
}

// StorageConfig selects and configures the version store used when postgres
// is disabled.
type StorageConfig struct {
	// Dir is the filestore directory for version history.
	Dir string `mapstructure:"dir" yaml:"dir"`
}

// PostgresConfig wraps the postgres connection config with an enable switch.
type PostgresConfig struct {
	Enabled         bool `mapstructure:"enabled" yaml:"enabled"`
	postgres.Config `mapstructure:",squash" yaml:",inline"`
}

// RedisConfig wraps the redis connection config with an enable switch.
type RedisConfig struct {
	Enabled      bool `mapstructure:"enabled" yaml:"enabled"`
	redis.Config `mapstructure:",squash" yaml:",inline"`
}

// KafkaConfig wraps the kafka producer config with an enable switch.
type KafkaConfig struct {
	Enabled      bool `mapstructure:"enabled" yaml:"enabled"`
	kafka.Config `mapstructure:",squash" yaml:",inline"`
}

// Validate rejects configurations the process cannot run with.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("config: server.port %d out of range", c.Server.Port)
	}
	if c.Postgres.Enabled && c.Postgres.Database == "" {
		return fmt.Errorf("config: postgres enabled but no database set")
	}
	if c.Kafka.Enabled && len(c.Kafka.Brokers) == 0 {
		return fmt.Errorf("config: kafka enabled but no brokers set")
	}
	if !c.Postgres.Enabled && c.Storage.Dir == "" {
		return fmt.Errorf("config: storage.dir required when postgres is disabled")
	}
	return nil
}
