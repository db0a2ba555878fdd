// Package config provides application configuration loading and validation.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment variables overriding config keys,
// e.g. ORDERSVC_SERVER_PORT.
const EnvPrefix = "ORDERSVC"

// Config holds the complete application configuration.
type Config struct {
	Server ServerConfig
	Log    LogConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port                 int    `mapstructure:"port"`
	PublicHost           string `mapstructure:"public_host"` // host advertised in the API docs
	ReadHeaderTimeoutSec int    `mapstructure:"read_header_timeout_sec"`
	WriteTimeoutSec      int    `mapstructure:"write_timeout_sec"`
	IdleTimeoutSec       int    `mapstructure:"idle_timeout_sec"`
	ShutdownTimeoutSec   int    `mapstructure:"shutdown_timeout_sec"`
	MaxBodyBytes         int64  `mapstructure:"max_body_bytes"`
	ServeSwagger         bool   `mapstructure:"serve_swagger"`
	ServeMetrics         bool   `mapstructure:"serve_metrics"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Development bool `mapstructure:"development"`
}

// ReadHeaderTimeout returns the configured header read timeout.
func (s ServerConfig) ReadHeaderTimeout() time.Duration {
	return time.Duration(s.ReadHeaderTimeoutSec) * time.Second
}

// WriteTimeout returns the configured response write timeout.
func (s ServerConfig) WriteTimeout() time.Duration {
	return time.Duration(s.WriteTimeoutSec) * time.Second
}

// IdleTimeout returns the configured keep-alive idle timeout.
func (s ServerConfig) IdleTimeout() time.Duration {
	return time.Duration(s.IdleTimeoutSec) * time.Second
}

// ShutdownTimeout returns the time allowed for draining in-flight requests.
func (s ServerConfig) ShutdownTimeout() time.Duration {
	return time.Duration(s.ShutdownTimeoutSec) * time.Second
}

// LoadConfig reads configuration from config files, environment variables, and defaults.
func LoadConfig() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		fmt.Printf("No .env file found or error loading it: %v\n", err)
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	// Config search paths
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("./internal/config")

	if err := v.ReadInConfig(); err != nil {
		// It's okay if no config file, we have defaults and env
		fmt.Printf("Config file not found: %v\n", err)
	}

	return load(v)
}

func load(v *viper.Viper) (*Config, error) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.public_host", "")
	v.SetDefault("server.read_header_timeout_sec", 5)
	v.SetDefault("server.write_timeout_sec", 15)
	v.SetDefault("server.idle_timeout_sec", 60)
	v.SetDefault("server.shutdown_timeout_sec", 10)
	v.SetDefault("server.max_body_bytes", 1<<20)
	v.SetDefault("server.serve_swagger", true)
	v.SetDefault("server.serve_metrics", true)
	v.SetDefault("log.development", false)
}

// Validate checks that all required configuration fields are set and valid.
func (c *Config) Validate() error {
	var errs []error
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be in 1..65535, got %d", c.Server.Port))
	}
	if c.Server.ReadHeaderTimeoutSec <= 0 {
		errs = append(errs, fmt.Errorf("server.read_header_timeout_sec must be positive, got %d", c.Server.ReadHeaderTimeoutSec))
	}
	if c.Server.WriteTimeoutSec <= 0 {
		errs = append(errs, fmt.Errorf("server.write_timeout_sec must be positive, got %d", c.Server.WriteTimeoutSec))
	}
	if c.Server.IdleTimeoutSec <= 0 {
		errs = append(errs, fmt.Errorf("server.idle_timeout_sec must be positive, got %d", c.Server.IdleTimeoutSec))
	}
	if c.Server.ShutdownTimeoutSec <= 0 {
		errs = append(errs, fmt.Errorf("server.shutdown_timeout_sec must be positive, got %d", c.Server.ShutdownTimeoutSec))
	}
	if c.Server.MaxBodyBytes <= 0 {
		errs = append(errs, fmt.Errorf("server.max_body_bytes must be positive, got %d", c.Server.MaxBodyBytes))
	}

	return errors.Join(errs...)
}
