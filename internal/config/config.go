package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// EnvPrefix prefixes every environment variable read by LoadConfig
const EnvPrefix = "WEATHER"

// FileEnvVar names the optional YAML file layered over the environment
const FileEnvVar = "WEATHER_CONFIG_FILE"

// Config represents the complete application configuration
type Config struct {
	Data    DataConfig    `yaml:"data" envconfig:"DATA"`
	Server  ServerConfig  `yaml:"server" envconfig:"SERVER"`
	Logging LoggingConfig `yaml:"logging" envconfig:"LOGGING"`
	Metrics MetricsConfig `yaml:"metrics" envconfig:"METRICS"`
}

// DataConfig locates the forecast file
type DataConfig struct {
	File string `yaml:"file" envconfig:"FILE" default:"data/forecast.csv" validate:"required"`
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string        `yaml:"host" envconfig:"HOST" default:"0.0.0.0"`
	Port            int           `yaml:"port" envconfig:"PORT" default:"8080" validate:"min=1,max=65535"`
	ReadTimeout     time.Duration `yaml:"read_timeout" envconfig:"READ_TIMEOUT" default:"15s" validate:"gt=0"`
	WriteTimeout    time.Duration `yaml:"write_timeout" envconfig:"WRITE_TIMEOUT" default:"15s" validate:"gt=0"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" envconfig:"IDLE_TIMEOUT" default:"60s" validate:"gt=0"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" envconfig:"SHUTDOWN_TIMEOUT" default:"30s" validate:"gt=0"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level string `yaml:"level" envconfig:"LEVEL" default:"info" validate:"oneof=debug info warn error"`
}

// MetricsConfig contains Prometheus configuration
type MetricsConfig struct {
	Namespace string `yaml:"namespace" envconfig:"NAMESPACE" default:"weather_report" validate:"required"`
}

var validate = validator.New()

// LoadConfig reads configuration from a .env file (if present), the
// environment, and finally the YAML file named by WEATHER_CONFIG_FILE.
// Keys set in the YAML file win over the environment.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if path := os.Getenv(FileEnvVar); path != "" {
		if err := cfg.overlayFile(path); err != nil {
			return nil, err
		}
	}

	return &cfg, nil
}

// overlayFile decodes the YAML file at path over cfg
func (c *Config) overlayFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

// Validate checks the configuration against its struct constraints
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			first := verrs[0]
			return fmt.Errorf("invalid %s: failed %q constraint (value %v)", first.Namespace(), first.Tag(), first.Value())
		}
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// Address returns the host:port the HTTP server listens on
func (s ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}
