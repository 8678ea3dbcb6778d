package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv(FileEnvVar, "")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "data/forecast.csv", cfg.Data.File)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 30*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "weather_report", cfg.Metrics.Namespace)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfig_Environment(t *testing.T) {
	t.Setenv(FileEnvVar, "")
	t.Setenv("WEATHER_DATA_FILE", "/srv/forecast.csv")
	t.Setenv("WEATHER_SERVER_PORT", "9090")
	t.Setenv("WEATHER_SERVER_READ_TIMEOUT", "5s")
	t.Setenv("WEATHER_LOGGING_LEVEL", "debug")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "/srv/forecast.csv", cfg.Data.File)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 5*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, ":9090", (ServerConfig{Port: 9090}).Address())
}

func TestLoadConfig_InvalidEnvironment(t *testing.T) {
	t.Setenv(FileEnvVar, "")
	t.Setenv("WEATHER_SERVER_PORT", "eighty")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestLoadConfig_FileOverridesEnvironment(t *testing.T) {
	path := filepath.Join(t.TempDir(), "weather.yaml")
	content := "data:\n  file: from-file.csv\nserver:\n  port: 7070\n  write_timeout: 20s\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	t.Setenv(FileEnvVar, path)
	t.Setenv("WEATHER_DATA_FILE", "from-env.csv")
	t.Setenv("WEATHER_LOGGING_LEVEL", "warn")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "from-file.csv", cfg.Data.File)
	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, 20*time.Second, cfg.Server.WriteTimeout)
	// untouched by the file
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	t.Setenv(FileEnvVar, filepath.Join(t.TempDir(), "absent.yaml"))

	_, err := LoadConfig()
	assert.ErrorContains(t, err, "failed to read config file")
}

func TestLoadConfig_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "weather.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [unclosed"), 0o644))
	t.Setenv(FileEnvVar, path)

	_, err := LoadConfig()
	assert.ErrorContains(t, err, "failed to parse config file")
}

func TestConfig_Validate(t *testing.T) {
	valid := func() Config {
		return Config{
			Data: DataConfig{File: "forecast.csv"},
			Server: ServerConfig{
				Port:            8080,
				ReadTimeout:     time.Second,
				WriteTimeout:    time.Second,
				IdleTimeout:     time.Second,
				ShutdownTimeout: time.Second,
			},
			Logging: LoggingConfig{Level: "info"},
			Metrics: MetricsConfig{Namespace: "weather_report"},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "missing data file", mutate: func(c *Config) { c.Data.File = "" }, wantErr: "Data.File"},
		{name: "port too large", mutate: func(c *Config) { c.Server.Port = 70000 }, wantErr: "Server.Port"},
		{name: "port zero", mutate: func(c *Config) { c.Server.Port = 0 }, wantErr: "Server.Port"},
		{name: "unknown log level", mutate: func(c *Config) { c.Logging.Level = "trace" }, wantErr: "Logging.Level"},
		{name: "zero timeout", mutate: func(c *Config) { c.Server.IdleTimeout = 0 }, wantErr: "Server.IdleTimeout"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
