package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"DATABASE_URL", "DATABASE_DRIVER", "DATABASE_AUTO_MIGRATE", "DATABASE_MAX_OPEN_CONNS",
		"HTTP_ADDRESS", "CORS_ALLOWED_ORIGINS", "RATE_LIMIT_RPS", "RATE_LIMIT_BURST",
		"SCOREBOARD_DEFAULT_LIMIT", "SCOREBOARD_MAX_LIMIT", "ENV", "LOG_LEVEL", "METRICS_ADDRESS",
	} {
		t.Setenv(k, "")
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadConfig_FromFile(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
postgres:
  dsn: postgres://user:pass@db:5432/scores
  driver: pgx
http:
  address: ":9000"
  allowed_origins: ["https://game.example"]
  shutdown_timeout: 5s
scoreboard:
  default_limit: 25
  max_limit: 200
observability:
  environment: development
  metrics_address: ":9090"
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "postgres://user:pass@db:5432/scores", cfg.Postgres.DSN)
	assert.Equal(t, DriverPGX, cfg.Postgres.Driver)
	assert.True(t, cfg.Postgres.AutoMigrate, "defaults survive partial YAML")
	assert.Equal(t, ":9000", cfg.HTTP.Address)
	assert.Equal(t, []string{"https://game.example"}, cfg.HTTP.AllowedOrigins)
	assert.Equal(t, 5*time.Second, cfg.HTTP.ShutdownTimeout)
	assert.Equal(t, 25, cfg.Scoreboard.DefaultLimit)
	assert.Equal(t, 200, cfg.Scoreboard.MaxLimit)
	assert.Equal(t, "development", cfg.Observability.Environment)
	assert.Equal(t, ":9090", cfg.Observability.MetricsAddress)
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
postgres:
  dsn: postgres://file
`)
	t.Setenv("DATABASE_URL", "postgres://env")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("RATE_LIMIT_RPS", "2.5")
	t.Setenv("RATE_LIMIT_BURST", "5")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "postgres://env", cfg.Postgres.DSN)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.HTTP.AllowedOrigins)
	assert.Equal(t, 2.5, cfg.HTTP.RateLimitRPS)
	assert.Equal(t, 5, cfg.HTTP.RateLimitBurst)
}

func TestLoadConfig_EnvOnly(t *testing.T) {
	clearEnv(t)
	missing := filepath.Join(t.TempDir(), "missing.yaml")

	_, err := LoadConfig(missing)
	require.Error(t, err, "DATABASE_URL is required without a config file")

	t.Setenv("DATABASE_URL", "postgres://env-only")
	t.Setenv("DATABASE_AUTO_MIGRATE", "false")

	cfg, err := LoadConfig(missing)
	require.NoError(t, err)
	assert.Equal(t, "postgres://env-only", cfg.Postgres.DSN)
	assert.False(t, cfg.Postgres.AutoMigrate)
	assert.Equal(t, DriverPGDriver, cfg.Postgres.Driver)
	assert.Equal(t, 10, cfg.Scoreboard.DefaultLimit)
	assert.Equal(t, []string{"*"}, cfg.HTTP.AllowedOrigins)
}

func TestLoadConfig_InvalidEnvValue(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATABASE_URL", "postgres://env")
	t.Setenv("SCOREBOARD_MAX_LIMIT", "lots")

	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{name: "defaults with dsn", mutate: func(c *Config) {}},
		{name: "missing dsn", mutate: func(c *Config) { c.Postgres.DSN = "" }, wantErr: true},
		{name: "unknown driver", mutate: func(c *Config) { c.Postgres.Driver = "mysql" }, wantErr: true},
		{name: "zero default limit", mutate: func(c *Config) { c.Scoreboard.DefaultLimit = 0 }, wantErr: true},
		{name: "default above max", mutate: func(c *Config) { c.Scoreboard.DefaultLimit = 5000 }, wantErr: true},
		{name: "negative rate", mutate: func(c *Config) { c.HTTP.RateLimitRPS = -1 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaults()
			cfg.Postgres.DSN = "postgres://x"
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
