package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, DriverSQLite, cfg.DB.Driver)
	assert.Equal(t, "db.sqlite3", cfg.DB.Path)
	assert.Equal(t, "8000", cfg.App.HTTPPort)
	assert.False(t, cfg.App.GRPCEnabled)
	assert.Equal(t, 10, cfg.App.ShutdownTimeoutSeconds)
	assert.False(t, cfg.RateLimit.Enabled)
	assert.Equal(t, "shop-service", cfg.Logger.ServiceName)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfig_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	content := "DB_DRIVER=postgres\nDB_HOST=db.internal\nDB_NAME=store\nHTTP_PORT=9000\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.env"), []byte(content), 0o600))

	t.Setenv("HTTP_PORT", "9100")
	t.Setenv("RATE_LIMIT_ENABLED", "true")

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, DriverPostgres, cfg.DB.Driver)
	assert.Equal(t, "db.internal", cfg.DB.Host)
	assert.Equal(t, "9100", cfg.App.HTTPPort, "environment overrides the file")
	assert.True(t, cfg.RateLimit.Enabled)
	assert.Equal(t, "host=db.internal user=postgres password=postgres dbname=store port=5432 sslmode=disable", cfg.DB.DSN())
}

func TestDatabaseConfig_SQLiteDSN(t *testing.T) {
	c := DatabaseConfig{Driver: DriverSQLite, Path: "shop.db"}
	assert.Equal(t, "shop.db?_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)&_txlock=immediate", c.DSN())
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			DB:        DatabaseConfig{Driver: DriverSQLite, Path: "db.sqlite3", MaxOpenConns: 1},
			App:       AppConfig{HTTPPort: "8000", ShutdownTimeoutSeconds: 5},
			Redis:     RedisConfig{Host: "localhost", Port: "6379"},
			RateLimit: RateLimitConfig{RequestsPerSecond: 10, BurstCapacity: 20},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"valid", func(c *Config) {}, ""},
		{"unknown driver", func(c *Config) { c.DB.Driver = "mysql" }, `unsupported DB_DRIVER "mysql"`},
		{"sqlite without path", func(c *Config) { c.DB.Path = "" }, "DB_PATH is required"},
		{"postgres without host", func(c *Config) { c.DB.Driver = DriverPostgres }, "DB_HOST and DB_NAME are required"},
		{"no pool", func(c *Config) { c.DB.MaxOpenConns = 0 }, "DB_MAX_OPEN_CONNS must be positive"},
		{"no http port", func(c *Config) { c.App.HTTPPort = "" }, "HTTP_PORT is required"},
		{"grpc without port", func(c *Config) { c.App.GRPCEnabled = true }, "GRPC_PORT is required"},
		{"zero shutdown timeout", func(c *Config) { c.App.ShutdownTimeoutSeconds = 0 }, "SHUTDOWN_TIMEOUT_SECONDS"},
		{"rate limit without rate", func(c *Config) {
			c.RateLimit.Enabled = true
			c.RateLimit.RequestsPerSecond = 0
		}, "RATE_LIMIT_RPS must be positive"},
		{"rate limit without redis", func(c *Config) {
			c.RateLimit.Enabled = true
			c.Redis.Host = ""
		}, "REDIS_HOST and REDIS_PORT are required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(c)
			err := c.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
