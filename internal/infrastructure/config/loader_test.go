package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withConfigDir(t *testing.T, env, content string) {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, env+".yaml"), []byte(content), 0o600))

	previous := ConfigPaths
	ConfigPaths = []string{dir}
	t.Cleanup(func() { ConfigPaths = previous })
	t.Setenv("PW_ENV", env)
}

const testYAML = `
server:
  port: 6000
database:
  host: db.local
  username: paywise
  database: paywise_test
auth:
  jwtSecret: secret
  tokenTTL: 30
redis:
  analyticsTTL: 120
`

func TestLoadConfig(t *testing.T) {
	withConfigDir(t, Test, testYAML)

	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, Test, cfg.Environment)
	assert.Equal(t, 6000, cfg.Server.Port)
	assert.Equal(t, "db.local", cfg.Database.Host)
	assert.Equal(t, 30*time.Minute, cfg.Auth.TokenTTL)
	assert.Equal(t, 120*time.Second, cfg.Redis.AnalyticsTTL)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "10000.00", cfg.Auth.OpeningBalance)
	assert.Equal(t, "@daily", cfg.Scheduler.ReconcileSpec)
	assert.False(t, cfg.IsProduction())
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	withConfigDir(t, Test, testYAML)
	t.Setenv("PW_DB_HOST", "override.local")
	t.Setenv("PW_SERVER_PORT", "7000")

	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, "override.local", cfg.Database.Host)
	assert.Equal(t, 7000, cfg.Server.Port)
}

func TestLoadConfig_MissingRequired(t *testing.T) {
	withConfigDir(t, Test, "server:\n  port: 6000\n")

	_, err := LoadConfig()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "database.host is required")
	assert.Contains(t, err.Error(), "auth.jwtSecret is required")
}

func TestValidateConfig(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Server:   ServerConfig{Port: 5000},
			Database: DatabaseConfig{Host: "h", Username: "u", Database: "d"},
			Auth:     AuthConfig{JWTSecret: "s", TokenTTL: time.Hour},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "Valid", mutate: func(c *Config) {}},
		{name: "Bad port", mutate: func(c *Config) { c.Server.Port = 70000 }, wantErr: "server.port"},
		{name: "No TTL", mutate: func(c *Config) { c.Auth.TokenTTL = 0 }, wantErr: "auth.tokenTTL"},
		{name: "Redis without addr", mutate: func(c *Config) { c.Redis.Enabled = true }, wantErr: "redis.addr"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(c)
			err := validateConfig(c)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
