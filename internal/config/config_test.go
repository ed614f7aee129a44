package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("KRE_CONFIG_FILE", filepath.Join(t.TempDir(), "missing.yaml"))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "http", cfg.Server.Transport)
	assert.Equal(t, 12*time.Second, cfg.Upstream.Timeout)
	assert.Equal(t, 30*time.Second, cfg.Tools.Timeout)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, []string{"http://localhost:8080"}, cfg.Security.AllowedOrigins)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("KRE_CONFIG_FILE", filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv("KRE_SERVER_PORT", "9090")
	t.Setenv("KRE_SERVER_TRANSPORT", "stdio")
	t.Setenv("KRE_UPSTREAM_API_KEY", "abc%2Bdef%3D%3D")
	t.Setenv("KRE_UPSTREAM_TIMEOUT", "5s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "stdio", cfg.Server.Transport)
	assert.Equal(t, "abc%2Bdef%3D%3D", cfg.Upstream.APIKey)
	assert.Equal(t, 5*time.Second, cfg.Upstream.Timeout)
}

func TestLoadFromFileEnvWins(t *testing.T) {
	dir := t.TempDir()
	configFile := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte(`
server:
  port: 7070
upstream:
  api_key: file-key
  onbid_api_key: file-onbid-key
`), 0o644))

	t.Setenv("KRE_CONFIG_FILE", configFile)
	t.Setenv("KRE_UPSTREAM_API_KEY", "env-key")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, "env-key", cfg.Upstream.APIKey)
	assert.Equal(t, "file-onbid-key", cfg.Upstream.OnbidAPIKey)
}

func TestLoadFromFileExplicitEnvBeatsFile(t *testing.T) {
	dir := t.TempDir()
	configFile := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte(`
server:
  port: 7070
`), 0o644))

	t.Setenv("KRE_CONFIG_FILE", configFile)
	t.Setenv("KRE_SERVER_PORT", "9191")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 9191, cfg.Server.Port)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "bad port",
			mutate:  func(c *Config) { c.Server.Port = 0 },
			wantErr: "invalid server port",
		},
		{
			name:    "bad transport",
			mutate:  func(c *Config) { c.Server.Transport = "grpc" },
			wantErr: "invalid transport",
		},
		{
			name:    "bad upstream timeout",
			mutate:  func(c *Config) { c.Upstream.Timeout = 0 },
			wantErr: "upstream timeout",
		},
		{
			name:    "no origins",
			mutate:  func(c *Config) { c.Security.AllowedOrigins = nil },
			wantErr: "allowed origin",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			err := cfg.validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateNormalizesLogging(t *testing.T) {
	cfg := validConfig()
	cfg.Logging.Format = "text"
	cfg.Logging.Output = "syslog"
	cfg.Logging.FilePath = ""

	require.NoError(t, cfg.validate())
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "both", cfg.Logging.Output)
	assert.Equal(t, "logs/app.log", cfg.Logging.FilePath)
}

func TestOnbidKeyFallback(t *testing.T) {
	cfg := validConfig()
	cfg.Upstream.APIKey = "main"
	assert.Equal(t, "main", cfg.OnbidKey())

	cfg.Upstream.OnbidAPIKey = "onbid"
	assert.Equal(t, "onbid", cfg.OnbidKey())
}

func validConfig() Config {
	return Config{
		Server: ServerConfig{
			Port:         8080,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 30 * time.Second,
			Transport:    "http",
		},
		Upstream: UpstreamConfig{Timeout: 12 * time.Second},
		Security: SecurityConfig{AllowedOrigins: []string{"http://localhost:8080"}},
		Logging:  LoggingConfig{Format: "json", Output: "both", FilePath: "logs/app.log"},
		Tools:    ToolsConfig{Timeout: 30 * time.Second},
	}
}
