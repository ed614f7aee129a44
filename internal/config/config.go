package config

import (
	"fmt"
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config represents the complete application configuration
type Config struct {
	Server   ServerConfig   `yaml:"server" envconfig:"SERVER"`
	Upstream UpstreamConfig `yaml:"upstream" envconfig:"UPSTREAM"`
	Security SecurityConfig `yaml:"security" envconfig:"SECURITY"`
	Logging  LoggingConfig  `yaml:"logging" envconfig:"LOGGING"`
	Tools    ToolsConfig    `yaml:"tools" envconfig:"TOOLS"`
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Port            int           `yaml:"port" envconfig:"PORT" default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout" envconfig:"READ_TIMEOUT" default:"15s"`
	WriteTimeout    time.Duration `yaml:"write_timeout" envconfig:"WRITE_TIMEOUT" default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" envconfig:"IDLE_TIMEOUT" default:"60s"`
	MaxHeaderBytes  int           `yaml:"max_header_bytes" envconfig:"MAX_HEADER_BYTES" default:"1048576"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" envconfig:"SHUTDOWN_TIMEOUT" default:"30s"`
	// Transport selects the serving mode: "http" or "stdio".
	Transport string `yaml:"transport" envconfig:"TRANSPORT" default:"http"`
}

// UpstreamConfig contains the data.go.kr gateway credentials and limits.
// The service key is the percent-encoded key as issued; it is appended to
// request URLs verbatim.
type UpstreamConfig struct {
	APIKey      string        `yaml:"api_key" envconfig:"API_KEY"`
	OnbidAPIKey string        `yaml:"onbid_api_key" envconfig:"ONBID_API_KEY"`
	Timeout     time.Duration `yaml:"timeout" envconfig:"TIMEOUT" default:"12s"`
}

// SecurityConfig contains security-related configuration
type SecurityConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins" envconfig:"ALLOWED_ORIGINS" default:"http://localhost:8080"`
	EnableCORS     bool     `yaml:"enable_cors" envconfig:"ENABLE_CORS" default:"true"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" default:"info"`
	Format   string `yaml:"format" envconfig:"FORMAT" default:"json"`
	Output   string `yaml:"output" envconfig:"OUTPUT" default:"both"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH" default:"logs/app.log"`
}

// ToolsConfig bounds the tool-call surface.
type ToolsConfig struct {
	Timeout time.Duration `yaml:"timeout" envconfig:"TIMEOUT" default:"30s"`
}

// Load loads configuration from environment variables and, when present,
// a YAML config file. Environment values take precedence.
func Load() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("KRE", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	configFile := os.Getenv("KRE_CONFIG_FILE")
	if configFile == "" {
		configFile = "config.yaml"
	}
	if _, err := os.Stat(configFile); err == nil {
		fileConfig, err := loadFromFile(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
		cfg = mergeConfigs(*fileConfig, cfg)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// loadFromFile loads configuration from a YAML file
func loadFromFile(filePath string) (*Config, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// mergeConfigs merges file config with env config. An env value wins only
// when its variable is actually set; envconfig fills unset variables from
// default tags, so a zero-check alone cannot tell env apart from defaults.
func mergeConfigs(fileConfig, envConfig Config) Config {
	if !envSet("KRE_SERVER_PORT") && fileConfig.Server.Port != 0 {
		envConfig.Server.Port = fileConfig.Server.Port
	}
	if !envSet("KRE_SERVER_READ_TIMEOUT") && fileConfig.Server.ReadTimeout != 0 {
		envConfig.Server.ReadTimeout = fileConfig.Server.ReadTimeout
	}
	if !envSet("KRE_SERVER_WRITE_TIMEOUT") && fileConfig.Server.WriteTimeout != 0 {
		envConfig.Server.WriteTimeout = fileConfig.Server.WriteTimeout
	}
	if !envSet("KRE_SERVER_TRANSPORT") && fileConfig.Server.Transport != "" {
		envConfig.Server.Transport = fileConfig.Server.Transport
	}
	if !envSet("KRE_UPSTREAM_API_KEY") && fileConfig.Upstream.APIKey != "" {
		envConfig.Upstream.APIKey = fileConfig.Upstream.APIKey
	}
	if !envSet("KRE_UPSTREAM_ONBID_API_KEY") && fileConfig.Upstream.OnbidAPIKey != "" {
		envConfig.Upstream.OnbidAPIKey = fileConfig.Upstream.OnbidAPIKey
	}
	if !envSet("KRE_UPSTREAM_TIMEOUT") && fileConfig.Upstream.Timeout != 0 {
		envConfig.Upstream.Timeout = fileConfig.Upstream.Timeout
	}
	if !envSet("KRE_LOGGING_LEVEL") && fileConfig.Logging.Level != "" {
		envConfig.Logging.Level = fileConfig.Logging.Level
	}
	if !envSet("KRE_LOGGING_FILE_PATH") && fileConfig.Logging.FilePath != "" {
		envConfig.Logging.FilePath = fileConfig.Logging.FilePath
	}

	return envConfig
}

func envSet(name string) bool {
	_, ok := os.LookupEnv(name)
	return ok
}

// validate validates the configuration
func (c *Config) validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if c.Server.ReadTimeout <= 0 {
		return fmt.Errorf("server read timeout must be positive")
	}

	if c.Server.WriteTimeout <= 0 {
		return fmt.Errorf("server write timeout must be positive")
	}

	if c.Server.Transport != "http" && c.Server.Transport != "stdio" {
		return fmt.Errorf("invalid transport: %q (must be http or stdio)", c.Server.Transport)
	}

	if c.Upstream.Timeout <= 0 {
		return fmt.Errorf("upstream timeout must be positive")
	}

	if len(c.Security.AllowedOrigins) == 0 {
		return fmt.Errorf("at least one allowed origin must be specified")
	}

	if c.Logging.Format != "json" {
		c.Logging.Format = "json"
	}

	if c.Logging.Output != "both" && c.Logging.Output != "file" && c.Logging.Output != "console" {
		c.Logging.Output = "both"
	}

	if c.Logging.FilePath == "" {
		c.Logging.FilePath = "logs/app.log"
	}

	return nil
}

// OnbidKey returns the Onbid credential, falling back to the main key.
func (c *Config) OnbidKey() string {
	if c.Upstream.OnbidAPIKey != "" {
		return c.Upstream.OnbidAPIKey
	}
	return c.Upstream.APIKey
}
