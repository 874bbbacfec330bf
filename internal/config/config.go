// Package config resolves server settings from a YAML file, environment
// variables and command-line flags, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Transport names.
const (
	TransportStdio = "stdio"
	TransportHTTP  = "http"
)

// Environment variables consulted by ApplyEnv.
const (
	EnvDataPath  = "DATA_PATH"
	EnvTransport = "PORTFOLIO_MCP_TRANSPORT"
	EnvAddr      = "PORTFOLIO_MCP_ADDR"
	EnvLogLevel  = "PORTFOLIO_MCP_LOG_LEVEL"
)

// ConfigDir is the per-user directory holding ConfigFile.
const ConfigDir = ".portfolio-mcp"

// ConfigFile is the default config file name.
const ConfigFile = "config.yaml"

// Config holds every setting the server reads at startup.
type Config struct {
	// DataPath is an explicit dataset location (file path or s3://bucket/key).
	// Empty means probe the default locations.
	DataPath string `yaml:"data_path"`

	// Transport is "stdio" or "http".
	Transport string `yaml:"transport"`

	// Addr is the listen address for the HTTP transport.
	Addr string `yaml:"addr"`

	// EndpointPath is the HTTP path serving MCP requests.
	EndpointPath string `yaml:"endpoint_path"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`

	// Strict makes a dataset load failure fatal instead of serving an
	// empty dataset.
	Strict bool `yaml:"strict"`

	ServerName string `yaml:"server_name"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Transport:    TransportStdio,
		Addr:         ":8080",
		EndpointPath: "/mcp",
		LogLevel:     "info",
		ServerName:   "portfolio-server",
	}
}

// DefaultPath returns $HOME/.portfolio-mcp/config.yaml, or "" when the home
// directory cannot be determined.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ConfigDir, ConfigFile)
}

// Load starts from Default and overlays the YAML file at path. A missing
// file is not an error when optional is true.
func Load(path string, optional bool) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if optional && errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// ApplyEnv overlays non-empty environment variables onto c.
func (c *Config) ApplyEnv() {
	if v := os.Getenv(EnvDataPath); v != "" {
		c.DataPath = v
	}
	if v := os.Getenv(EnvTransport); v != "" {
		c.Transport = v
	}
	if v := os.Getenv(EnvAddr); v != "" {
		c.Addr = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
}

// Validate checks enumerated fields and normalizes their case.
func (c *Config) Validate() error {
	c.Transport = strings.ToLower(strings.TrimSpace(c.Transport))
	switch c.Transport {
	case TransportStdio, TransportHTTP:
	default:
		return fmt.Errorf("invalid transport %q: must be %s or %s", c.Transport, TransportStdio, TransportHTTP)
	}

	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q: must be debug, info, warn or error", c.LogLevel)
	}

	if c.Transport == TransportHTTP {
		if c.Addr == "" {
			return errors.New("addr is required for the http transport")
		}
		if !strings.HasPrefix(c.EndpointPath, "/") {
			return fmt.Errorf("invalid endpoint path %q: must start with /", c.EndpointPath)
		}
	}

	if c.ServerName == "" {
		c.ServerName = Default().ServerName
	}
	return nil
}
