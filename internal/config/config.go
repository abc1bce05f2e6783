package config

import (
	"encoding/json"
	stderrors "errors"
	"io/fs"
	"log/slog"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/vango-dev/domattr/internal/errors"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "domattr.json"

	// DefaultPort is the default HTTP service port.
	DefaultPort = 3070

	// DefaultHost is the default HTTP service host.
	DefaultHost = "localhost"

	// DefaultNamespace is the default metrics namespace and tracer name.
	DefaultNamespace = "domattr"

	// DefaultLogLevel is the default log level.
	DefaultLogLevel = "info"
)

// Config represents the complete domattr.json configuration.
type Config struct {
	// Server contains HTTP service settings.
	Server ServerConfig `json:"server"`

	// Metrics contains Prometheus settings.
	Metrics MetricsConfig `json:"metrics"`

	// Tracing contains OpenTelemetry settings.
	Tracing TracingConfig `json:"tracing"`

	// Render contains HTML output settings.
	Render RenderConfig `json:"render"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `json:"logLevel,omitempty"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// ServerConfig contains HTTP service settings.
type ServerConfig struct {
	Host string `json:"host,omitempty"`
	Port int    `json:"port,omitempty"`
}

// Address returns host:port.
func (s ServerConfig) Address() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// MetricsConfig contains Prometheus settings.
type MetricsConfig struct {
	// Enabled is a pointer so an explicit false survives defaulting.
	Enabled   *bool  `json:"enabled,omitempty"`
	Namespace string `json:"namespace,omitempty"`
}

// On reports whether metrics are enabled. Defaults to true.
func (m MetricsConfig) On() bool {
	return m.Enabled == nil || *m.Enabled
}

// TracingConfig contains OpenTelemetry settings.
type TracingConfig struct {
	Enabled    bool   `json:"enabled,omitempty"`
	TracerName string `json:"tracerName,omitempty"`
}

// RenderConfig contains HTML output settings.
type RenderConfig struct {
	Pretty bool `json:"pretty,omitempty"`
}

// New returns a Config with defaults applied.
func New() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// Load reads domattr.json from dir. A missing file yields the defaults.
func Load(dir string) (*Config, error) {
	path := filepath.Join(dir, ConfigFileName)
	cfg, err := LoadFile(path)
	if err != nil && stderrors.Is(err, fs.ErrNotExist) {
		cfg = New()
		cfg.configPath = path
		return cfg, nil
	}
	return cfg, err
}

// LoadFile reads configuration from the specified file path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.FromError(err, errors.KindConfig)
	}

	cfg := &Config{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.FromError(err, errors.KindConfig).
			WithDetail("Failed to parse " + filepath.Base(path) + ": " + err.Error())
	}

	cfg.configPath = path
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Path returns the path the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

func (c *Config) applyDefaults() {
	if c.Server.Host == "" {
		c.Server.Host = DefaultHost
	}
	if c.Server.Port == 0 {
		c.Server.Port = DefaultPort
	}
	if c.Metrics.Namespace == "" {
		c.Metrics.Namespace = DefaultNamespace
	}
	if c.Tracing.TracerName == "" {
		c.Tracing.TracerName = DefaultNamespace
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return errors.Newk(errors.KindConfig).
			WithDetail("server.port must be between 1 and 65535, got " + strconv.Itoa(c.Server.Port))
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// SlogLevel parses LogLevel.
func (c *Config) SlogLevel() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.ToLower(c.LogLevel))); err != nil {
		return 0, errors.FromError(err, errors.KindConfig).
			WithDetail("logLevel must be one of debug, info, warn, error, got " + strconv.Quote(c.LogLevel))
	}
	return lvl, nil
}
