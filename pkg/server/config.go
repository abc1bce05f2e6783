package server

import (
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/domattr/pkg/attrs"
	"github.com/vango-dev/domattr/pkg/render"
)

// Config configures the HTTP service.
type Config struct {
	// Address is the listen address (default: "localhost:3070").
	Address string

	// Logger is used for request and lifecycle logs.
	// If nil, slog.Default() is used.
	Logger *slog.Logger

	// Applicator applies attribute maps. If nil, attrs.New is called with
	// Logger.
	Applicator *attrs.Applicator

	// Renderer serializes results. If nil, a compact renderer is used.
	Renderer *render.Renderer

	// Registry receives the HTTP request metrics and serves /metrics.
	// Nil disables both.
	Registry *prometheus.Registry

	// Tracer starts one span per request. Nil uses the global tracer.
	Tracer trace.Tracer

	// MaxBodyBytes limits request bodies (default: 1 MiB).
	MaxBodyBytes int64

	// ReadHeaderTimeout bounds header reads (default: 5s).
	ReadHeaderTimeout time.Duration

	// ShutdownTimeout bounds graceful shutdown (default: 10s).
	ShutdownTimeout time.Duration
}

// DefaultConfig returns the default service configuration.
func DefaultConfig() Config {
	return Config{
		Address:           "localhost:3070",
		MaxBodyBytes:      1 << 20,
		ReadHeaderTimeout: 5 * time.Second,
		ShutdownTimeout:   10 * time.Second,
	}
}

func (c *Config) applyDefaults() {
	d := DefaultConfig()
	if c.Address == "" {
		c.Address = d.Address
	}
	if c.MaxBodyBytes <= 0 {
		c.MaxBodyBytes = d.MaxBodyBytes
	}
	if c.ReadHeaderTimeout <= 0 {
		c.ReadHeaderTimeout = d.ReadHeaderTimeout
	}
	if c.ShutdownTimeout <= 0 {
		c.ShutdownTimeout = d.ShutdownTimeout
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
	if c.Applicator == nil {
		c.Applicator = attrs.New(attrs.Options{Logger: c.Logger})
	}
	if c.Renderer == nil {
		c.Renderer = render.NewRenderer(render.Config{})
	}
}
