package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/vango-dev/domattr/internal/config"
	"github.com/vango-dev/domattr/internal/errors"
	"github.com/vango-dev/domattr/pkg/attrs"
	"github.com/vango-dev/domattr/pkg/render"
)

// runtimeDeps holds the collaborators built from domattr.json.
type runtimeDeps struct {
	cfg        *config.Config
	logger     *slog.Logger
	registry   *prometheus.Registry
	tracer     trace.Tracer
	applicator *attrs.Applicator
	renderer   *render.Renderer
}

func loadConfig(dir string) (*config.Config, error) {
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		dir = wd
	}
	return config.Load(dir)
}

func newRuntime(cfg *config.Config, logOut io.Writer) (*runtimeDeps, error) {
	level, err := cfg.SlogLevel()
	if err != nil {
		return nil, err
	}
	logger := slog.New(slog.NewTextHandler(logOut, &slog.HandlerOptions{Level: level}))

	var tracer trace.Tracer
	if cfg.Tracing.Enabled {
		tracer = otel.Tracer(cfg.Tracing.TracerName)
	} else {
		tracer = noop.NewTracerProvider().Tracer(cfg.Tracing.TracerName)
	}

	var (
		registry *prometheus.Registry
		metrics  *attrs.Metrics
	)
	if cfg.Metrics.On() {
		registry = prometheus.NewRegistry()
		registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		metrics = attrs.NewMetrics(attrs.MetricsConfig{
			Namespace: cfg.Metrics.Namespace,
			Registry:  registry,
		})
	}

	return &runtimeDeps{
		cfg:      cfg,
		logger:   logger,
		registry: registry,
		tracer:   tracer,
		applicator: attrs.New(attrs.Options{
			Logger:  logger,
			Metrics: metrics,
			Tracer:  tracer,
		}),
		renderer: render.NewRenderer(render.Config{Pretty: cfg.Render.Pretty}),
	}, nil
}

// printError writes err to stderr.
func printError(err error) {
	errors.PrintError(os.Stderr, err)
}
