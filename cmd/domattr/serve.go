package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/vango-dev/domattr/pkg/server"
)

func serveCmd() *cobra.Command {
	var (
		port      int
		host      string
		configDir string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP service",
		Long: `Run the attribute engine as an HTTP service.

Routes:
  POST /apply    apply {"html","attrs","svg"} and return {"html","mutated"}
  GET  /healthz  liveness probe
  GET  /metrics  Prometheus metrics (unless metrics.enabled is false)

Examples:
  domattr serve
  domattr serve --port=8080
  domattr serve --host=0.0.0.0`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			return runServe(ctx, configDir, host, port)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to listen on (default from domattr.json)")
	cmd.Flags().StringVarP(&host, "host", "H", "", "Host to bind to (default from domattr.json)")
	cmd.Flags().StringVarP(&configDir, "config", "c", "", "Directory containing domattr.json (default: working directory)")

	return cmd
}

func runServe(ctx context.Context, configDir, host string, port int) error {
	cfg, err := loadConfig(configDir)
	if err != nil {
		return err
	}

	// Apply command-line overrides
	if port > 0 {
		cfg.Server.Port = port
	}
	if host != "" {
		cfg.Server.Host = host
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	rt, err := newRuntime(cfg, os.Stderr)
	if err != nil {
		return err
	}

	srvCfg := server.DefaultConfig()
	srvCfg.Address = cfg.Server.Address()
	srvCfg.Logger = rt.logger
	srvCfg.Applicator = rt.applicator
	srvCfg.Renderer = rt.renderer
	srvCfg.Tracer = rt.tracer
	srvCfg.Registry = rt.registry

	success("Serving on http://%s", srvCfg.Address)
	if rt.registry != nil {
		info("Metrics at http://%s/metrics", srvCfg.Address)
	}

	return server.New(srvCfg).Run(ctx)
}
