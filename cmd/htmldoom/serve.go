package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vango-dev/htmldoom/internal/errors"
	"github.com/vango-dev/htmldoom/internal/logging"
	"github.com/vango-dev/htmldoom/pkg/metrics"
	"github.com/vango-dev/htmldoom/pkg/render"
	"github.com/vango-dev/htmldoom/pkg/server"
)

func serveCmd(a *app) *cobra.Command {
	var (
		port     int
		host     string
		noReload bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the preview server",
		Long: `Serve every value as a page, with live reload.

Pages are served at their dotted path with dots turned into slashes,
and the root lists them all. Prometheus metrics are served at /metrics.

Examples:
  htmldoom serve
  htmldoom serve --port=3000
  htmldoom serve --no-reload`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if port > 0 {
				a.cfg.Serve.Port = port
			}
			if host != "" {
				a.cfg.Serve.Host = host
			}
			if noReload {
				a.cfg.Serve.Reload = false
			}

			srv, err := a.newServer()
			if err != nil {
				return err
			}

			printBanner(cmd)
			success(cmd, "Serving %s", a.cfg.ValuesPath())
			info(cmd, "Local: %s", a.cfg.ServeURL())

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return a.serve(ctx, srv)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to run on (default from htmldoom.json)")
	cmd.Flags().StringVarP(&host, "host", "H", "", "Host to bind to (default from htmldoom.json)")
	cmd.Flags().BoolVar(&noReload, "no-reload", false, "Disable live reload")

	return cmd
}

func (a *app) newServer() (*server.Server, error) {
	cfg := a.cfg
	rc := cfg.RenderConfig()

	var m *metrics.Metrics
	if cfg.Serve.Metrics {
		m = metrics.New()
		rc.Observer = m
	}

	return server.New(server.Config{
		FS:             os.DirFS(cfg.ValuesPath()),
		Renderer:       render.New(rc),
		Static:         cfg.Values.Static,
		Reload:         cfg.Serve.Reload,
		PollInterval:   cfg.PollDuration(),
		Metrics:        m,
		DisableTracing: !cfg.Serve.Tracing,
		Logger:         logging.Default(),
	})
}

func (a *app) serve(ctx context.Context, srv *server.Server) error {
	if err := srv.ListenAndServe(ctx, a.cfg.ServeAddress()); err != nil {
		return errors.New("E060").WithDetail(a.cfg.ServeAddress()).Wrap(err)
	}
	return nil
}
