package commands

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nahidreza/folio/internal/errors"
	"github.com/nahidreza/folio/internal/logging"
	"github.com/nahidreza/folio/internal/portfolio"
	"github.com/nahidreza/folio/internal/render"
	"github.com/nahidreza/folio/internal/server"
)

var serveAddr string

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address, overriding server.addr")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the content as a read-only JSON API",
	Long: `Serve case studies and projects over HTTP:

  GET /health
  GET /api/{works|projects}            summaries
  GET /api/{works|projects}/slugs      every slug
  GET /api/{works|projects}/{slug}     one entry (?render=html)
  GET /metrics                         Prometheus metrics (server.metrics)

Listing parameters, combinable:

  ?sort=year     newest first
  ?q=TEXT        match slug, title, description or tech, best match first
  ?tech=NAME     only entries listing NAME in tech

Content is read from disk on every request, so edits show up without a
restart. Stops gracefully on SIGINT or SIGTERM.`,
	Example: `  folio serve
  folio serve --addr 127.0.0.1:3000 -v`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		logger := logging.FromContext(cmd.Context())

		serverCfg := cfg.Server
		if serveAddr != "" {
			serverCfg.Addr = serveAddr
		}

		var (
			metrics *server.Metrics
			onSkip  func(portfolio.Kind, string, error)
		)
		if serverCfg.Metrics {
			m, err := server.NewMetrics()
			if err != nil {
				return errors.NewSystemError(err, "")
			}
			metrics = m
			onSkip = m.ObserveSkip
		}

		site := openSite(cmd.Context(), onSkip)
		for _, sec := range site.Sections() {
			logger.Info("serving section", "kind", string(sec.Kind()), "dir", sec.Dir())
		}

		handler := server.NewRouter(server.RouterConfig{
			Site:     site,
			Renderer: render.New(),
			Metrics:  metrics,
			Logger:   logger,
		})

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		if err := server.New(serverCfg, handler, logger).Run(ctx); err != nil {
			return errors.NewSystemError(err, "Is another process using "+serverCfg.Addr+"?")
		}
		return nil
	},
}
