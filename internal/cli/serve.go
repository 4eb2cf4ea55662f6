package cli

import (
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/humanids/internal/api"
	"github.com/dmitrymomot/humanids/pkg/httpserver"
	"github.com/dmitrymomot/humanids/pkg/logger"
)

func newServeCmd(a *app) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve identifiers over HTTP",
		Long: `Start an HTTP server exposing GET /v1/ids, GET /v1/lexicon and
GET /v1/lexicon/{category}. The server stops on SIGINT or SIGTERM.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			cfg := a.cfg.HTTP
			if cmd.Flags().Changed("addr") {
				cfg.Addr = addr
			}

			out := cmd.OutOrStdout()
			log := a.log.With(logger.Component("http"))
			srv := httpserver.NewFromConfig(cfg,
				httpserver.WithLogger(log),
				httpserver.WithStartHook(func(l *slog.Logger, bound net.Addr) {
					fmt.Fprintf(out, "Listening on http://%s\n", bound)
					l.Info("http server started", slog.String("addr", bound.String()))
				}),
			)

			return srv.Run(ctx, api.NewRouter(api.WithLogger(log)))
		},
	}

	cmd.Flags().StringVar(&addr, "addr", a.cfg.HTTP.Addr, "Listen address (overrides HUMANID_HTTP_ADDR)")

	return cmd
}
