package main

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/credportal/pkg/config"
	"github.com/dmitrymomot/credportal/pkg/httpserver"
	"github.com/dmitrymomot/credportal/pkg/logger"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Long: `Run the HTTP API:

  POST   /api/send-credentials   email credentials to a user
  POST   /api/session            store the simulated login session
  GET    /api/session            read it back
  DELETE /api/session            clear it
  GET    /health/live, /health/ready, /metrics`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			a, err := newApp(ctx, prometheus.DefaultRegisterer)
			if err != nil {
				return err
			}
			defer func() {
				if err := a.Close(); err != nil {
					a.log.Error("failed to close resources", logger.Error(err))
				}
			}()

			var srvCfg httpserver.Config
			if err := config.Load(&srvCfg); err != nil {
				return err
			}

			srv := httpserver.New(srvCfg, httpserver.WithLogger(a.log))
			checks := append([]httpserver.Check{{Name: "http_server", Fn: srv.Ready}}, a.checks...)

			handler := newRouter(routerDeps{
				env:        a.env,
				log:        a.log,
				ips:        a.ips,
				dispatcher: a.dispatcher,
				sessions:   a.sessions,
				checks:     checks,
				gatherer:   prometheus.DefaultGatherer,
			})

			return srv.Run(ctx, handler)
		},
	}
}
