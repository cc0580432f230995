// Package httpserver runs the service's http.Server with drain-aware graceful
// shutdown and serves the health-check endpoints.
//
// Run blocks until the context is cancelled or SIGINT/SIGTERM arrives. It then
// flips Ready to ErrDraining, keeps serving for Config.DrainDelay so load
// balancers can notice, and calls http.Server.Shutdown with
// Config.ShutdownTimeout.
//
// LivenessHandler and ReadinessHandler serve JSON health responses. Readiness
// runs every registered Check and answers 503 when any of them fails. Register
// Server.Ready as a Check to report draining instances as unavailable.
//
// # Usage
//
//	var cfg httpserver.Config
//	config.MustLoad(&cfg)
//	srv := httpserver.New(cfg, httpserver.WithLogger(log))
//
//	r := chi.NewRouter()
//	r.Get("/health/live", httpserver.LivenessHandler())
//	r.Get("/health/ready", httpserver.ReadinessHandler(log,
//	    httpserver.Check{Name: "http_server", Fn: srv.Ready},
//	    httpserver.Check{Name: "redis", Fn: store.Ping},
//	))
//
//	if err := srv.Run(ctx, r); err != nil {
//	    log.Error("server stopped", logger.Error(err))
//	}
//
// # Errors
//
// Listen and serve failures are joined with ErrStart and shutdown failures
// with ErrShutdown. Use errors.Is to distinguish them.
package httpserver
