package main

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dmitrymomot/credportal/pkg/clientip"
	"github.com/dmitrymomot/credportal/pkg/credmail"
	"github.com/dmitrymomot/credportal/pkg/environment"
	"github.com/dmitrymomot/credportal/pkg/httpserver"
	"github.com/dmitrymomot/credportal/pkg/requestid"
	"github.com/dmitrymomot/credportal/pkg/session"
)

type routerDeps struct {
	env        environment.Environment
	log        *slog.Logger
	ips        *clientip.Resolver
	dispatcher *credmail.Dispatcher
	sessions   *session.Repository
	checks     []httpserver.Check
	gatherer   prometheus.Gatherer
}

func newRouter(d routerDeps) http.Handler {
	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	if d.ips != nil {
		r.Use(d.ips.Middleware)
	}
	r.Use(environment.Middleware(d.env))
	r.Use(middleware.Recoverer)

	r.Get("/health/live", httpserver.LivenessHandler())
	r.Get("/health/ready", httpserver.ReadinessHandler(d.log, d.checks...))
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(d.gatherer, promhttp.HandlerOpts{}))

	r.Route("/api", func(r chi.Router) {
		// Every method reaches the handler so it can answer 405 itself.
		r.HandleFunc("/send-credentials", credmail.Handler(d.dispatcher, d.log))

		sh := session.NewHandler(d.sessions, d.log)
		r.Post("/session", sh.Save)
		r.Get("/session", sh.Get)
		r.Delete("/session", sh.Clear)
	})

	return r
}
