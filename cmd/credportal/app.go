package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/dmitrymomot/credportal/pkg/clientip"
	"github.com/dmitrymomot/credportal/pkg/config"
	"github.com/dmitrymomot/credportal/pkg/credmail"
	"github.com/dmitrymomot/credportal/pkg/email"
	"github.com/dmitrymomot/credportal/pkg/environment"
	"github.com/dmitrymomot/credportal/pkg/httpserver"
	"github.com/dmitrymomot/credportal/pkg/logger"
	"github.com/dmitrymomot/credportal/pkg/redis"
	"github.com/dmitrymomot/credportal/pkg/requestid"
	"github.com/dmitrymomot/credportal/pkg/session"
)

// AppConfig holds process-wide settings.
type AppConfig struct {
	Env  string `env:"APP_ENV" envDefault:"development"`
	Name string `env:"APP_NAME" envDefault:"credportal"`
}

// app bundles the wired dependencies shared by the commands.
type app struct {
	env        environment.Environment
	log        *slog.Logger
	ips        *clientip.Resolver
	dispatcher *credmail.Dispatcher
	sessions   *session.Repository
	checks     []httpserver.Check
	closers    []func() error
}

func newLogger(cfg AppConfig) (environment.Environment, *slog.Logger) {
	env := environment.Parse(cfg.Env)
	log := logger.New(
		logger.WithEnvironment(env, cfg.Name),
		logger.WithContextExtractors(
			requestid.LoggerExtractor(),
			clientip.LoggerExtractor(),
		),
	)
	return env, log
}

// newApp loads configuration and builds every dependency. Redis is used for
// sessions when REDIS_URL is set, process memory otherwise.
func newApp(ctx context.Context, reg prometheus.Registerer) (*app, error) {
	var appCfg AppConfig
	if err := config.Load(&appCfg); err != nil {
		return nil, err
	}
	env, log := newLogger(appCfg)
	logger.SetAsDefault(log)

	a := &app{env: env, log: log}

	var ipCfg clientip.Config
	if err := config.Load(&ipCfg); err != nil {
		return nil, err
	}
	a.ips = clientip.NewResolver(ipCfg.TrustedHeaders...)

	var emailCfg email.Config
	if err := config.Load(&emailCfg); err != nil {
		return nil, err
	}
	sender, err := email.New(emailCfg)
	if err != nil {
		return nil, err
	}
	log.Info("email provider configured", logger.Provider(emailCfg.Provider))

	var mailCfg credmail.Config
	if err := config.Load(&mailCfg); err != nil {
		return nil, err
	}
	metrics, err := credmail.NewMetrics(reg)
	if err != nil {
		return nil, fmt.Errorf("register credmail metrics: %w", err)
	}
	a.dispatcher, err = credmail.NewDispatcher(sender, mailCfg,
		credmail.WithLogger(log),
		credmail.WithMetrics(metrics),
	)
	if err != nil {
		return nil, err
	}

	storage, err := a.sessionStorage(ctx)
	if err != nil {
		return nil, errors.Join(err, a.Close())
	}

	var sessCfg session.Config
	if err := config.Load(&sessCfg); err != nil {
		return nil, errors.Join(err, a.Close())
	}
	a.sessions, err = session.NewFromConfig(storage, sessCfg)
	if err != nil {
		return nil, errors.Join(err, a.Close())
	}

	return a, nil
}

func (a *app) sessionStorage(ctx context.Context) (session.Storage, error) {
	var cfg redis.Config
	if err := config.Load(&cfg); err != nil {
		return nil, err
	}
	if !cfg.Enabled() {
		a.log.Info("REDIS_URL not set, keeping sessions in memory")
		return session.NewMemoryStorage(), nil
	}

	client, err := redis.Connect(ctx, cfg)
	if err != nil {
		return nil, err
	}
	a.closers = append(a.closers, client.Close)

	store := redis.NewSessionStorage(client, cfg.KeyPrefix)
	a.checks = append(a.checks, httpserver.Check{Name: "redis", Fn: store.Ping})
	a.log.Info("session storage connected to redis")

	return store, nil
}

// Close releases external connections.
func (a *app) Close() error {
	var errs []error
	for _, c := range a.closers {
		errs = append(errs, c())
	}
	a.closers = nil
	return errors.Join(errs...)
}
