// Package wire assembles the application's dependency graph.
package wire

import (
	"io"
	"log/slog"

	"github.com/google/wire"
	"github.com/jmoiron/sqlx"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/sevigo/quality-warden/internal/app"
	"github.com/sevigo/quality-warden/internal/config"
	"github.com/sevigo/quality-warden/internal/content"
	"github.com/sevigo/quality-warden/internal/core"
	"github.com/sevigo/quality-warden/internal/db"
	"github.com/sevigo/quality-warden/internal/logger"
	"github.com/sevigo/quality-warden/internal/metrics"
	"github.com/sevigo/quality-warden/internal/nomination"
	"github.com/sevigo/quality-warden/internal/reviewers"
	"github.com/sevigo/quality-warden/internal/server"
	"github.com/sevigo/quality-warden/internal/storage"
	"github.com/sevigo/quality-warden/internal/tags"
)

// ServiceSet builds the nomination service on top of an open database.
// The CLI uses it without the HTTP server.
var ServiceSet = wire.NewSet(
	storage.NewStore,
	tags.NewNormalizer,
	content.NewValidator,
	nomination.NewService,
	provideSQLX,
	provideSampler,
	providePool,
	wire.Bind(new(core.TagNormalizer), new(tags.Normalizer)),
	wire.Bind(new(core.ProblemResolver), new(storage.Store)),
	wire.Bind(new(core.GroupDirectory), new(storage.Store)),
	wire.Bind(new(core.NominationRepository), new(storage.Store)),
)

// AppSet is the full HTTP service graph.
var AppSet = wire.NewSet(
	ServiceSet,
	app.NewApp,
	server.NewServer,
	config.LoadConfig,
	db.NewDatabase,
	metrics.New,
	provideRegistry,
	provideLoggerConfig,
	provideLogWriter,
	provideSlogLogger,
	provideDBConfig,
	wire.Bind(new(prometheus.Registerer), new(*prometheus.Registry)),
)

func provideSQLX(conn *db.DB) *sqlx.DB {
	return conn.DB
}

func provideSampler() core.Sampler {
	return reviewers.NewRandomSampler()
}

func providePool(cfg *config.Config, directory core.GroupDirectory, sampler core.Sampler, logger *slog.Logger) *reviewers.Pool {
	return reviewers.NewPool(cfg.Quality.ReviewerGroupAlias, directory, sampler, logger)
}

func provideRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

func provideLoggerConfig(cfg *config.Config) logger.Config {
	return cfg.Logging
}

func provideLogWriter(cfg logger.Config) io.Writer {
	return logger.OpenOutput(cfg.Output)
}

func provideSlogLogger(cfg logger.Config, writer io.Writer) *slog.Logger {
	return logger.NewLogger(cfg, writer)
}

func provideDBConfig(cfg *config.Config) *config.DBConfig {
	return &cfg.Database
}
