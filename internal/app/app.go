// Package app holds the running quality-warden service: the configuration,
// the nomination service and the HTTP server in front of it.
package app

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/sevigo/quality-warden/internal/config"
	"github.com/sevigo/quality-warden/internal/db"
	"github.com/sevigo/quality-warden/internal/nomination"
	"github.com/sevigo/quality-warden/internal/server"
	"github.com/sevigo/quality-warden/internal/storage"
)

// App holds the main application components.
type App struct {
	Cfg     *config.Config
	DB      *db.DB
	Store   storage.Store
	Service *nomination.Service

	server *server.Server
	logger *slog.Logger
}

// NewApp assembles the application from its wired components.
func NewApp(
	cfg *config.Config,
	dbConn *db.DB,
	store storage.Store,
	service *nomination.Service,
	srv *server.Server,
	logger *slog.Logger,
) *App {
	return &App{
		Cfg:     cfg,
		DB:      dbConn,
		Store:   store,
		Service: service,
		server:  srv,
		logger:  logger,
	}
}

// Start runs the HTTP server and blocks until it stops.
func (a *App) Start() error {
	a.logger.Info("starting quality-warden",
		"server_port", a.Cfg.Server.Port,
		"db_driver", a.Cfg.Database.Driver,
		"reviewer_group", a.Cfg.Quality.ReviewerGroupAlias,
		"reviewers_per_nomination", a.Cfg.Quality.ReviewersPerNomination,
		"lockdown", a.Cfg.Quality.Lockdown)

	if err := a.server.Start(); err != nil {
		a.logger.Error("failed to start HTTP server", "error", err)
		return err
	}
	return nil
}

// Run serves until ctx is cancelled or the server fails, then shuts down.
func (a *App) Run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)
	g.Go(a.Start)
	g.Go(func() error {
		<-gctx.Done()
		return a.Stop()
	})
	return g.Wait()
}

// Stop shuts the HTTP server down. The database is closed by the cleanup
// function returned alongside the App.
func (a *App) Stop() error {
	a.logger.Info("shutting down quality-warden")

	if err := a.server.Stop(); err != nil {
		a.logger.Error("error during HTTP server shutdown", "error", err)
		return err
	}

	a.logger.Info("quality-warden stopped successfully")
	return nil
}
