//go:build wireinject
// +build wireinject

package wire

import (
	"log/slog"

	"github.com/google/wire"

	"github.com/sevigo/quality-warden/internal/app"
	"github.com/sevigo/quality-warden/internal/config"
	"github.com/sevigo/quality-warden/internal/db"
	"github.com/sevigo/quality-warden/internal/metrics"
	"github.com/sevigo/quality-warden/internal/nomination"
)

func InitializeApp() (*app.App, func(), error) {
	wire.Build(AppSet)
	return &app.App{}, nil, nil
}

func InitializeService(cfg *config.Config, conn *db.DB, m *metrics.Metrics, logger *slog.Logger) *nomination.Service {
	wire.Build(ServiceSet)
	return nil
}
