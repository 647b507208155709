package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/sevigo/quality-warden/internal/config"
	"github.com/sevigo/quality-warden/internal/core"
	"github.com/sevigo/quality-warden/internal/db"
	"github.com/sevigo/quality-warden/internal/logger"
	"github.com/sevigo/quality-warden/internal/metrics"
	"github.com/sevigo/quality-warden/internal/nomination"
	"github.com/sevigo/quality-warden/internal/storage"
	"github.com/sevigo/quality-warden/internal/wire"
)

// session is an open database with the nomination service on top of it.
type session struct {
	cfg     *config.Config
	store   storage.Store
	service *nomination.Service
	logger  *slog.Logger
	cleanup func()
}

func openSession() (*session, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}
	log := logger.NewLogger(cfg.Logging, os.Stderr)
	slog.SetDefault(log)

	conn, cleanup, err := db.NewDatabase(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	return &session{
		cfg:     cfg,
		store:   storage.NewStore(conn.DB),
		service: wire.InitializeService(cfg, conn, metrics.New(prometheus.NewRegistry()), log),
		logger:  log,
		cleanup: cleanup,
	}, nil
}

// actor resolves the --user flag to a user id.
func (s *session) actor(ctx context.Context) (int64, error) {
	if actingUser == "" {
		return 0, errors.New("--user is required")
	}
	user, err := s.store.UserByUsername(ctx, actingUser)
	if err != nil {
		if errors.Is(err, core.ErrNoRecord) {
			return 0, fmt.Errorf("unknown user %q", actingUser)
		}
		return 0, fmt.Errorf("failed to look up user %q: %w", actingUser, err)
	}
	return user.UserID, nil
}

// describe turns domain errors into a one-line message for the terminal.
func describe(err error) error {
	var domainErr *core.Error
	if !errors.As(err, &domainErr) {
		return err
	}
	if domainErr.Field != "" {
		return fmt.Errorf("%s (%s: %s)", domainErr.Kind, domainErr.Key, domainErr.Field)
	}
	if domainErr.Err != nil {
		return fmt.Errorf("%s (%s): %w", domainErr.Kind, domainErr.Key, domainErr.Err)
	}
	return fmt.Errorf("%s (%s)", domainErr.Kind, domainErr.Key)
}
