package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	boardservice "taskboard/contexts/taskboard/board-service"
	authadapter "taskboard/contexts/taskboard/board-service/adapters/auth"
	postgresadapter "taskboard/contexts/taskboard/board-service/adapters/postgres"
	"taskboard/internal/platform/config"
	"taskboard/internal/platform/db"
	"taskboard/internal/platform/httpserver"
)

// Package bootstrap is the composition root.
// Keep construction/wiring here so module code stays framework-agnostic.

type APIApp struct {
	server   *httpserver.Server
	postgres *db.Postgres
	logger   *slog.Logger
}

func BuildAPI() (*APIApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", cfg.ServiceName, "process", "api")
	if strings.TrimSpace(cfg.PostgresDSN) == "" {
		return nil, errors.New("POSTGRES_DSN is required")
	}

	pg, err := db.Connect(cfg.PostgresDSN)
	if err != nil {
		return nil, err
	}

	repo := postgresadapter.NewRepository(pg.DB, logger)
	if err := repo.Migrate(); err != nil {
		_ = pg.Close()
		return nil, err
	}

	module := boardservice.NewModule(boardservice.Dependencies{
		Users:    repo,
		Columns:  repo,
		Cards:    repo,
		Comments: repo,
		Hasher:   authadapter.NewBcryptHasher(),
		Tokens:   authadapter.NewJWTIssuer(cfg.JWTSecret, time.Duration(cfg.TokenTTLHours)*time.Hour),
		Logger:   logger,
	})

	server := httpserver.New(module, logger, normalizeAddr(cfg.HTTPPort), cfg.CORSOrigins)
	return &APIApp{
		server:   server,
		postgres: pg,
		logger:   logger,
	}, nil
}

func (a *APIApp) Run(_ context.Context) error {
	if a.logger != nil {
		a.logger.Info("api app started",
			"event", "bootstrap_api_started",
			"module", "internal/app/bootstrap",
			"layer", "platform",
		)
	}
	return a.server.Start()
}

func (a *APIApp) Close() error {
	if a.postgres != nil {
		return a.postgres.Close()
	}
	return nil
}

func normalizeAddr(port string) string {
	value := strings.TrimSpace(port)
	if value == "" {
		return ":8080"
	}
	if strings.HasPrefix(value, ":") {
		return value
	}
	return ":" + value
}
