package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	sessionservice "pulsecheck/contexts/health-checks/session-service"
	sessionpostgres "pulsecheck/contexts/health-checks/session-service/adapters/postgres"
	summaryengine "pulsecheck/contexts/health-checks/summary-engine"
	summarypostgres "pulsecheck/contexts/health-checks/summary-engine/adapters/postgres"
	votingservice "pulsecheck/contexts/health-checks/voting-service"
	votingpostgres "pulsecheck/contexts/health-checks/voting-service/adapters/postgres"
	directoryservice "pulsecheck/contexts/organization/directory-service"
	directorypostgres "pulsecheck/contexts/organization/directory-service/adapters/postgres"
	"pulsecheck/internal/platform/config"
	"pulsecheck/internal/platform/db"
	"pulsecheck/internal/platform/httpserver"
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

	summaryRepo := summarypostgres.NewRepository(pg.DB, logger)
	summaryModule := summaryengine.NewModule(summaryengine.Dependencies{
		Summaries: summaryRepo,
		Votes:     summaryRepo,
		Sessions:  summaryRepo,
		Clock:     summarypostgres.SystemClock{},
		Logger:    logger,
	})

	votingRepo := votingpostgres.NewRepository(pg.DB, logger)
	votingModule := votingservice.NewModule(votingservice.Dependencies{
		Votes:      votingRepo,
		Users:      votingRepo,
		Cards:      votingRepo,
		Sessions:   votingRepo,
		Recomputer: summaryModule.Recompute,
		Clock:      votingpostgres.SystemClock{},
		IDGen:      votingpostgres.UUIDGenerator{},
		Logger:     logger,
	})

	sessionRepo := sessionpostgres.NewRepository(pg.DB, logger)
	sessionModule := sessionservice.NewModule(sessionservice.Dependencies{
		Sessions:      sessionRepo,
		Cards:         sessionRepo,
		Participation: sessionRepo,
		Clock:         sessionpostgres.SystemClock{},
		IDGen:         sessionpostgres.UUIDGenerator{},
		Logger:        logger,
	})

	directoryRepo := directorypostgres.NewRepository(pg.DB, logger)
	directoryModule := directoryservice.NewModule(directoryservice.Dependencies{
		Directory: directoryRepo,
		Logger:    logger,
	})

	server := httpserver.New(
		votingModule,
		sessionModule,
		summaryModule,
		directoryModule,
		logger,
		normalizeAddr(cfg.HTTPPort),
	)
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
