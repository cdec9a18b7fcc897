// Package app is the composition root of the trivia backend.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/Black-And-White-Club/trivia-bot/app/database"
	"github.com/Black-And-White-Club/trivia-bot/app/eventbus"
	"github.com/Black-And-White-Club/trivia-bot/app/httpapi"
	"github.com/Black-And-White-Club/trivia-bot/app/modules/catalog"
	"github.com/Black-And-White-Club/trivia-bot/app/modules/guild"
	"github.com/Black-And-White-Club/trivia-bot/app/modules/leaderboard"
	"github.com/Black-And-White-Club/trivia-bot/app/modules/score"
	"github.com/Black-And-White-Club/trivia-bot/app/modules/trivia"
	"github.com/Black-And-White-Club/trivia-bot/config"
	"github.com/Black-And-White-Club/trivia-bot/internal/observability"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/uptrace/bun"
)

// Bus is the transport the modules publish to and subscribe from.
type Bus interface {
	message.Publisher
	message.Subscriber
}

// App holds every module and the shared infrastructure.
type App struct {
	Config        *config.Config
	Observability *observability.Observability
	DB            *bun.DB
	Bus           Bus
	Router        *message.Router
	HTTPServer    *http.Server
	MetricsServer *http.Server

	CatalogModule     *catalog.Module
	GuildModule       *guild.Module
	ScoreModule       *score.Module
	LeaderboardModule *leaderboard.Module
	TriviaModule      *trivia.Module
}

// New connects to Postgres and NATS and builds the modules.
func New(ctx context.Context, cfg *config.Config, obs *observability.Observability) (*App, error) {
	logger := obs.Logger

	db, err := database.Open(ctx, cfg.Postgres.DSN, logger)
	if err != nil {
		return nil, err
	}

	bus, err := eventbus.NewEventBus(ctx, cfg.NATS.URL, logger)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := bus.EnsureStreams(ctx); err != nil {
		_ = bus.Close()
		_ = db.Close()
		return nil, fmt.Errorf("failed to ensure streams: %w", err)
	}

	a, err := Assemble(ctx, cfg, obs, db, bus)
	if err != nil {
		_ = bus.Close()
		_ = db.Close()
		return nil, err
	}
	return a, nil
}

// Assemble wires the modules over an existing database and bus.
func Assemble(ctx context.Context, cfg *config.Config, obs *observability.Observability, db *bun.DB, bus Bus) (*App, error) {
	router, err := newMessageRouter(obs.Logger, obs.Registry)
	if err != nil {
		return nil, err
	}

	a := &App{
		Config:        cfg,
		Observability: obs,
		DB:            db,
		Bus:           bus,
		Router:        router,
	}

	if a.CatalogModule, err = catalog.NewCatalogModule(ctx, cfg, obs); err != nil {
		return nil, err
	}
	if a.GuildModule, err = guild.NewGuildModule(ctx, cfg, obs, db, router, bus, bus); err != nil {
		return nil, fmt.Errorf("failed to initialize guild module: %w", err)
	}
	if a.ScoreModule, err = score.NewScoreModule(ctx, obs, db); err != nil {
		return nil, fmt.Errorf("failed to initialize score module: %w", err)
	}
	if a.LeaderboardModule, err = leaderboard.NewLeaderboardModule(ctx, obs, a.ScoreModule.ScoreService, router, bus, bus); err != nil {
		return nil, fmt.Errorf("failed to initialize leaderboard module: %w", err)
	}
	if a.TriviaModule, err = trivia.NewTriviaModule(
		ctx, cfg, obs,
		a.CatalogModule.Catalog,
		a.GuildModule.GuildService,
		a.ScoreModule.ScoreService,
		router, bus, bus,
	); err != nil {
		return nil, fmt.Errorf("failed to initialize trivia module: %w", err)
	}

	if cfg.HTTP.Address != "" {
		a.HTTPServer = httpapi.NewHTTPServer(cfg.HTTP.Address,
			httpapi.NewRouter(a.ScoreModule.ScoreService, obs.Registry, obs.Logger))
	}
	if addr := cfg.Observability.MetricsAddress; addr != "" && addr != cfg.HTTP.Address {
		a.MetricsServer = httpapi.NewHTTPServer(addr, httpapi.NewMetricsRouter(obs.Registry))
	}
	return a, nil
}

// Close stops the sessions and releases the connections. It is called after
// Run returns.
func (a *App) Close() error {
	logger := a.Observability.Logger
	var errs []error
	if a.TriviaModule != nil {
		errs = append(errs, a.TriviaModule.Close())
	}
	if a.GuildModule != nil {
		errs = append(errs, a.GuildModule.Close())
	}
	if a.ScoreModule != nil {
		errs = append(errs, a.ScoreModule.Close())
	}
	if err := a.Router.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close router: %w", err))
	}
	if a.Bus != nil {
		errs = append(errs, a.Bus.Close())
	}
	if a.DB != nil {
		errs = append(errs, a.DB.Close())
	}
	err := errors.Join(errs...)
	if err != nil {
		logger.Error("Shutdown finished with errors", slog.Any("error", err))
	} else {
		logger.Info("Application shut down gracefully")
	}
	return err
}
