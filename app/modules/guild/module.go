package guild

import (
	"context"
	"fmt"
	"sync"

	guildservice "github.com/Black-And-White-Club/trivia-bot/app/modules/guild/application"
	guilddb "github.com/Black-And-White-Club/trivia-bot/app/modules/guild/infrastructure/repositories"
	guildrouter "github.com/Black-And-White-Club/trivia-bot/app/modules/guild/infrastructure/router"
	"github.com/Black-And-White-Club/trivia-bot/config"
	"github.com/Black-And-White-Club/trivia-bot/internal/observability"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/uptrace/bun"
)

// Module represents the guild module.
type Module struct {
	GuildService  guildservice.Service
	GuildRouter   *guildrouter.GuildRouter
	cancelFunc    context.CancelFunc
	observability *observability.Observability
}

// NewGuildModule creates a new instance of the Guild module.
func NewGuildModule(
	ctx context.Context,
	cfg *config.Config,
	obs *observability.Observability,
	db *bun.DB,
	router *message.Router,
	subscriber message.Subscriber,
	publisher message.Publisher,
) (*Module, error) {
	logger := obs.Logger
	logger.InfoContext(ctx, "guild.NewGuildModule called")

	guildService := guildservice.NewGuildService(
		guilddb.NewRepository(db),
		logger,
		obs.GuildMetrics,
		obs.Tracer,
		guildservice.DefaultsFromConfig(cfg.Trivia),
	)

	guildRouter := guildrouter.NewGuildRouter(logger, router, subscriber, publisher, obs.Tracer)
	if err := guildRouter.Configure(ctx, guildService); err != nil {
		return nil, fmt.Errorf("failed to configure guild router: %w", err)
	}

	return &Module{
		GuildService:  guildService,
		GuildRouter:   guildRouter,
		observability: obs,
	}, nil
}

// Run blocks until ctx is canceled.
func (m *Module) Run(ctx context.Context, wg *sync.WaitGroup) {
	logger := m.observability.Logger
	logger.InfoContext(ctx, "Starting guild module")

	ctx, cancel := context.WithCancel(ctx)
	m.cancelFunc = cancel
	defer cancel()

	if wg != nil {
		defer wg.Done()
	}

	<-ctx.Done()
	logger.InfoContext(ctx, "Guild module goroutine stopped")
}

// Close stops the guild module.
func (m *Module) Close() error {
	if m.cancelFunc != nil {
		m.cancelFunc()
	}
	m.observability.Logger.Info("Guild module stopped")
	return nil
}
