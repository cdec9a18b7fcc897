package leaderboard

import (
	"context"
	"fmt"

	leaderboardhandlers "github.com/Black-And-White-Club/trivia-bot/app/modules/leaderboard/infrastructure/handlers"
	leaderboardrouter "github.com/Black-And-White-Club/trivia-bot/app/modules/leaderboard/infrastructure/router"
	"github.com/Black-And-White-Club/trivia-bot/internal/observability"
	"github.com/ThreeDotsLabs/watermill/message"
)

// Module serves the persisted leaderboards over the event bus.
type Module struct {
	LeaderboardRouter *leaderboardrouter.LeaderboardRouter
}

// NewLeaderboardModule wires the leaderboard request handler to boards.
func NewLeaderboardModule(
	ctx context.Context,
	obs *observability.Observability,
	boards leaderboardhandlers.Boards,
	router *message.Router,
	subscriber message.Subscriber,
	publisher message.Publisher,
) (*Module, error) {
	obs.Logger.InfoContext(ctx, "leaderboard.NewLeaderboardModule called")

	leaderboardRouter := leaderboardrouter.NewLeaderboardRouter(obs.Logger, router, subscriber, publisher, obs.Tracer)
	if err := leaderboardRouter.Configure(ctx, boards); err != nil {
		return nil, fmt.Errorf("failed to configure leaderboard router: %w", err)
	}

	return &Module{LeaderboardRouter: leaderboardRouter}, nil
}
