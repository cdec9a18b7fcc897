package leaderboardrouter

import (
	"context"
	"log/slog"

	leaderboardhandlers "github.com/Black-And-White-Club/trivia-bot/app/modules/leaderboard/infrastructure/handlers"
	leaderboardevents "github.com/Black-And-White-Club/trivia-bot/internal/events/leaderboard"
	"github.com/Black-And-White-Club/trivia-bot/internal/handlerwrapper"
	"github.com/ThreeDotsLabs/watermill/message"
	"go.opentelemetry.io/otel/trace"
)

// LeaderboardRouter handles routing for leaderboard request events.
type LeaderboardRouter struct {
	logger     *slog.Logger
	Router     *message.Router
	subscriber message.Subscriber
	publisher  message.Publisher
	tracer     trace.Tracer
}

// NewLeaderboardRouter creates a new LeaderboardRouter.
func NewLeaderboardRouter(
	logger *slog.Logger,
	router *message.Router,
	subscriber message.Subscriber,
	publisher message.Publisher,
	tracer trace.Tracer,
) *LeaderboardRouter {
	return &LeaderboardRouter{
		logger:     logger,
		Router:     router,
		subscriber: subscriber,
		publisher:  publisher,
		tracer:     tracer,
	}
}

// Configure registers the leaderboard handlers reading from boards.
func (r *LeaderboardRouter) Configure(ctx context.Context, boards leaderboardhandlers.Boards) error {
	return r.RegisterHandlers(ctx, leaderboardhandlers.NewLeaderboardHandlers(boards, r.logger, r.tracer))
}

// RegisterHandlers registers event handlers using the pure transformation pattern.
func (r *LeaderboardRouter) RegisterHandlers(ctx context.Context, handlers leaderboardhandlers.Handlers) error {
	handlerName := "leaderboard." + leaderboardevents.LeaderboardRequestedV1
	r.Router.AddHandler(
		handlerName,
		leaderboardevents.LeaderboardRequestedV1,
		r.subscriber,
		"",
		r.publisher,
		handlerwrapper.WrapTransformingTyped[leaderboardevents.LeaderboardRequestedPayloadV1](handlerName, r.logger, r.tracer, handlers.HandleLeaderboardRequested),
	)
	return nil
}
