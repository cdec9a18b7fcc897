package guildrouter

import (
	"context"
	"log/slog"

	guildservice "github.com/Black-And-White-Club/trivia-bot/app/modules/guild/application"
	guildhandlers "github.com/Black-And-White-Club/trivia-bot/app/modules/guild/infrastructure/handlers"
	guildevents "github.com/Black-And-White-Club/trivia-bot/internal/events/guild"
	"github.com/Black-And-White-Club/trivia-bot/internal/handlerwrapper"
	"github.com/ThreeDotsLabs/watermill/message"
	"go.opentelemetry.io/otel/trace"
)

// GuildRouter handles routing for guild config events.
type GuildRouter struct {
	logger     *slog.Logger
	Router     *message.Router
	subscriber message.Subscriber
	publisher  message.Publisher
	tracer     trace.Tracer
}

// NewGuildRouter creates a new GuildRouter.
func NewGuildRouter(
	logger *slog.Logger,
	router *message.Router,
	subscriber message.Subscriber,
	publisher message.Publisher,
	tracer trace.Tracer,
) *GuildRouter {
	return &GuildRouter{
		logger:     logger,
		Router:     router,
		subscriber: subscriber,
		publisher:  publisher,
		tracer:     tracer,
	}
}

// Configure registers the guild handlers on the shared router.
func (r *GuildRouter) Configure(ctx context.Context, guildService guildservice.Service) error {
	return r.RegisterHandlers(ctx, guildhandlers.NewGuildHandlers(guildService, r.logger, r.tracer))
}

type handlerDeps struct {
	router     *message.Router
	subscriber message.Subscriber
	publisher  message.Publisher
	logger     *slog.Logger
	tracer     trace.Tracer
}

// registerHandler registers a pure transformation-pattern handler with typed payload.
func registerHandler[T any](
	deps handlerDeps,
	topic string,
	handler func(context.Context, *T) ([]handlerwrapper.Result, error),
) {
	handlerName := "guild." + topic

	deps.router.AddHandler(
		handlerName,
		topic,
		deps.subscriber,
		"", // the publisher routes by the topic stored in message metadata
		deps.publisher,
		handlerwrapper.WrapTransformingTyped[T](handlerName, deps.logger, deps.tracer, handler),
	)
}

// RegisterHandlers registers event handlers using the pure transformation pattern.
func (r *GuildRouter) RegisterHandlers(ctx context.Context, handlers guildhandlers.Handlers) error {
	deps := handlerDeps{
		router:     r.Router,
		subscriber: r.subscriber,
		publisher:  r.publisher,
		logger:     r.logger,
		tracer:     r.tracer,
	}

	registerHandler(deps, guildevents.ConfigRetrieveRequestedV1, handlers.HandleRetrieveGuildConfig)
	registerHandler(deps, guildevents.ConfigUpdateRequestedV1, handlers.HandleUpdateGuildConfig)
	registerHandler(deps, guildevents.ConfigResetRequestedV1, handlers.HandleResetGuildConfig)

	return nil
}
