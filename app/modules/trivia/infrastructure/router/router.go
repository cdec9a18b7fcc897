package triviarouter

import (
	"context"
	"log/slog"

	triviaservice "github.com/Black-And-White-Club/trivia-bot/app/modules/trivia/application"
	triviahandlers "github.com/Black-And-White-Club/trivia-bot/app/modules/trivia/infrastructure/handlers"
	triviaevents "github.com/Black-And-White-Club/trivia-bot/internal/events/trivia"
	"github.com/Black-And-White-Club/trivia-bot/internal/handlerwrapper"
	"github.com/ThreeDotsLabs/watermill/message"
	"go.opentelemetry.io/otel/trace"
)

// TriviaRouter handles routing for game session events.
type TriviaRouter struct {
	logger     *slog.Logger
	Router     *message.Router
	subscriber message.Subscriber
	publisher  message.Publisher
	tracer     trace.Tracer
}

// NewTriviaRouter creates a new TriviaRouter.
func NewTriviaRouter(
	logger *slog.Logger,
	router *message.Router,
	subscriber message.Subscriber,
	publisher message.Publisher,
	tracer trace.Tracer,
) *TriviaRouter {
	return &TriviaRouter{
		logger:     logger,
		Router:     router,
		subscriber: subscriber,
		publisher:  publisher,
		tracer:     tracer,
	}
}

// Configure registers the trivia handlers on the shared router.
func (r *TriviaRouter) Configure(ctx context.Context, service triviaservice.Service, roster triviahandlers.SignupRoster) error {
	return r.RegisterHandlers(ctx, triviahandlers.NewTriviaHandlers(service, roster, r.logger, r.tracer))
}

// RegisterHandlers registers the session request and participant handlers.
func (r *TriviaRouter) RegisterHandlers(ctx context.Context, handlers triviahandlers.Handlers) error {
	register := func(topic string, h message.HandlerFunc) {
		r.Router.AddHandler("trivia."+topic, topic, r.subscriber, "", r.publisher, h)
	}

	register(triviaevents.SessionStartRequestedV1, handlerwrapper.WrapTransformingTyped[triviaevents.SessionStartRequestedPayloadV1](
		"trivia."+triviaevents.SessionStartRequestedV1, r.logger, r.tracer, handlers.HandleSessionStartRequested))
	register(triviaevents.ForceStartRequestedV1, handlerwrapper.WrapTransformingTyped[triviaevents.ForceStartRequestedPayloadV1](
		"trivia."+triviaevents.ForceStartRequestedV1, r.logger, r.tracer, handlers.HandleForceStartRequested))
	register(triviaevents.MessageReceivedV1, handlerwrapper.WrapTransformingTyped[triviaevents.MessageReceivedPayloadV1](
		"trivia."+triviaevents.MessageReceivedV1, r.logger, r.tracer, handlers.HandleMessageReceived))
	register(triviaevents.SignupReactionV1, handlerwrapper.WrapTransformingTyped[triviaevents.SignupReactionPayloadV1](
		"trivia."+triviaevents.SignupReactionV1, r.logger, r.tracer, handlers.HandleSignupReaction))

	r.logger.InfoContext(ctx, "Trivia handlers registered")
	return nil
}
