package guildhandlers

import (
	"log/slog"
	"time"

	guildservice "github.com/Black-And-White-Club/trivia-bot/app/modules/guild/application"
	guildevents "github.com/Black-And-White-Club/trivia-bot/internal/events/guild"
	"github.com/Black-And-White-Club/trivia-bot/internal/handlerwrapper"
	"go.opentelemetry.io/otel/trace"
)

// GuildHandlers implements the Handlers interface for guild config events.
type GuildHandlers struct {
	service guildservice.Service
	logger  *slog.Logger
	tracer  trace.Tracer
}

// NewGuildHandlers creates a new GuildHandlers instance.
func NewGuildHandlers(service guildservice.Service, logger *slog.Logger, tracer trace.Tracer) *GuildHandlers {
	return &GuildHandlers{
		service: service,
		logger:  logger,
		tracer:  tracer,
	}
}

// mapOperationResult converts a service result to a single outgoing event.
func mapOperationResult(
	result guildservice.GuildConfigResult,
	successTopic, failureTopic string,
) []handlerwrapper.Result {
	if result.Failure != nil {
		return []handlerwrapper.Result{{
			Topic: failureTopic,
			Payload: guildevents.ConfigFailedPayloadV1{
				GuildID: result.Failure.GuildID,
				Reason:  result.Failure.Reason,
			},
		}}
	}
	if result.Success == nil {
		return nil
	}
	s := result.Success
	return []handlerwrapper.Result{{
		Topic: successTopic,
		Payload: guildevents.ConfigPayloadV1{
			GuildID:      s.GuildID,
			JoinTimeout:  int(s.JoinTimeout / time.Second),
			GuessTimeout: int(s.GuessTimeout / time.Second),
			RoundCount:   s.RoundCount,
			MinPlayers:   s.MinPlayers,
			Default:      s.Default,
		},
	}}
}
