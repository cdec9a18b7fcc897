package triviahandlers

import (
	"errors"
	"log/slog"

	triviaservice "github.com/Black-And-White-Club/trivia-bot/app/modules/trivia/application"
	triviaevents "github.com/Black-And-White-Club/trivia-bot/internal/events/trivia"
	"go.opentelemetry.io/otel/trace"
)

// TriviaHandlers implements the Handlers interface.
type TriviaHandlers struct {
	service triviaservice.Service
	roster  SignupRoster
	logger  *slog.Logger
	tracer  trace.Tracer
}

// NewTriviaHandlers creates a new TriviaHandlers instance.
func NewTriviaHandlers(
	service triviaservice.Service,
	roster SignupRoster,
	logger *slog.Logger,
	tracer trace.Tracer,
) *TriviaHandlers {
	return &TriviaHandlers{
		service: service,
		roster:  roster,
		logger:  logger,
		tracer:  tracer,
	}
}

// failureReason maps a business failure to the reason sent to the gateway.
func failureReason(err error) string {
	switch {
	case errors.Is(err, triviaservice.ErrSessionConflict):
		return triviaevents.ReasonAlreadyActive
	case errors.Is(err, triviaservice.ErrNoActiveSession):
		return triviaevents.ReasonNoActiveSession
	case errors.Is(err, triviaservice.ErrInvalidChannel):
		return triviaevents.ReasonInvalidRequest
	default:
		return err.Error()
	}
}
