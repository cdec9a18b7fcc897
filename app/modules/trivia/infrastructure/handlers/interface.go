package triviahandlers

import (
	"context"

	triviaevents "github.com/Black-And-White-Club/trivia-bot/internal/events/trivia"
	"github.com/Black-And-White-Club/trivia-bot/internal/handlerwrapper"
)

// Handlers handles trivia session events.
type Handlers interface {
	HandleSessionStartRequested(ctx context.Context, payload *triviaevents.SessionStartRequestedPayloadV1) ([]handlerwrapper.Result, error)
	HandleForceStartRequested(ctx context.Context, payload *triviaevents.ForceStartRequestedPayloadV1) ([]handlerwrapper.Result, error)
	HandleMessageReceived(ctx context.Context, payload *triviaevents.MessageReceivedPayloadV1) ([]handlerwrapper.Result, error)
	HandleSignupReaction(ctx context.Context, payload *triviaevents.SignupReactionPayloadV1) ([]handlerwrapper.Result, error)
}

// SignupRoster collects reactions on signup messages.
type SignupRoster interface {
	RecordReaction(ctx context.Context, ev triviaevents.SignupReactionPayloadV1) bool
}
