package triviahandlers

import (
	"context"
	"errors"
	"log/slog"

	triviaservice "github.com/Black-And-White-Club/trivia-bot/app/modules/trivia/application"
	triviaevents "github.com/Black-And-White-Club/trivia-bot/internal/events/trivia"
	"github.com/Black-And-White-Club/trivia-bot/internal/handlerwrapper"
)

// HandleMessageReceived routes a chat message to the channel's running
// session. Messages in channels without one are dropped.
func (h *TriviaHandlers) HandleMessageReceived(ctx context.Context, payload *triviaevents.MessageReceivedPayloadV1) ([]handlerwrapper.Result, error) {
	if payload == nil {
		return nil, errors.New("payload cannot be nil")
	}
	if payload.Author.Bot {
		return nil, nil
	}

	taken := h.service.Deliver(ctx, payload.ChannelID, triviaservice.Event{
		Author:    payload.Author,
		MessageID: payload.MessageID,
		Text:      payload.Content,
	})
	if taken {
		h.logger.DebugContext(ctx, "Answer delivered",
			slog.String("channel_id", payload.ChannelID.String()),
			slog.String("player_id", payload.Author.ID.String()),
		)
	}
	return nil, nil
}

// HandleSignupReaction updates the signup roster of the reacted message.
func (h *TriviaHandlers) HandleSignupReaction(ctx context.Context, payload *triviaevents.SignupReactionPayloadV1) ([]handlerwrapper.Result, error) {
	if payload == nil {
		return nil, errors.New("payload cannot be nil")
	}
	h.roster.RecordReaction(ctx, *payload)
	return nil, nil
}
