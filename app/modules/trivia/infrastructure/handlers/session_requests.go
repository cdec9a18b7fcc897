package triviahandlers

import (
	"context"
	"errors"

	triviaevents "github.com/Black-And-White-Club/trivia-bot/internal/events/trivia"
	"github.com/Black-And-White-Club/trivia-bot/internal/handlerwrapper"
)

// HandleSessionStartRequested handles the SessionStartRequested event.
func (h *TriviaHandlers) HandleSessionStartRequested(ctx context.Context, payload *triviaevents.SessionStartRequestedPayloadV1) ([]handlerwrapper.Result, error) {
	if payload == nil {
		return nil, errors.New("payload cannot be nil")
	}

	result, err := h.service.StartSession(ctx, payload.GuildID, payload.ChannelID, payload.RequestedBy)
	if err != nil {
		return nil, err
	}

	if result.Failure != nil {
		return []handlerwrapper.Result{{
			Topic: triviaevents.SessionStartFailedV1,
			Payload: triviaevents.SessionStartFailedPayloadV1{
				GuildID:   payload.GuildID,
				ChannelID: payload.ChannelID,
				Reason:    failureReason(result.Failure.Err),
			},
		}}, nil
	}
	if result.Success == nil {
		return nil, nil
	}

	return []handlerwrapper.Result{{
		Topic: triviaevents.SessionStartedV1,
		Payload: triviaevents.SessionStartedPayloadV1{
			GuildID:   result.Success.GuildID,
			ChannelID: result.Success.ChannelID,
			SessionID: result.Success.SessionID,
		},
	}}, nil
}

// HandleForceStartRequested handles the ForceStartRequested event.
func (h *TriviaHandlers) HandleForceStartRequested(ctx context.Context, payload *triviaevents.ForceStartRequestedPayloadV1) ([]handlerwrapper.Result, error) {
	if payload == nil {
		return nil, errors.New("payload cannot be nil")
	}

	result, err := h.service.ForceStartNow(ctx, payload.GuildID, payload.ChannelID)
	if err != nil {
		return nil, err
	}

	if result.Failure != nil {
		return []handlerwrapper.Result{{
			Topic: triviaevents.ForceStartFailedV1,
			Payload: triviaevents.ForceStartFailedPayloadV1{
				GuildID:   payload.GuildID,
				ChannelID: payload.ChannelID,
				Reason:    failureReason(result.Failure.Err),
			},
		}}, nil
	}

	return []handlerwrapper.Result{{
		Topic: triviaevents.ForceStartedV1,
		Payload: triviaevents.ForceStartedPayloadV1{
			GuildID:   payload.GuildID,
			ChannelID: payload.ChannelID,
		},
	}}, nil
}
