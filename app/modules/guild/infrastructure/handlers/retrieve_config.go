package guildhandlers

import (
	"context"
	"errors"

	guildevents "github.com/Black-And-White-Club/trivia-bot/internal/events/guild"
	"github.com/Black-And-White-Club/trivia-bot/internal/handlerwrapper"
)

// HandleRetrieveGuildConfig handles the ConfigRetrieveRequested event.
func (h *GuildHandlers) HandleRetrieveGuildConfig(ctx context.Context, payload *guildevents.ConfigRetrieveRequestedPayloadV1) ([]handlerwrapper.Result, error) {
	if payload == nil {
		return nil, errors.New("payload cannot be nil")
	}

	result, err := h.service.GetGuildConfig(ctx, payload.GuildID)
	if err != nil {
		return nil, err
	}

	return mapOperationResult(result,
		guildevents.ConfigRetrievedV1,
		guildevents.ConfigRetrieveFailedV1,
	), nil
}
