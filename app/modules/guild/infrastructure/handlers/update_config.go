package guildhandlers

import (
	"context"
	"errors"

	guildservice "github.com/Black-And-White-Club/trivia-bot/app/modules/guild/application"
	guildevents "github.com/Black-And-White-Club/trivia-bot/internal/events/guild"
	"github.com/Black-And-White-Club/trivia-bot/internal/handlerwrapper"
)

// HandleUpdateGuildConfig handles the ConfigUpdateRequested event.
func (h *GuildHandlers) HandleUpdateGuildConfig(ctx context.Context, payload *guildevents.ConfigUpdateRequestedPayloadV1) ([]handlerwrapper.Result, error) {
	if payload == nil {
		return nil, errors.New("payload cannot be nil")
	}

	result, err := h.service.UpdateGuildConfig(ctx, payload.GuildID, guildservice.SettingsUpdate{
		JoinTimeout:  payload.JoinTimeout,
		GuessTimeout: payload.GuessTimeout,
		RoundCount:   payload.RoundCount,
		MinPlayers:   payload.MinPlayers,
	})
	if err != nil {
		return nil, err
	}

	return mapOperationResult(result,
		guildevents.ConfigUpdatedV1,
		guildevents.ConfigUpdateFailedV1,
	), nil
}

// HandleResetGuildConfig handles the ConfigResetRequested event.
func (h *GuildHandlers) HandleResetGuildConfig(ctx context.Context, payload *guildevents.ConfigResetRequestedPayloadV1) ([]handlerwrapper.Result, error) {
	if payload == nil {
		return nil, errors.New("payload cannot be nil")
	}

	result, err := h.service.ResetGuildConfig(ctx, payload.GuildID)
	if err != nil {
		return nil, err
	}

	return mapOperationResult(result,
		guildevents.ConfigUpdatedV1,
		guildevents.ConfigUpdateFailedV1,
	), nil
}
