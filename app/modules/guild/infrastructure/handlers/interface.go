package guildhandlers

import (
	"context"

	guildevents "github.com/Black-And-White-Club/trivia-bot/internal/events/guild"
	"github.com/Black-And-White-Club/trivia-bot/internal/handlerwrapper"
)

// Handlers defines the contract for guild config event handlers.
type Handlers interface {
	HandleRetrieveGuildConfig(ctx context.Context, payload *guildevents.ConfigRetrieveRequestedPayloadV1) ([]handlerwrapper.Result, error)
	HandleUpdateGuildConfig(ctx context.Context, payload *guildevents.ConfigUpdateRequestedPayloadV1) ([]handlerwrapper.Result, error)
	HandleResetGuildConfig(ctx context.Context, payload *guildevents.ConfigResetRequestedPayloadV1) ([]handlerwrapper.Result, error)
}
