package guildservice

import (
	"context"

	"github.com/Black-And-White-Club/trivia-bot/internal/results"
	"github.com/Black-And-White-Club/trivia-bot/internal/sharedtypes"
)

// SettingsUpdate carries optional new values. Timeouts are in seconds.
type SettingsUpdate struct {
	JoinTimeout  *int `json:"join_timeout,omitempty"`
	GuessTimeout *int `json:"guess_timeout,omitempty"`
	RoundCount   *int `json:"round_count,omitempty"`
	MinPlayers   *int `json:"min_players,omitempty"`
}

// ConfigFailure is the business failure payload of config operations.
type ConfigFailure struct {
	GuildID sharedtypes.GuildID `json:"guild_id"`
	Reason  string              `json:"reason"`
}

// GuildConfigResult is a type alias to reduce generic verbosity.
type GuildConfigResult = results.OperationResult[GameSettings, ConfigFailure]

// Service defines the interface for guild game configuration.
type Service interface {
	// Settings returns the effective settings, falling back to defaults.
	Settings(ctx context.Context, guildID sharedtypes.GuildID) (GameSettings, error)

	GetGuildConfig(ctx context.Context, guildID sharedtypes.GuildID) (GuildConfigResult, error)
	UpdateGuildConfig(ctx context.Context, guildID sharedtypes.GuildID, update SettingsUpdate) (GuildConfigResult, error)
	ResetGuildConfig(ctx context.Context, guildID sharedtypes.GuildID) (GuildConfigResult, error)

	SetJoinTimeout(ctx context.Context, guildID sharedtypes.GuildID, seconds int) (GuildConfigResult, error)
	SetGuessTimeout(ctx context.Context, guildID sharedtypes.GuildID, seconds int) (GuildConfigResult, error)
	SetRoundCount(ctx context.Context, guildID sharedtypes.GuildID, rounds int) (GuildConfigResult, error)
	SetMinPlayers(ctx context.Context, guildID sharedtypes.GuildID, players int) (GuildConfigResult, error)
}
