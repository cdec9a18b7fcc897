// Package guildevents defines the per-guild game configuration topics.
package guildevents

import "github.com/Black-And-White-Club/trivia-bot/internal/sharedtypes"

const (
	ConfigRetrieveRequestedV1 = "trivia.config.retrieve.requested.v1"
	ConfigRetrievedV1         = "trivia.config.retrieved.v1"
	ConfigRetrieveFailedV1    = "trivia.config.retrieve.failed.v1"

	ConfigUpdateRequestedV1 = "trivia.config.update.requested.v1"
	ConfigUpdatedV1         = "trivia.config.updated.v1"
	ConfigUpdateFailedV1    = "trivia.config.update.failed.v1"

	// ConfigResetRequestedV1 replies on the update topics.
	ConfigResetRequestedV1 = "trivia.config.reset.requested.v1"
)

// ConfigRetrieveRequestedPayloadV1 asks for the effective settings.
type ConfigRetrieveRequestedPayloadV1 struct {
	GuildID sharedtypes.GuildID `json:"guild_id"`
}

// ConfigUpdateRequestedPayloadV1 carries optional new values. Timeouts are seconds.
type ConfigUpdateRequestedPayloadV1 struct {
	GuildID      sharedtypes.GuildID `json:"guild_id"`
	JoinTimeout  *int                `json:"join_timeout,omitempty"`
	GuessTimeout *int                `json:"guess_timeout,omitempty"`
	RoundCount   *int                `json:"round_count,omitempty"`
	MinPlayers   *int                `json:"min_players,omitempty"`
}

// ConfigResetRequestedPayloadV1 drops all overrides of a guild.
type ConfigResetRequestedPayloadV1 struct {
	GuildID sharedtypes.GuildID `json:"guild_id"`
}

// ConfigPayloadV1 is the effective configuration of a guild.
type ConfigPayloadV1 struct {
	GuildID      sharedtypes.GuildID `json:"guild_id"`
	JoinTimeout  int                 `json:"join_timeout"`
	GuessTimeout int                 `json:"guess_timeout"`
	RoundCount   int                 `json:"round_count"`
	MinPlayers   int                 `json:"min_players"`
	Default      bool                `json:"default"`
}

// ConfigFailedPayloadV1 reports a rejected retrieve, update or reset.
type ConfigFailedPayloadV1 struct {
	GuildID sharedtypes.GuildID `json:"guild_id"`
	Reason  string              `json:"reason"`
}
