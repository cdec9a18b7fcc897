package guildservice

import (
	"time"

	guilddb "github.com/Black-And-White-Club/trivia-bot/app/modules/guild/infrastructure/repositories"
	"github.com/Black-And-White-Club/trivia-bot/config"
	"github.com/Black-And-White-Club/trivia-bot/internal/sharedtypes"
)

// GameSettings are the per-guild knobs of a trivia session.
type GameSettings struct {
	GuildID      sharedtypes.GuildID `json:"guild_id"`
	JoinTimeout  time.Duration       `json:"join_timeout"`
	GuessTimeout time.Duration       `json:"guess_timeout"`
	RoundCount   int                 `json:"round_count"`
	MinPlayers   int                 `json:"min_players"`
	// Default is true when the guild has no stored overrides.
	Default bool `json:"default"`
}

// DefaultsFromConfig turns the trivia section of the service config into the
// settings used for guilds without overrides.
func DefaultsFromConfig(cfg config.TriviaConfig) GameSettings {
	return GameSettings{
		JoinTimeout:  time.Duration(cfg.JoinTimeout) * time.Second,
		GuessTimeout: time.Duration(cfg.GuessTimeout) * time.Second,
		RoundCount:   cfg.RoundCount,
		MinPlayers:   cfg.MinPlayers,
		Default:      true,
	}
}

func fromRow(row *guilddb.GuildConfig) GameSettings {
	return GameSettings{
		GuildID:      sharedtypes.GuildID(row.GuildID),
		JoinTimeout:  time.Duration(row.JoinTimeout) * time.Second,
		GuessTimeout: time.Duration(row.GuessTimeout) * time.Second,
		RoundCount:   row.RoundCount,
		MinPlayers:   row.MinPlayers,
	}
}

func toRow(s GameSettings) *guilddb.GuildConfig {
	return &guilddb.GuildConfig{
		GuildID:      string(s.GuildID),
		JoinTimeout:  int(s.JoinTimeout / time.Second),
		GuessTimeout: int(s.GuessTimeout / time.Second),
		RoundCount:   s.RoundCount,
		MinPlayers:   s.MinPlayers,
	}
}
