package guilddb

import (
	"time"

	"github.com/uptrace/bun"
)

// GuildConfig holds a guild's overrides of the trivia game settings.
// Timeouts are stored in seconds.
type GuildConfig struct {
	bun.BaseModel `bun:"table:trivia_guild_configs,alias:tgc"`

	GuildID      string    `bun:"guild_id,pk,notnull,type:varchar(20)"`
	JoinTimeout  int       `bun:"join_timeout,notnull"`
	GuessTimeout int       `bun:"guess_timeout,notnull"`
	RoundCount   int       `bun:"round_count,notnull"`
	MinPlayers   int       `bun:"min_players,notnull"`
	CreatedAt    time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp"`
	UpdatedAt    time.Time `bun:"updated_at,nullzero,notnull,default:current_timestamp"`
}
