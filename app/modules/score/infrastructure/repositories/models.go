package scoredb

import (
	"time"

	"github.com/uptrace/bun"
)

// PlayerStats is the persisted ledger row for one player in one guild.
type PlayerStats struct {
	bun.BaseModel `bun:"table:trivia_player_stats,alias:tps"`

	GuildID    string    `bun:"guild_id,pk,type:varchar(20)"`
	PlayerID   string    `bun:"player_id,pk,type:varchar(20)"`
	TotalScore int64     `bun:"total_score,notnull,default:0"`
	HighScore  int64     `bun:"high_score,notnull,default:0"`
	WinStreak  int       `bun:"win_streak,notnull,default:0"`
	UpdatedAt  time.Time `bun:"updated_at,nullzero,notnull,default:current_timestamp"`
}

// StatColumn names a leaderboard-able column of PlayerStats.
type StatColumn string

const (
	ColumnTotalScore StatColumn = "total_score"
	ColumnHighScore  StatColumn = "high_score"
	ColumnWinStreak  StatColumn = "win_streak"
)

func (c StatColumn) valid() bool {
	switch c {
	case ColumnTotalScore, ColumnHighScore, ColumnWinStreak:
		return true
	default:
		return false
	}
}
