package leaderboardservice

import (
	"fmt"

	"github.com/Black-And-White-Club/trivia-bot/internal/sharedtypes"
)

// DefaultLimit caps leaderboards when the caller does not ask for a size.
const DefaultLimit = 20

// Kind selects one of the persisted leaderboards.
type Kind string

const (
	KindHighScores  Kind = "high"
	KindTotalScores Kind = "total"
	KindWinStreaks  Kind = "streak"
)

// ParseKind validates a leaderboard kind coming from a request.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(s); k {
	case KindHighScores, KindTotalScores, KindWinStreaks:
		return k, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}

// Title is the heading shown above a leaderboard.
func (k Kind) Title() string {
	switch k {
	case KindHighScores:
		return "High Scores"
	case KindTotalScores:
		return "Total Scores"
	case KindWinStreaks:
		return "Win Streaks"
	default:
		return "Leaderboard"
	}
}

// Entry is one player's value before ranking. Label is an optional display
// handle.
type Entry struct {
	Player sharedtypes.PlayerID `json:"player_id"`
	Label  string               `json:"label,omitempty"`
	Points int64                `json:"points"`
}

// Ranked is an entry with its 1-based display rank.
type Ranked struct {
	Rank int `json:"rank"`
	Entry
}

func (r Ranked) name() string {
	if r.Label != "" {
		return r.Label
	}
	return string(r.Player)
}
