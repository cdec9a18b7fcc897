package scoredomain

import (
	"sync"

	"github.com/Black-And-White-Club/trivia-bot/internal/sharedtypes"
)

// PlayerPoints is one player's point total for a session.
type PlayerPoints struct {
	Player sharedtypes.PlayerID `json:"player_id"`
	Points int                  `json:"points"`
}

// SessionPoints is the ephemeral per-session accumulator. It remembers the
// order players were first seen in, which is the tie-break for the session
// winner and the session leaderboard.
type SessionPoints struct {
	mu     sync.Mutex
	order  []sharedtypes.PlayerID
	points map[sharedtypes.PlayerID]int
}

// NewSessionPoints seeds every rostered player with zero points.
func NewSessionPoints(roster ...sharedtypes.PlayerID) *SessionPoints {
	sp := &SessionPoints{points: make(map[sharedtypes.PlayerID]int)}
	for _, p := range roster {
		sp.touch(p)
	}
	return sp
}

func (sp *SessionPoints) touch(p sharedtypes.PlayerID) {
	if _, ok := sp.points[p]; !ok {
		sp.order = append(sp.order, p)
		sp.points[p] = 0
	}
}

// Add credits n points to player and returns the new total.
func (sp *SessionPoints) Add(p sharedtypes.PlayerID, n int) int {
	sp.mu.Lock()
	defer sp.mu.Unlock()
	sp.touch(p)
	sp.points[p] += n
	return sp.points[p]
}

// Get returns the player's current total.
func (sp *SessionPoints) Get(p sharedtypes.PlayerID) int {
	sp.mu.Lock()
	defer sp.mu.Unlock()
	return sp.points[p]
}

// Snapshot returns the totals in first-seen order.
func (sp *SessionPoints) Snapshot() []PlayerPoints {
	sp.mu.Lock()
	defer sp.mu.Unlock()
	out := make([]PlayerPoints, len(sp.order))
	for i, p := range sp.order {
		out[i] = PlayerPoints{Player: p, Points: sp.points[p]}
	}
	return out
}

// Winner returns the first player holding the highest total, even when that
// total is zero. It reports false only for an empty session.
func Winner(points []PlayerPoints) (sharedtypes.PlayerID, bool) {
	if len(points) == 0 {
		return "", false
	}
	best := points[0]
	for _, pp := range points[1:] {
		if pp.Points > best.Points {
			best = pp
		}
	}
	return best.Player, true
}
