package scoredomain

import "github.com/Black-And-White-Club/trivia-bot/internal/sharedtypes"

// PlayerStats are the persisted per-guild counters for one player.
type PlayerStats struct {
	Player     sharedtypes.PlayerID
	TotalScore int64
	HighScore  int64
	WinStreak  int
}

// ApplySession folds one finished session into the existing stats. Every
// player in points is updated, zero scorers included: totals grow, high
// scores rise to the session total, the winner's streak grows and everyone
// else's resets. Ties, an all-zero session included, go to the first player
// in points. The result follows the order of points.
func ApplySession(existing map[sharedtypes.PlayerID]PlayerStats, points []PlayerPoints) []PlayerStats {
	winner, hasWinner := Winner(points)

	out := make([]PlayerStats, 0, len(points))
	for _, pp := range points {
		st, ok := existing[pp.Player]
		if !ok {
			st = PlayerStats{Player: pp.Player}
		}
		st.TotalScore += int64(pp.Points)
		if int64(pp.Points) > st.HighScore {
			st.HighScore = int64(pp.Points)
		}
		if hasWinner && pp.Player == winner {
			st.WinStreak++
		} else {
			st.WinStreak = 0
		}
		out = append(out, st)
	}
	return out
}
