package leaderboardservice

import (
	"fmt"
	"sort"
	"strings"
)

// Rank orders entries by points descending and keeps the first limit. Ties
// keep their input order, so callers decide the tie-break by how they order
// entries. A non-positive limit means DefaultLimit.
func Rank(entries []Entry, limit int) []Ranked {
	if limit <= 0 {
		limit = DefaultLimit
	}
	sorted := make([]Entry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Points > sorted[j].Points })

	if len(sorted) > limit {
		sorted = sorted[:limit]
	}
	out := make([]Ranked, len(sorted))
	for i, e := range sorted {
		out[i] = Ranked{Rank: i + 1, Entry: e}
	}
	return out
}

// FormatText renders the chat form of a leaderboard, one
// "**rank.** <mention> - points" line per entry.
func FormatText(ranked []Ranked) string {
	var b strings.Builder
	for i, r := range ranked {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "**%d.** %s - %d", r.Rank, r.Player.Mention(), r.Points)
	}
	return b.String()
}
