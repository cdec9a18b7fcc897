package leaderboardservice

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRank(t *testing.T) {
	tests := []struct {
		name    string
		entries []Entry
		limit   int
		want    []Ranked
	}{
		{
			name:    "ties keep input order",
			entries: []Entry{{Player: "A", Points: 5}, {Player: "B", Points: 9}, {Player: "C", Points: 9}},
			want: []Ranked{
				{Rank: 1, Entry: Entry{Player: "B", Points: 9}},
				{Rank: 2, Entry: Entry{Player: "C", Points: 9}},
				{Rank: 3, Entry: Entry{Player: "A", Points: 5}},
			},
		},
		{
			name:    "limit truncates before ranking",
			entries: []Entry{{Player: "A", Points: 1}, {Player: "B", Points: 3}, {Player: "C", Points: 2}},
			limit:   2,
			want: []Ranked{
				{Rank: 1, Entry: Entry{Player: "B", Points: 3}},
				{Rank: 2, Entry: Entry{Player: "C", Points: 2}},
			},
		},
		{
			name:    "empty",
			entries: nil,
			want:    []Ranked{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Rank(tt.entries, tt.limit))
		})
	}
}

func TestRank_DefaultLimit(t *testing.T) {
	entries := make([]Entry, 30)
	for i := range entries {
		entries[i] = Entry{Player: "p", Points: int64(i)}
	}
	got := Rank(entries, 0)
	require.Len(t, got, DefaultLimit)
	assert.Equal(t, int64(29), got[0].Points)
	assert.Equal(t, DefaultLimit, got[len(got)-1].Rank)
}

func TestRank_DoesNotMutateInput(t *testing.T) {
	entries := []Entry{{Player: "A", Points: 1}, {Player: "B", Points: 2}}
	Rank(entries, 0)
	assert.Equal(t, "A", string(entries[0].Player))
}

func TestFormatText(t *testing.T) {
	ranked := Rank([]Entry{{Player: "1", Points: 2}, {Player: "2", Points: 7}}, 0)
	assert.Equal(t, "**1.** <@2> - 7\n**2.** <@1> - 2", FormatText(ranked))
	assert.Equal(t, "", FormatText(nil))
}

func TestParseKind(t *testing.T) {
	for _, k := range []Kind{KindHighScores, KindTotalScores, KindWinStreaks} {
		got, err := ParseKind(string(k))
		require.NoError(t, err)
		assert.Equal(t, k, got)
		assert.NotEqual(t, "Leaderboard", got.Title())
	}

	_, err := ParseKind("weekly")
	assert.True(t, errors.Is(err, ErrUnknownKind))
}
