// Package leaderboardevents defines the persisted leaderboard request topics.
package leaderboardevents

import "github.com/Black-And-White-Club/trivia-bot/internal/sharedtypes"

const (
	LeaderboardRequestedV1     = "trivia.leaderboard.requested.v1"
	LeaderboardRetrievedV1     = "trivia.leaderboard.retrieved.v1"
	LeaderboardRequestFailedV1 = "trivia.leaderboard.request.failed.v1"
)

// LeaderboardRequestedPayloadV1 asks for one of the high, total or streak boards.
type LeaderboardRequestedPayloadV1 struct {
	GuildID sharedtypes.GuildID `json:"guild_id"`
	Kind    string              `json:"kind"`
	Limit   int                 `json:"limit,omitempty"`
}

// LeaderboardEntryV1 is one ranked row.
type LeaderboardEntryV1 struct {
	Rank     int                  `json:"rank"`
	PlayerID sharedtypes.PlayerID `json:"player_id"`
	Points   int64                `json:"points"`
}

// LeaderboardRetrievedPayloadV1 carries the ranked rows and a pre-rendered
// text body ready to post.
type LeaderboardRetrievedPayloadV1 struct {
	GuildID sharedtypes.GuildID  `json:"guild_id"`
	Kind    string               `json:"kind"`
	Title   string               `json:"title"`
	Entries []LeaderboardEntryV1 `json:"entries"`
	Text    string               `json:"text"`
}

// LeaderboardRequestFailedPayloadV1 reports an invalid request.
type LeaderboardRequestFailedPayloadV1 struct {
	GuildID sharedtypes.GuildID `json:"guild_id"`
	Kind    string              `json:"kind"`
	Reason  string              `json:"reason"`
}
