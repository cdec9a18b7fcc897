package scoreservice

import (
	"context"

	leaderboardservice "github.com/Black-And-White-Club/trivia-bot/app/modules/leaderboard/application"
	scoredomain "github.com/Black-And-White-Club/trivia-bot/app/modules/score/domain"
	"github.com/Black-And-White-Club/trivia-bot/internal/results"
	"github.com/Black-And-White-Club/trivia-bot/internal/sharedtypes"
)

// Service is the score ledger.
type Service interface {
	// OpenSession starts an ephemeral point map seeded with 0 for each player.
	OpenSession(sessionID sharedtypes.SessionID, roster []sharedtypes.PlayerID)
	// RecordRoundPoint adds one point for player and returns the new total.
	RecordRoundPoint(sessionID sharedtypes.SessionID, player sharedtypes.PlayerID) int
	// SessionStandings returns the session's totals in first-seen order.
	SessionStandings(sessionID sharedtypes.SessionID) []scoredomain.PlayerPoints
	// DiscardSession drops a session's points without persisting them.
	DiscardSession(sessionID sharedtypes.SessionID)

	// FinalizeSession persists the session's points and forgets the session.
	FinalizeSession(ctx context.Context, guildID sharedtypes.GuildID, sessionID sharedtypes.SessionID) (FinalizeOperationResult, error)
	// FinalizePoints folds a points map into the guild's persisted stats.
	FinalizePoints(ctx context.Context, guildID sharedtypes.GuildID, points []scoredomain.PlayerPoints) (FinalizeOperationResult, error)

	GetLeaderboard(ctx context.Context, guildID sharedtypes.GuildID, kind leaderboardservice.Kind, limit int) (LeaderboardOperationResult, error)
	GetHighScores(ctx context.Context, guildID sharedtypes.GuildID, limit int) (LeaderboardOperationResult, error)
	GetTotalScores(ctx context.Context, guildID sharedtypes.GuildID, limit int) (LeaderboardOperationResult, error)
	GetWinStreaks(ctx context.Context, guildID sharedtypes.GuildID, limit int) (LeaderboardOperationResult, error)
}

// FinalizeResult summarizes a persisted session.
type FinalizeResult struct {
	GuildID sharedtypes.GuildID
	Winner  sharedtypes.PlayerID
	Stats   []scoredomain.PlayerStats
}

// Leaderboard is one persisted leaderboard for a guild.
type Leaderboard struct {
	GuildID sharedtypes.GuildID         `json:"guild_id"`
	Kind    leaderboardservice.Kind     `json:"kind"`
	Entries []leaderboardservice.Ranked `json:"entries"`
}

// Failure is the business failure payload shared by score operations.
type Failure struct {
	GuildID sharedtypes.GuildID `json:"guild_id"`
	Reason  string              `json:"reason"`
}

type (
	FinalizeOperationResult    = results.OperationResult[FinalizeResult, Failure]
	LeaderboardOperationResult = results.OperationResult[Leaderboard, Failure]
)
