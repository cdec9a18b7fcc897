package leaderboardhandlers

import (
	"context"

	leaderboardservice "github.com/Black-And-White-Club/trivia-bot/app/modules/leaderboard/application"
	scoreservice "github.com/Black-And-White-Club/trivia-bot/app/modules/score/application"
	"github.com/Black-And-White-Club/trivia-bot/internal/sharedtypes"
)

// FakeBoards provides a programmable stub for the Boards interface.
type FakeBoards struct {
	trace []string

	GetLeaderboardFunc func(ctx context.Context, guildID sharedtypes.GuildID, kind leaderboardservice.Kind, limit int) (scoreservice.LeaderboardOperationResult, error)
}

func (f *FakeBoards) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

func (f *FakeBoards) GetLeaderboard(ctx context.Context, guildID sharedtypes.GuildID, kind leaderboardservice.Kind, limit int) (scoreservice.LeaderboardOperationResult, error) {
	f.trace = append(f.trace, "GetLeaderboard")
	if f.GetLeaderboardFunc != nil {
		return f.GetLeaderboardFunc(ctx, guildID, kind, limit)
	}
	return scoreservice.LeaderboardOperationResult{}, nil
}
