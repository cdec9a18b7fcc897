package leaderboardhandlers

import (
	"context"

	leaderboardservice "github.com/Black-And-White-Club/trivia-bot/app/modules/leaderboard/application"
	scoreservice "github.com/Black-And-White-Club/trivia-bot/app/modules/score/application"
	leaderboardevents "github.com/Black-And-White-Club/trivia-bot/internal/events/leaderboard"
	"github.com/Black-And-White-Club/trivia-bot/internal/handlerwrapper"
	"github.com/Black-And-White-Club/trivia-bot/internal/sharedtypes"
)

// Handlers defines the contract for leaderboard event handlers.
type Handlers interface {
	HandleLeaderboardRequested(ctx context.Context, payload *leaderboardevents.LeaderboardRequestedPayloadV1) ([]handlerwrapper.Result, error)
}

// Boards is the part of the score ledger the handlers read from.
type Boards interface {
	GetLeaderboard(ctx context.Context, guildID sharedtypes.GuildID, kind leaderboardservice.Kind, limit int) (scoreservice.LeaderboardOperationResult, error)
}
