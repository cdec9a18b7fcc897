package leaderboardhandlers

import (
	"context"
	"errors"
	"log/slog"

	leaderboardservice "github.com/Black-And-White-Club/trivia-bot/app/modules/leaderboard/application"
	leaderboardevents "github.com/Black-And-White-Club/trivia-bot/internal/events/leaderboard"
	"github.com/Black-And-White-Club/trivia-bot/internal/handlerwrapper"
)

// HandleLeaderboardRequested answers a leaderboard request with the ranked
// rows and their chat rendering.
func (h *LeaderboardHandlers) HandleLeaderboardRequested(
	ctx context.Context,
	payload *leaderboardevents.LeaderboardRequestedPayloadV1,
) ([]handlerwrapper.Result, error) {
	if payload == nil {
		return nil, errors.New("payload cannot be nil")
	}

	failed := func(reason string) []handlerwrapper.Result {
		return []handlerwrapper.Result{{
			Topic: leaderboardevents.LeaderboardRequestFailedV1,
			Payload: leaderboardevents.LeaderboardRequestFailedPayloadV1{
				GuildID: payload.GuildID,
				Kind:    payload.Kind,
				Reason:  reason,
			},
		}}
	}

	kind, err := leaderboardservice.ParseKind(payload.Kind)
	if err != nil {
		h.logger.WarnContext(ctx, "Rejected leaderboard request",
			slog.String("guild_id", string(payload.GuildID)),
			slog.String("kind", payload.Kind),
		)
		return failed(err.Error()), nil
	}

	result, err := h.boards.GetLeaderboard(ctx, payload.GuildID, kind, payload.Limit)
	if err != nil {
		return nil, err
	}
	if result.Failure != nil {
		return failed(result.Failure.Reason), nil
	}

	board := result.Success
	entries := make([]leaderboardevents.LeaderboardEntryV1, len(board.Entries))
	for i, e := range board.Entries {
		entries[i] = leaderboardevents.LeaderboardEntryV1{
			Rank:     e.Rank,
			PlayerID: e.Player,
			Points:   e.Points,
		}
	}

	return []handlerwrapper.Result{{
		Topic: leaderboardevents.LeaderboardRetrievedV1,
		Payload: leaderboardevents.LeaderboardRetrievedPayloadV1{
			GuildID: board.GuildID,
			Kind:    string(board.Kind),
			Title:   board.Kind.Title(),
			Entries: entries,
			Text:    leaderboardservice.FormatText(board.Entries),
		},
	}}, nil
}
