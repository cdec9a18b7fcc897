package scoreservice

import (
	"context"

	leaderboardservice "github.com/Black-And-White-Club/trivia-bot/app/modules/leaderboard/application"
	scoredb "github.com/Black-And-White-Club/trivia-bot/app/modules/score/infrastructure/repositories"
	"github.com/Black-And-White-Club/trivia-bot/internal/results"
	"github.com/Black-And-White-Club/trivia-bot/internal/sharedtypes"
)

var kindColumns = map[leaderboardservice.Kind]scoredb.StatColumn{
	leaderboardservice.KindHighScores:  scoredb.ColumnHighScore,
	leaderboardservice.KindTotalScores: scoredb.ColumnTotalScore,
	leaderboardservice.KindWinStreaks:  scoredb.ColumnWinStreak,
}

// GetLeaderboard reads one persisted leaderboard. Rows arrive ordered by
// value DESC then player_id ASC, and ranking keeps that order for ties.
func (s *ScoreService) GetLeaderboard(ctx context.Context, guildID sharedtypes.GuildID, kind leaderboardservice.Kind, limit int) (LeaderboardOperationResult, error) {
	return withTelemetry(s, ctx, "GetLeaderboard", guildID, func(ctx context.Context) (LeaderboardOperationResult, error) {
		if guildID == "" {
			return results.FailureResult[Leaderboard](Failure{Reason: ErrInvalidGuildID.Error()}), nil
		}
		column, ok := kindColumns[kind]
		if !ok {
			return results.FailureResult[Leaderboard](Failure{
				GuildID: guildID,
				Reason:  leaderboardservice.ErrUnknownKind.Error(),
			}), nil
		}
		if limit <= 0 {
			limit = leaderboardservice.DefaultLimit
		}

		rows, err := s.repo.ListTop(ctx, nil, string(guildID), column, limit)
		if err != nil {
			return LeaderboardOperationResult{}, err
		}

		entries := make([]leaderboardservice.Entry, len(rows))
		for i, row := range rows {
			entries[i] = leaderboardservice.Entry{
				Player: sharedtypes.PlayerID(row.PlayerID),
				Points: columnValue(row, column),
			}
		}
		return results.SuccessResult[Leaderboard, Failure](Leaderboard{
			GuildID: guildID,
			Kind:    kind,
			Entries: leaderboardservice.Rank(entries, limit),
		}), nil
	})
}

func (s *ScoreService) GetHighScores(ctx context.Context, guildID sharedtypes.GuildID, limit int) (LeaderboardOperationResult, error) {
	return s.GetLeaderboard(ctx, guildID, leaderboardservice.KindHighScores, limit)
}

func (s *ScoreService) GetTotalScores(ctx context.Context, guildID sharedtypes.GuildID, limit int) (LeaderboardOperationResult, error) {
	return s.GetLeaderboard(ctx, guildID, leaderboardservice.KindTotalScores, limit)
}

func (s *ScoreService) GetWinStreaks(ctx context.Context, guildID sharedtypes.GuildID, limit int) (LeaderboardOperationResult, error) {
	return s.GetLeaderboard(ctx, guildID, leaderboardservice.KindWinStreaks, limit)
}

func columnValue(row scoredb.PlayerStats, column scoredb.StatColumn) int64 {
	switch column {
	case scoredb.ColumnHighScore:
		return row.HighScore
	case scoredb.ColumnWinStreak:
		return int64(row.WinStreak)
	default:
		return row.TotalScore
	}
}
