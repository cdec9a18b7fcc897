package scoreservice

import (
	"context"
	"fmt"
	"log/slog"

	scoredomain "github.com/Black-And-White-Club/trivia-bot/app/modules/score/domain"
	scoredb "github.com/Black-And-White-Club/trivia-bot/app/modules/score/infrastructure/repositories"
	"github.com/Black-And-White-Club/trivia-bot/internal/results"
	"github.com/Black-And-White-Club/trivia-bot/internal/sharedtypes"
	"github.com/uptrace/bun"
)

// FinalizeSession persists the points recorded for sessionID. The session is
// forgotten whether or not persistence succeeds.
func (s *ScoreService) FinalizeSession(ctx context.Context, guildID sharedtypes.GuildID, sessionID sharedtypes.SessionID) (FinalizeOperationResult, error) {
	sp, ok := s.takeSession(sessionID)
	if !ok {
		return results.FailureResult[FinalizeResult](Failure{
			GuildID: guildID,
			Reason:  ErrUnknownSession.Error(),
		}), nil
	}
	return s.FinalizePoints(ctx, guildID, sp.Snapshot())
}

// FinalizePoints adds every player's session total to their lifetime total,
// raises personal bests and updates win streaks. Finalizes for one guild are
// serialized in-process and by a Postgres advisory lock; different guilds run
// in parallel.
func (s *ScoreService) FinalizePoints(ctx context.Context, guildID sharedtypes.GuildID, points []scoredomain.PlayerPoints) (FinalizeOperationResult, error) {
	return withTelemetry(s, ctx, "FinalizeSession", guildID, func(ctx context.Context) (FinalizeOperationResult, error) {
		if guildID == "" {
			return results.FailureResult[FinalizeResult](Failure{Reason: ErrInvalidGuildID.Error()}), nil
		}
		points = mergePoints(points)
		if len(points) == 0 {
			return results.SuccessResult[FinalizeResult, Failure](FinalizeResult{GuildID: guildID}), nil
		}

		unlock := s.locks.lock(guildID)
		defer unlock()

		return runInTx(s, ctx, func(ctx context.Context, db bun.IDB) (FinalizeOperationResult, error) {
			if err := s.repo.AcquireGuildLock(ctx, db, string(guildID)); err != nil {
				return FinalizeOperationResult{}, err
			}

			ids := make([]string, len(points))
			for i, pp := range points {
				ids[i] = string(pp.Player)
			}
			rows, err := s.repo.GetStats(ctx, db, string(guildID), ids)
			if err != nil {
				return FinalizeOperationResult{}, err
			}

			existing := make(map[sharedtypes.PlayerID]scoredomain.PlayerStats, len(rows))
			for _, row := range rows {
				existing[sharedtypes.PlayerID(row.PlayerID)] = toDomain(row)
			}

			updated := scoredomain.ApplySession(existing, points)
			out := make([]scoredb.PlayerStats, len(updated))
			for i, st := range updated {
				out[i] = toRow(guildID, st)
			}
			if err := s.repo.UpsertStats(ctx, db, out); err != nil {
				return FinalizeOperationResult{}, fmt.Errorf("failed to persist player stats: %w", err)
			}

			s.metrics.RecordPlayersFinalized(ctx, len(out))
			winner, _ := scoredomain.Winner(points)
			s.logger.InfoContext(ctx, "Session scores finalized",
				slog.String("guild_id", guildID.String()),
				slog.Int("players", len(out)),
				slog.String("winner", winner.String()),
			)
			return results.SuccessResult[FinalizeResult, Failure](FinalizeResult{
				GuildID: guildID,
				Winner:  winner,
				Stats:   updated,
			}), nil
		})
	})
}

// mergePoints sums duplicate players, keeping the first occurrence's position.
func mergePoints(points []scoredomain.PlayerPoints) []scoredomain.PlayerPoints {
	index := make(map[sharedtypes.PlayerID]int, len(points))
	out := make([]scoredomain.PlayerPoints, 0, len(points))
	for _, pp := range points {
		if pp.Player == "" {
			continue
		}
		if i, ok := index[pp.Player]; ok {
			out[i].Points += pp.Points
			continue
		}
		index[pp.Player] = len(out)
		out = append(out, pp)
	}
	return out
}

func toDomain(row scoredb.PlayerStats) scoredomain.PlayerStats {
	return scoredomain.PlayerStats{
		Player:     sharedtypes.PlayerID(row.PlayerID),
		TotalScore: row.TotalScore,
		HighScore:  row.HighScore,
		WinStreak:  row.WinStreak,
	}
}

func toRow(guildID sharedtypes.GuildID, st scoredomain.PlayerStats) scoredb.PlayerStats {
	return scoredb.PlayerStats{
		GuildID:    string(guildID),
		PlayerID:   string(st.Player),
		TotalScore: st.TotalScore,
		HighScore:  st.HighScore,
		WinStreak:  st.WinStreak,
	}
}
