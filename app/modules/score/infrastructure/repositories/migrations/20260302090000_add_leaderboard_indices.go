package scoremigrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Adding leaderboard indices for trivia_player_stats...")

		return db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
			if _, err := tx.ExecContext(ctx, `
				CREATE INDEX IF NOT EXISTS idx_trivia_stats_total ON trivia_player_stats(guild_id, total_score DESC);
				CREATE INDEX IF NOT EXISTS idx_trivia_stats_high ON trivia_player_stats(guild_id, high_score DESC);
				CREATE INDEX IF NOT EXISTS idx_trivia_stats_streak ON trivia_player_stats(guild_id, win_streak DESC);
			`); err != nil {
				return fmt.Errorf("failed to add indices to trivia_player_stats: %w", err)
			}
			return nil
		})
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Rolling back leaderboard indices for trivia_player_stats...")

		return db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
			if _, err := tx.ExecContext(ctx, `
				DROP INDEX IF EXISTS idx_trivia_stats_total;
				DROP INDEX IF EXISTS idx_trivia_stats_high;
				DROP INDEX IF EXISTS idx_trivia_stats_streak;
			`); err != nil {
				return fmt.Errorf("failed to drop indices from trivia_player_stats: %w", err)
			}
			return nil
		})
	})
}
