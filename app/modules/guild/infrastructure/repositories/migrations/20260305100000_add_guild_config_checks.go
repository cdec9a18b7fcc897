package guildmigrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Adding positive value checks to trivia_guild_configs...")
		_, err := db.ExecContext(ctx, `
			ALTER TABLE trivia_guild_configs
				ADD CONSTRAINT trivia_guild_configs_positive CHECK (
					join_timeout > 0 AND guess_timeout > 0 AND round_count > 0 AND min_players > 0
				);
		`)
		if err != nil {
			return fmt.Errorf("failed to add checks to trivia_guild_configs: %w", err)
		}
		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Dropping positive value checks from trivia_guild_configs...")
		_, err := db.ExecContext(ctx, `
			ALTER TABLE trivia_guild_configs DROP CONSTRAINT IF EXISTS trivia_guild_configs_positive;
		`)
		return err
	})
}
