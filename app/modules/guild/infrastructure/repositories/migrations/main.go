package guildmigrations

import (
	"context"
	"fmt"

	guilddb "github.com/Black-And-White-Club/trivia-bot/app/modules/guild/infrastructure/repositories"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/migrate"
)

var Migrations = migrate.NewMigrations()

// Migration for creating the trivia_guild_configs table using Bun model
func CreateGuildConfigsTable(ctx context.Context, db *bun.DB) error {
	fmt.Println("Creating trivia_guild_configs table...")
	_, err := db.NewCreateTable().Model((*guilddb.GuildConfig)(nil)).IfNotExists().Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to create trivia_guild_configs table: %w", err)
	}
	fmt.Println("trivia_guild_configs table created successfully!")
	return nil
}

// Migration for dropping the trivia_guild_configs table
func DropGuildConfigsTable(ctx context.Context, db *bun.DB) error {
	fmt.Println("Dropping trivia_guild_configs table...")
	_, err := db.NewDropTable().Model((*guilddb.GuildConfig)(nil)).IfExists().Cascade().Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to drop trivia_guild_configs table: %w", err)
	}
	fmt.Println("trivia_guild_configs table dropped successfully!")
	return nil
}
