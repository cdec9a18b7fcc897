// Package database opens the Postgres connection pool and exposes the
// per-module migrators.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	guildmigrations "github.com/Black-And-White-Club/trivia-bot/app/modules/guild/infrastructure/repositories/migrations"
	scoremigrations "github.com/Black-And-White-Club/trivia-bot/app/modules/score/infrastructure/repositories/migrations"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"github.com/uptrace/bun/migrate"
)

// Open connects to dsn and pings the server.
func Open(ctx context.Context, dsn string, logger *slog.Logger) (*bun.DB, error) {
	sqldb := sql.OpenDB(pgdriver.NewConnector(
		pgdriver.WithDSN(dsn),
		pgdriver.WithTimeout(10*time.Second),
	))

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := sqldb.PingContext(pingCtx); err != nil {
		_ = sqldb.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.InfoContext(ctx, "Connected to Postgres")
	return bun.NewDB(sqldb, pgdialect.New()), nil
}

// Migrators returns one migrator per module. Each module keeps its own
// migrations table so a rollback never touches another module's group.
func Migrators(db *bun.DB) map[string]*migrate.Migrator {
	return map[string]*migrate.Migrator{
		"score": migrate.NewMigrator(db, scoremigrations.Migrations,
			migrate.WithTableName("bun_migrations_score"),
			migrate.WithLocksTableName("bun_migration_locks_score"),
		),
		"guild": migrate.NewMigrator(db, guildmigrations.Migrations,
			migrate.WithTableName("bun_migrations_guild"),
			migrate.WithLocksTableName("bun_migration_locks_guild"),
		),
	}
}

// MigrateAll initializes and applies every module's migrations in a fixed
// order.
func MigrateAll(ctx context.Context, db *bun.DB, logger *slog.Logger) error {
	migrators := Migrators(db)
	for _, name := range []string{"guild", "score"} {
		m := migrators[name]
		if err := m.Init(ctx); err != nil {
			return fmt.Errorf("init %s migrations: %w", name, err)
		}
		group, err := m.Migrate(ctx)
		if err != nil {
			return fmt.Errorf("migrate %s: %w", name, err)
		}
		if group.IsZero() {
			logger.InfoContext(ctx, "No new migrations", slog.String("module", name))
			continue
		}
		logger.InfoContext(ctx, "Migrated module", slog.String("module", name), slog.String("group", group.String()))
	}
	return nil
}
