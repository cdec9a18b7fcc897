package scoredb

import (
	"context"

	"github.com/uptrace/bun"
)

//go:generate mockgen -source=interface.go -destination=mocks/mock_repository.go -package=mocks

// Repository persists lifetime totals, personal bests and win streaks.
// Every method accepts an optional bun.IDB; nil uses the repository's own
// connection so callers can pass a transaction.
type Repository interface {
	// AcquireGuildLock takes a pg_advisory_xact_lock for the guild.
	// Must be called within a transaction.
	AcquireGuildLock(ctx context.Context, db bun.IDB, guildID string) error

	// GetStats returns the stored rows for the given players. Players without
	// a row are simply absent from the result.
	GetStats(ctx context.Context, db bun.IDB, guildID string, playerIDs []string) ([]PlayerStats, error)

	// UpsertStats writes the rows, replacing existing counters.
	UpsertStats(ctx context.Context, db bun.IDB, stats []PlayerStats) error

	// ListTop returns up to limit rows ordered by column DESC, player_id ASC.
	ListTop(ctx context.Context, db bun.IDB, guildID string, column StatColumn, limit int) ([]PlayerStats, error)
}
