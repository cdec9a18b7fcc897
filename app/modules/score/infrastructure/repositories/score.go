package scoredb

import (
	"context"
	"fmt"
	"time"

	"github.com/uptrace/bun"
)

// Impl implements Repository on bun/Postgres.
type Impl struct {
	db *bun.DB
}

// NewRepository creates a new score repository.
func NewRepository(db *bun.DB) Repository {
	return &Impl{db: db}
}

func (r *Impl) conn(db bun.IDB) bun.IDB {
	if db == nil {
		return r.db
	}
	return db
}

func (r *Impl) AcquireGuildLock(ctx context.Context, db bun.IDB, guildID string) error {
	// hashtext() gives a stable int4 key for the guild id string
	_, err := r.conn(db).NewRaw("SELECT pg_advisory_xact_lock(hashtext(?))", guildID).Exec(ctx)
	if err != nil {
		return fmt.Errorf("scoredb.AcquireGuildLock: %w", err)
	}
	return nil
}

func (r *Impl) GetStats(ctx context.Context, db bun.IDB, guildID string, playerIDs []string) ([]PlayerStats, error) {
	var stats []PlayerStats
	if len(playerIDs) == 0 {
		return stats, nil
	}
	err := r.conn(db).NewSelect().
		Model(&stats).
		Where("guild_id = ?", guildID).
		Where("player_id IN (?)", bun.In(playerIDs)).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("scoredb.GetStats: %w", err)
	}
	return stats, nil
}

func (r *Impl) UpsertStats(ctx context.Context, db bun.IDB, stats []PlayerStats) error {
	if len(stats) == 0 {
		return nil
	}
	now := time.Now().UTC()
	for i := range stats {
		stats[i].UpdatedAt = now
	}
	_, err := r.conn(db).NewInsert().
		Model(&stats).
		On("CONFLICT (guild_id, player_id) DO UPDATE").
		Set("total_score = EXCLUDED.total_score").
		Set("high_score = EXCLUDED.high_score").
		Set("win_streak = EXCLUDED.win_streak").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("scoredb.UpsertStats: %w", err)
	}
	return nil
}

func (r *Impl) ListTop(ctx context.Context, db bun.IDB, guildID string, column StatColumn, limit int) ([]PlayerStats, error) {
	if !column.valid() {
		return nil, fmt.Errorf("scoredb.ListTop: %w: %q", ErrInvalidColumn, column)
	}
	var stats []PlayerStats
	q := r.conn(db).NewSelect().
		Model(&stats).
		Where("guild_id = ?", guildID).
		OrderExpr("? DESC", bun.Ident(string(column))).
		OrderExpr("player_id ASC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Scan(ctx); err != nil {
		return nil, fmt.Errorf("scoredb.ListTop: %w", err)
	}
	return stats, nil
}
