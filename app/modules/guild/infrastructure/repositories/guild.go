package guilddb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/uptrace/bun"
)

// Impl implements Repository on bun/Postgres.
type Impl struct {
	db *bun.DB
}

// NewRepository creates a new guild config repository.
func NewRepository(db *bun.DB) Repository {
	return &Impl{db: db}
}

func (r *Impl) conn(db bun.IDB) bun.IDB {
	if db == nil {
		return r.db
	}
	return db
}

func (r *Impl) GetConfig(ctx context.Context, db bun.IDB, guildID string) (*GuildConfig, error) {
	var config GuildConfig
	err := r.conn(db).NewSelect().Model(&config).Where("guild_id = ?", guildID).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("guilddb.GetConfig: %w", err)
	}
	return &config, nil
}

func (r *Impl) SaveConfig(ctx context.Context, db bun.IDB, config *GuildConfig) error {
	config.UpdatedAt = time.Now().UTC()
	_, err := r.conn(db).NewInsert().
		Model(config).
		On("CONFLICT (guild_id) DO UPDATE").
		Set("join_timeout = EXCLUDED.join_timeout").
		Set("guess_timeout = EXCLUDED.guess_timeout").
		Set("round_count = EXCLUDED.round_count").
		Set("min_players = EXCLUDED.min_players").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("guilddb.SaveConfig: %w", err)
	}
	return nil
}

func (r *Impl) UpdateConfig(ctx context.Context, db bun.IDB, guildID string, updates *UpdateFields) error {
	if updates.IsEmpty() {
		return nil
	}
	q := r.conn(db).NewUpdate().
		Model((*GuildConfig)(nil)).
		Where("guild_id = ?", guildID).
		Set("updated_at = ?", time.Now().UTC())
	if updates.JoinTimeout != nil {
		q = q.Set("join_timeout = ?", *updates.JoinTimeout)
	}
	if updates.GuessTimeout != nil {
		q = q.Set("guess_timeout = ?", *updates.GuessTimeout)
	}
	if updates.RoundCount != nil {
		q = q.Set("round_count = ?", *updates.RoundCount)
	}
	if updates.MinPlayers != nil {
		q = q.Set("min_players = ?", *updates.MinPlayers)
	}

	res, err := q.Exec(ctx)
	if err != nil {
		return fmt.Errorf("guilddb.UpdateConfig: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNoRowsAffected
	}
	return nil
}

func (r *Impl) DeleteConfig(ctx context.Context, db bun.IDB, guildID string) error {
	_, err := r.conn(db).NewDelete().
		Model((*GuildConfig)(nil)).
		Where("guild_id = ?", guildID).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("guilddb.DeleteConfig: %w", err)
	}
	return nil
}
