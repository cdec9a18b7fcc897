package guildservice

import (
	"context"

	guilddb "github.com/Black-And-White-Club/trivia-bot/app/modules/guild/infrastructure/repositories"
	"github.com/uptrace/bun"
)

// ------------------------
// Fake Guild Repo
// ------------------------

// FakeGuildRepository provides a programmable stub for the guilddb.Repository interface.
type FakeGuildRepository struct {
	trace []string
	rows  map[string]guilddb.GuildConfig

	GetConfigFunc  func(ctx context.Context, db bun.IDB, guildID string) (*guilddb.GuildConfig, error)
	SaveConfigFunc func(ctx context.Context, db bun.IDB, config *guilddb.GuildConfig) error
}

// NewFakeGuildRepository initializes a new FakeGuildRepository with an empty trace.
func NewFakeGuildRepository() *FakeGuildRepository {
	return &FakeGuildRepository{
		trace: []string{},
		rows:  make(map[string]guilddb.GuildConfig),
	}
}

// Trace returns the sequence of method calls made to the fake.
func (f *FakeGuildRepository) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

func (f *FakeGuildRepository) record(step string) {
	f.trace = append(f.trace, step)
}

// --- Repository Interface Implementation ---

func (f *FakeGuildRepository) GetConfig(ctx context.Context, db bun.IDB, guildID string) (*guilddb.GuildConfig, error) {
	f.record("GetConfig")
	if f.GetConfigFunc != nil {
		return f.GetConfigFunc(ctx, db, guildID)
	}
	row, ok := f.rows[guildID]
	if !ok {
		return nil, guilddb.ErrNotFound
	}
	return &row, nil
}

func (f *FakeGuildRepository) SaveConfig(ctx context.Context, db bun.IDB, config *guilddb.GuildConfig) error {
	f.record("SaveConfig")
	if f.SaveConfigFunc != nil {
		return f.SaveConfigFunc(ctx, db, config)
	}
	f.rows[config.GuildID] = *config
	return nil
}

func (f *FakeGuildRepository) UpdateConfig(ctx context.Context, db bun.IDB, guildID string, updates *guilddb.UpdateFields) error {
	f.record("UpdateConfig")
	row, ok := f.rows[guildID]
	if !ok {
		return guilddb.ErrNoRowsAffected
	}
	updates.Apply(&row)
	f.rows[guildID] = row
	return nil
}

func (f *FakeGuildRepository) DeleteConfig(ctx context.Context, db bun.IDB, guildID string) error {
	f.record("DeleteConfig")
	delete(f.rows, guildID)
	return nil
}
