package scoreservice

import (
	"context"
	"sort"
	"sync"

	scoredb "github.com/Black-And-White-Club/trivia-bot/app/modules/score/infrastructure/repositories"
	"github.com/uptrace/bun"
)

// ------------------------
// Fake Score Repo
// ------------------------

// FakeScoreRepository is an in-memory scoredb.Repository that records a call
// trace. Set the XFunc fields to override individual methods.
type FakeScoreRepository struct {
	mu    sync.Mutex
	trace []string
	rows  map[string]map[string]scoredb.PlayerStats

	AcquireGuildLockFunc func(ctx context.Context, db bun.IDB, guildID string) error
	UpsertStatsFunc      func(ctx context.Context, db bun.IDB, stats []scoredb.PlayerStats) error
}

// NewFakeScoreRepository initializes a new FakeScoreRepository with an empty trace.
func NewFakeScoreRepository() *FakeScoreRepository {
	return &FakeScoreRepository{
		trace: []string{},
		rows:  make(map[string]map[string]scoredb.PlayerStats),
	}
}

// Trace returns the sequence of method calls made to the fake.
func (f *FakeScoreRepository) Trace() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

func (f *FakeScoreRepository) record(step string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.trace = append(f.trace, step)
}

// Row returns the stored row for a player.
func (f *FakeScoreRepository) Row(guildID, playerID string) (scoredb.PlayerStats, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	row, ok := f.rows[guildID][playerID]
	return row, ok
}

// --- Repository Interface Implementation ---

func (f *FakeScoreRepository) AcquireGuildLock(ctx context.Context, db bun.IDB, guildID string) error {
	f.record("AcquireGuildLock")
	if f.AcquireGuildLockFunc != nil {
		return f.AcquireGuildLockFunc(ctx, db, guildID)
	}
	return nil
}

func (f *FakeScoreRepository) GetStats(ctx context.Context, db bun.IDB, guildID string, playerIDs []string) ([]scoredb.PlayerStats, error) {
	f.record("GetStats")
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []scoredb.PlayerStats
	for _, id := range playerIDs {
		if row, ok := f.rows[guildID][id]; ok {
			out = append(out, row)
		}
	}
	return out, nil
}

func (f *FakeScoreRepository) UpsertStats(ctx context.Context, db bun.IDB, stats []scoredb.PlayerStats) error {
	f.record("UpsertStats")
	if f.UpsertStatsFunc != nil {
		return f.UpsertStatsFunc(ctx, db, stats)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, row := range stats {
		if f.rows[row.GuildID] == nil {
			f.rows[row.GuildID] = make(map[string]scoredb.PlayerStats)
		}
		f.rows[row.GuildID][row.PlayerID] = row
	}
	return nil
}

func (f *FakeScoreRepository) ListTop(ctx context.Context, db bun.IDB, guildID string, column scoredb.StatColumn, limit int) ([]scoredb.PlayerStats, error) {
	f.record("ListTop")
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []scoredb.PlayerStats
	for _, row := range f.rows[guildID] {
		out = append(out, row)
	}
	sort.Slice(out, func(i, j int) bool {
		vi, vj := columnValue(out[i], column), columnValue(out[j], column)
		if vi != vj {
			return vi > vj
		}
		return out[i].PlayerID < out[j].PlayerID
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
