package scoreservice

import (
	"sync"

	"github.com/Black-And-White-Club/trivia-bot/internal/sharedtypes"
)

// guildLocks hands out one mutex per guild and forgets it once unused.
type guildLocks struct {
	mu    sync.Mutex
	locks map[sharedtypes.GuildID]*guildLock
}

type guildLock struct {
	mu   sync.Mutex
	refs int
}

func newGuildLocks() *guildLocks {
	return &guildLocks{locks: make(map[sharedtypes.GuildID]*guildLock)}
}

// lock blocks until the guild is free and returns the matching unlock.
func (g *guildLocks) lock(guildID sharedtypes.GuildID) func() {
	g.mu.Lock()
	l, ok := g.locks[guildID]
	if !ok {
		l = &guildLock{}
		g.locks[guildID] = l
	}
	l.refs++
	g.mu.Unlock()

	l.mu.Lock()
	return func() {
		l.mu.Unlock()
		g.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(g.locks, guildID)
		}
		g.mu.Unlock()
	}
}
