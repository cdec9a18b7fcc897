package triviapresenter

import (
	"sync"
	"time"

	"github.com/Black-And-White-Club/trivia-bot/internal/sharedtypes"
	"golang.org/x/time/rate"
)

const (
	// cleanupThreshold is the minimum map size before a cleanup pass runs.
	cleanupThreshold = 200
	// maxIdleAge is the duration after which an idle channel entry is eligible for cleanup.
	maxIdleAge = 10 * time.Minute
)

type channelEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// channelLimiter hands out one edit limiter per channel and prunes stale
// entries inline.
type channelLimiter struct {
	mu       sync.Mutex
	channels map[sharedtypes.ChannelID]*channelEntry
	r        rate.Limit
	b        int
}

func newChannelLimiter(r rate.Limit, b int) *channelLimiter {
	return &channelLimiter{
		channels: make(map[sharedtypes.ChannelID]*channelEntry),
		r:        r,
		b:        b,
	}
}

func (c *channelLimiter) get(channelID sharedtypes.ChannelID) *rate.Limiter {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.channels) > cleanupThreshold {
		cutoff := time.Now().Add(-maxIdleAge)
		for k, e := range c.channels {
			if e.lastSeen.Before(cutoff) {
				delete(c.channels, k)
			}
		}
	}

	e, ok := c.channels[channelID]
	if !ok {
		e = &channelEntry{limiter: rate.NewLimiter(c.r, c.b)}
		c.channels[channelID] = e
	}
	e.lastSeen = time.Now()
	return e.limiter
}

func (c *channelLimiter) forget(channelID sharedtypes.ChannelID) {
	c.mu.Lock()
	delete(c.channels, channelID)
	c.mu.Unlock()
}
