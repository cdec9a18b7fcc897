package testutils

import (
	"time"

	scoredomain "github.com/Black-And-White-Club/trivia-bot/app/modules/score/domain"
	"github.com/Black-And-White-Club/trivia-bot/internal/sharedtypes"
	"github.com/brianvoe/gofakeit/v7"
)

// TestDataGenerator provides methods to create test data for integration tests
type TestDataGenerator struct {
	faker *gofakeit.Faker
	seed  int64
}

// NewTestDataGenerator creates a new test data generator with optional seed
func NewTestDataGenerator(seed ...int64) *TestDataGenerator {
	var s int64
	if len(seed) > 0 {
		s = seed[0]
	} else {
		s = time.Now().UnixNano()
	}
	return &TestDataGenerator{faker: gofakeit.New(uint64(s)), seed: s}
}

// Seed reports the seed, for reproducing a failing run.
func (g *TestDataGenerator) Seed() int64 { return g.seed }

// GuildID returns a snowflake-shaped guild id.
func (g *TestDataGenerator) GuildID() sharedtypes.GuildID {
	return sharedtypes.GuildID(g.snowflake())
}

// ChannelID returns a snowflake-shaped channel id.
func (g *TestDataGenerator) ChannelID() sharedtypes.ChannelID {
	return sharedtypes.ChannelID(g.snowflake())
}

// Participant returns a human chat user.
func (g *TestDataGenerator) Participant() sharedtypes.Participant {
	return sharedtypes.Participant{
		ID:     sharedtypes.PlayerID(g.snowflake()),
		Handle: g.faker.Username(),
	}
}

// Players returns n distinct player ids.
func (g *TestDataGenerator) Players(n int) []sharedtypes.PlayerID {
	seen := make(map[sharedtypes.PlayerID]struct{}, n)
	out := make([]sharedtypes.PlayerID, 0, n)
	for len(out) < n {
		id := sharedtypes.PlayerID(g.snowflake())
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// SessionPoints assigns each player a random session total in [0, max].
func (g *TestDataGenerator) SessionPoints(players []sharedtypes.PlayerID, max int) []scoredomain.PlayerPoints {
	out := make([]scoredomain.PlayerPoints, len(players))
	for i, p := range players {
		out[i] = scoredomain.PlayerPoints{Player: p, Points: g.faker.IntRange(0, max)}
	}
	return out
}

func (g *TestDataGenerator) snowflake() string {
	return g.faker.Numerify("1#################")
}
