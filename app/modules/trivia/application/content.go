package triviaservice

import (
	catalogdomain "github.com/Black-And-White-Club/trivia-bot/app/modules/catalog/domain"
	"github.com/Black-And-White-Club/trivia-bot/internal/sharedtypes"
)

// RoundContent decides what a round asks for and how answers score. One
// value serves exactly one round and is only touched by that round's loop.
type RoundContent interface {
	// Prompt is the round message as first posted.
	Prompt() Message
	// Guess applies one answer and reports whether author earned a point.
	Guess(author sharedtypes.Participant, text string) bool
	// Complete reports whether nothing is left to answer.
	Complete() bool
	// Progress is the round message after a successful guess.
	Progress() Message
	// Summary is the final round message.
	Summary() Message
	// Near reports whether a non-matching answer was close to a remaining one.
	Near(text string) bool
}

// Deck hands out round contents for one session without repeats.
type Deck interface {
	// Next returns fresh content or an error wrapping catalogdomain.ErrExhausted.
	Next() (RoundContent, error)
	// Reset forgets what was handed out.
	Reset()
}

// DeckFactory builds the deck of a new session.
type DeckFactory func() Deck

// NameResolver maps items to display names.
type NameResolver interface {
	DisplayNames(id catalogdomain.ItemID) []string
	PreferredName(id catalogdomain.ItemID) string
}

// RecipeSource picks recipes not yet used by a session.
type RecipeSource interface {
	NameResolver
	PickUnusedRecipe(excluding map[catalogdomain.RecipeID]struct{}) (catalogdomain.Recipe, error)
}
