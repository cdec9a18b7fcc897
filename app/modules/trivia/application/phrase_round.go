package triviaservice

import (
	"fmt"

	catalogdomain "github.com/Black-And-White-Club/trivia-bot/app/modules/catalog/domain"
	"github.com/Black-And-White-Club/trivia-bot/internal/sharedtypes"
)

// PhraseRound is won by the first player typing the phrase. Comparison is
// case-insensitive.
type PhraseRound struct {
	phrase string
	winner *sharedtypes.Participant
}

func NewPhraseRound(phrase string) *PhraseRound {
	return &PhraseRound{phrase: phrase}
}

func (r *PhraseRound) Prompt() Message { return Message{Title: r.phrase + "?"} }

func (r *PhraseRound) Guess(author sharedtypes.Participant, text string) bool {
	if r.winner != nil || !foldEqual(text, r.phrase) {
		return false
	}
	r.winner = &author
	return true
}

func (r *PhraseRound) Complete() bool { return r.winner != nil }

func (r *PhraseRound) Progress() Message { return r.Summary() }

func (r *PhraseRound) Summary() Message {
	if r.winner == nil {
		return Message{Title: r.phrase + "?", Body: "Nobody won this round"}
	}
	return Message{Title: r.phrase + "?", Body: fmt.Sprintf("%s won this round", r.winner.ID.Mention())}
}

func (r *PhraseRound) Near(string) bool { return false }

// PhraseDeck deals phrases in order, each once per session.
type PhraseDeck struct {
	phrases []string
	next    int
}

// PhraseDecks returns a DeckFactory over phrases.
func PhraseDecks(phrases ...string) DeckFactory {
	return func() Deck { return &PhraseDeck{phrases: phrases} }
}

func (d *PhraseDeck) Next() (RoundContent, error) {
	if d.next >= len(d.phrases) {
		return nil, catalogdomain.ErrExhausted
	}
	p := d.phrases[d.next]
	d.next++
	return NewPhraseRound(p), nil
}

func (d *PhraseDeck) Reset() { d.next = 0 }
