package triviaservice

import (
	"fmt"
	"slices"
	"strings"

	catalogdomain "github.com/Black-And-White-Club/trivia-bot/app/modules/catalog/domain"
	"github.com/Black-And-White-Club/trivia-bot/internal/sharedtypes"
	"github.com/agnivade/levenshtein"
)

const (
	recipeTitlePrefix = "RECIPE REQUIRED: "
	recipeBodyHeader  = "Items found so far:"
	roundDoneFooter   = "\n\nDone"
)

// slot is one still-needed ingredient with the normalized names of all its
// alternatives, in alternative order.
type slot struct {
	ingredient catalogdomain.Ingredient
	names      []slotName
}

type slotName struct {
	item       catalogdomain.ItemID
	normalized string
}

// IngredientRound asks players to name the ingredients of a recipe. Every
// matched ingredient is worth one point; the round completes when all are
// found.
type IngredientRound struct {
	recipe    catalogdomain.Recipe
	names     NameResolver
	remaining []slot
	body      strings.Builder
}

// NewIngredientRound prepares a round for recipe.
func NewIngredientRound(recipe catalogdomain.Recipe, names NameResolver) *IngredientRound {
	r := &IngredientRound{recipe: recipe, names: names}
	for _, ing := range recipe.Clone() {
		s := slot{ingredient: ing}
		for _, alt := range ing.Alternatives {
			for _, n := range names.DisplayNames(alt) {
				s.names = append(s.names, slotName{item: alt, normalized: normalize(n)})
			}
		}
		r.remaining = append(r.remaining, s)
	}
	r.body.WriteString(recipeBodyHeader)
	return r
}

// Recipe returns the recipe the round is about.
func (r *IngredientRound) Recipe() catalogdomain.Recipe { return r.recipe }

// Remaining returns the ingredients not found yet.
func (r *IngredientRound) Remaining() []catalogdomain.Ingredient {
	out := make([]catalogdomain.Ingredient, len(r.remaining))
	for i, s := range r.remaining {
		out[i] = s.ingredient
	}
	return out
}

func (r *IngredientRound) title() string {
	return recipeTitlePrefix + r.names.PreferredName(r.recipe.Result)
}

func (r *IngredientRound) Prompt() Message {
	return Message{Title: r.title(), Body: recipeBodyHeader}
}

// Guess scans the remaining ingredients in recipe order and removes the first
// one whose alternatives have a display name equal to text. At most one
// ingredient is satisfied per answer.
func (r *IngredientRound) Guess(author sharedtypes.Participant, text string) bool {
	guess := normalize(text)
	if guess == "" {
		return false
	}
	for i, s := range r.remaining {
		for _, n := range s.names {
			if n.normalized != guess {
				continue
			}
			fmt.Fprintf(&r.body, "\n%s (%d) found by %s",
				r.names.PreferredName(n.item), s.ingredient.Count, author.ID.Mention())
			r.remaining = slices.Delete(r.remaining, i, i+1)
			return true
		}
	}
	return false
}

func (r *IngredientRound) Complete() bool { return len(r.remaining) == 0 }

func (r *IngredientRound) Progress() Message {
	return Message{Title: r.title(), Body: r.body.String()}
}

// Summary lists what was found, then every missing ingredient under its first
// alternative's name.
func (r *IngredientRound) Summary() Message {
	var b strings.Builder
	b.WriteString(r.body.String())
	for _, s := range r.remaining {
		fmt.Fprintf(&b, "\n%s (%d) - Not Found",
			r.names.PreferredName(s.ingredient.Alternatives[0]), s.ingredient.Count)
	}
	b.WriteString(roundDoneFooter)
	return Message{Title: r.title(), Body: b.String()}
}

// Near reports a typo-level miss against any remaining name.
func (r *IngredientRound) Near(text string) bool {
	guess := normalize(text)
	if len(guess) < 3 {
		return false
	}
	for _, s := range r.remaining {
		for _, n := range s.names {
			if levenshtein.ComputeDistance(guess, n.normalized) <= nearLimit(len(n.normalized)) {
				return true
			}
		}
	}
	return false
}

// nearLimit scales the accepted edit distance with the answer length.
func nearLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}

// IngredientDeck deals recipes from a catalog without repeating one within a
// session.
type IngredientDeck struct {
	source RecipeSource
	used   map[catalogdomain.RecipeID]struct{}
}

// NewIngredientDeck creates an empty-handed deck over source.
func NewIngredientDeck(source RecipeSource) *IngredientDeck {
	return &IngredientDeck{source: source, used: make(map[catalogdomain.RecipeID]struct{})}
}

// IngredientDecks returns a DeckFactory for source.
func IngredientDecks(source RecipeSource) DeckFactory {
	return func() Deck { return NewIngredientDeck(source) }
}

func (d *IngredientDeck) Next() (RoundContent, error) {
	recipe, err := d.source.PickUnusedRecipe(d.used)
	if err != nil {
		return nil, err
	}
	d.used[recipe.ID] = struct{}{}
	return NewIngredientRound(recipe, d.source), nil
}

func (d *IngredientDeck) Reset() { clear(d.used) }
