package triviaservice

import (
	"errors"
	"testing"

	catalogdomain "github.com/Black-And-White-Club/trivia-bot/app/modules/catalog/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func torchSource() *fakeRecipes {
	return &fakeRecipes{
		recipes: []catalogdomain.Recipe{{
			ID:     "torch",
			Result: "torch",
			Ingredients: []catalogdomain.Ingredient{
				ing(1, "coal", "charcoal"),
				ing(1, "stick"),
			},
		}},
		locale: map[catalogdomain.ItemID]string{
			"coal": "Coal", "charcoal": "Charcoal", "stick": "Stick", "torch": "Torch",
		},
	}
}

func TestNormalize(t *testing.T) {
	tests := map[string]string{
		"Crafting Table": "craftingtable",
		"  S T I C K ":   "stick",
		"oak\tplanks\n":  "oakplanks",
		"STRASSE":        "strasse",
		"":               "",
	}
	for in, want := range tests {
		assert.Equal(t, want, normalize(in), "normalize(%q)", in)
	}
}

func TestIngredientRound_Guess(t *testing.T) {
	src := torchSource()
	round := NewIngredientRound(src.recipes[0], src)

	assert.Equal(t, Message{Title: "RECIPE REQUIRED: Torch", Body: "Items found so far:"}, round.Prompt())

	assert.False(t, round.Guess(bob, "xd"))
	assert.True(t, round.Guess(bob, "S tick"))
	assert.False(t, round.Guess(alice, "stick"), "a found ingredient cannot be awarded twice")
	assert.False(t, round.Complete())
	assert.Equal(t, []catalogdomain.Ingredient{ing(1, "coal", "charcoal")}, round.Remaining())

	assert.True(t, round.Guess(alice, "CHARCOAL"))
	assert.True(t, round.Complete())
	assert.Equal(t,
		"Items found so far:\nStick (1) found by <@100>\nCharcoal (1) found by <@200>",
		round.Progress().Body)
}

func TestIngredientRound_FirstMatchWins(t *testing.T) {
	src := &fakeRecipes{
		locale: map[catalogdomain.ItemID]string{"oak_planks": "Oak Planks", "birch_planks": "Birch Planks"},
	}
	recipe := catalogdomain.Recipe{
		ID:     "boat",
		Result: "boat",
		Ingredients: []catalogdomain.Ingredient{
			ing(3, "oak_planks"),
			ing(2, "birch_planks", "oak_planks"),
		},
	}
	round := NewIngredientRound(recipe, src)

	require.True(t, round.Guess(bob, "oak planks"))
	assert.Equal(t, []catalogdomain.Ingredient{ing(2, "birch_planks", "oak_planks")}, round.Remaining(),
		"only the first matching ingredient is satisfied")

	require.True(t, round.Guess(alice, "Oak Planks"))
	assert.True(t, round.Complete())
	assert.Equal(t,
		"Items found so far:\nOak Planks (3) found by <@100>\nOak Planks (2) found by <@200>",
		round.Progress().Body)
}

func TestIngredientRound_Summary(t *testing.T) {
	src := torchSource()
	round := NewIngredientRound(src.recipes[0], src)
	require.True(t, round.Guess(bob, "stick"))

	assert.Equal(t, Message{
		Title: "RECIPE REQUIRED: Torch",
		Body:  "Items found so far:\nStick (1) found by <@100>\nCoal (1) - Not Found\n\nDone",
	}, round.Summary())
}

func TestIngredientRound_DoesNotMutateRecipe(t *testing.T) {
	src := torchSource()
	recipe := src.recipes[0]
	round := NewIngredientRound(recipe, src)
	round.Guess(bob, "coal")
	round.Guess(bob, "stick")

	assert.Len(t, recipe.Ingredients, 2)
	assert.Equal(t, catalogdomain.ItemID("coal"), recipe.Ingredients[0].Alternatives[0])
}

func TestIngredientRound_Near(t *testing.T) {
	src := torchSource()
	round := NewIngredientRound(src.recipes[0], src)

	assert.True(t, round.Near("stik"))
	assert.True(t, round.Near("charcaol"))
	assert.False(t, round.Near("xd"), "short answers never count as close")
	assert.False(t, round.Near("diamond"))

	require.True(t, round.Guess(bob, "stick"))
	assert.False(t, round.Near("stik"), "found ingredients are not hinted")
}

func TestIngredientDeck(t *testing.T) {
	src := torchSource()
	src.recipes = append(src.recipes, stickRecipes().recipes...)
	deck := NewIngredientDeck(src)

	first, err := deck.Next()
	require.NoError(t, err)
	second, err := deck.Next()
	require.NoError(t, err)
	assert.NotEqual(t,
		first.(*IngredientRound).Recipe().ID,
		second.(*IngredientRound).Recipe().ID)

	_, err = deck.Next()
	assert.True(t, errors.Is(err, catalogdomain.ErrExhausted))

	deck.Reset()
	_, err = deck.Next()
	assert.NoError(t, err)
}

func TestPhraseRound(t *testing.T) {
	round := NewPhraseRound("xd")
	assert.Equal(t, "xd?", round.Prompt().Title)

	assert.False(t, round.Guess(bob, "x d"))
	assert.True(t, round.Guess(alice, "XD"))
	assert.False(t, round.Guess(bob, "xd"), "only the first correct answer wins")
	assert.True(t, round.Complete())
	assert.Equal(t, "<@200> won this round", round.Summary().Body)

	assert.Equal(t, "Nobody won this round", NewPhraseRound("xd").Summary().Body)
}

func TestPhraseDeck(t *testing.T) {
	deck := PhraseDecks("xd", "gg")()
	a, err := deck.Next()
	require.NoError(t, err)
	b, err := deck.Next()
	require.NoError(t, err)
	assert.Equal(t, "xd?", a.Prompt().Title)
	assert.Equal(t, "gg?", b.Prompt().Title)

	_, err = deck.Next()
	assert.ErrorIs(t, err, catalogdomain.ErrExhausted)
}
