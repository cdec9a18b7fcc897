package catalogdomain

import "strings"

// ItemID names a game item or block with its namespace prefix removed.
type ItemID string

// RecipeID is the dataset file name a recipe was loaded from.
type RecipeID string

// TagRefPrefix marks a tag reference inside tag values and ingredient specs.
const TagRefPrefix = "#"

// StripNamespace removes everything up to and including the first ':'.
func StripNamespace(id string) string {
	if i := strings.IndexByte(id, ':'); i >= 0 {
		return id[i+1:]
	}
	return id
}

// Ingredient is one recipe slot. Any alternative satisfies it; Count is
// only shown to players.
type Ingredient struct {
	Alternatives []ItemID
	Count        int
}

// Recipe is a normalized shaped or shapeless crafting recipe.
type Recipe struct {
	ID          RecipeID
	Result      ItemID
	Ingredients []Ingredient
}

// RecipeType identifies the dataset encoding of a recipe.
type RecipeType string

const (
	RecipeTypeShaped    RecipeType = "crafting_shaped"
	RecipeTypeShapeless RecipeType = "crafting_shapeless"
)

// Supported reports whether recipes of this type can be represented.
func (t RecipeType) Supported() bool {
	switch t {
	case RecipeTypeShaped, RecipeTypeShapeless:
		return true
	default:
		return false
	}
}

// Clone returns a copy of the ingredient list that can be mutated freely.
func (r Recipe) Clone() []Ingredient {
	out := make([]Ingredient, len(r.Ingredients))
	copy(out, r.Ingredients)
	return out
}
