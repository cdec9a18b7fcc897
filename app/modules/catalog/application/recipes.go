package catalogservice

import (
	"log/slog"
	"strings"

	catalogdomain "github.com/Black-And-White-Club/trivia-bot/app/modules/catalog/domain"
	"github.com/tidwall/gjson"
)

type recipeBuilder struct {
	catalog *Catalog
	known   map[catalogdomain.ItemID]struct{}
	skipped int
	path    string
}

// build normalizes one recipe file. The bool is false for unsupported types.
func (b *recipeBuilder) build(f recipeFile) (catalogdomain.Recipe, bool, error) {
	b.path = f.path

	typ := catalogdomain.RecipeType(catalogdomain.StripNamespace(f.data.Get("type").String()))
	if !typ.Supported() {
		b.skipped++
		b.catalog.logger.Debug("Skipping unsupported recipe",
			slog.String("recipe", string(f.id)),
			slog.String("type", string(typ)),
		)
		return catalogdomain.Recipe{}, false, nil
	}

	result, ok := resultItem(f.data)
	if !ok {
		return catalogdomain.Recipe{}, false, catalogdomain.NewDatasetError(f.path, "recipe has no result item")
	}

	var (
		ingredients []catalogdomain.Ingredient
		err         error
	)
	switch typ {
	case catalogdomain.RecipeTypeShaped:
		ingredients, err = b.shaped(f.data)
	case catalogdomain.RecipeTypeShapeless:
		ingredients, err = b.shapeless(f.data)
	}
	if err != nil {
		return catalogdomain.Recipe{}, false, err
	}
	if len(ingredients) == 0 {
		return catalogdomain.Recipe{}, false, catalogdomain.NewDatasetError(f.path, "recipe has no ingredients")
	}

	return catalogdomain.Recipe{ID: f.id, Result: result, Ingredients: ingredients}, true, nil
}

// shapeless collapses identical ingredient specs into one slot with a count,
// keeping first-encounter order.
func (b *recipeBuilder) shapeless(data gjson.Result) ([]catalogdomain.Ingredient, error) {
	list := data.Get("ingredients")
	if !list.IsArray() {
		return nil, catalogdomain.NewDatasetError(b.path, "shapeless recipe has no ingredients array")
	}

	var (
		out   []catalogdomain.Ingredient
		index = make(map[string]int)
		err   error
	)
	list.ForEach(func(_, spec gjson.Result) bool {
		key := gjson.Get(spec.Raw, "@ugly").Raw
		if i, ok := index[key]; ok {
			out[i].Count++
			return true
		}
		var alts []catalogdomain.ItemID
		alts, err = b.alternatives(spec)
		if err != nil {
			return false
		}
		index[key] = len(out)
		out = append(out, catalogdomain.Ingredient{Alternatives: alts, Count: 1})
		return true
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// shaped counts pattern symbols in row-major first-encounter order. Spaces
// are empty cells.
func (b *recipeBuilder) shaped(data gjson.Result) ([]catalogdomain.Ingredient, error) {
	pattern := data.Get("pattern")
	if !pattern.IsArray() {
		return nil, catalogdomain.NewDatasetError(b.path, "shaped recipe has no pattern")
	}

	// Pattern symbols such as '#' are gjson path syntax, so the key table is
	// copied into a map instead of queried by path.
	keys := make(map[string]gjson.Result)
	data.Get("key").ForEach(func(k, v gjson.Result) bool {
		keys[k.String()] = v
		return true
	})

	var (
		order  []string
		counts = make(map[string]int)
	)
	for _, row := range pattern.Array() {
		for _, cell := range row.String() {
			if cell == ' ' {
				continue
			}
			sym := string(cell)
			if counts[sym] == 0 {
				order = append(order, sym)
			}
			counts[sym]++
		}
	}

	out := make([]catalogdomain.Ingredient, 0, len(order))
	for _, sym := range order {
		spec, ok := keys[sym]
		if !ok {
			return nil, catalogdomain.NewDatasetError(b.path, "pattern symbol %q missing from key", sym)
		}
		alts, err := b.alternatives(spec)
		if err != nil {
			return nil, err
		}
		out = append(out, catalogdomain.Ingredient{Alternatives: alts, Count: counts[sym]})
	}
	return out, nil
}

// alternatives expands one ingredient spec: {"item": ...}, {"tag": ...}, a
// bare "id" or "#tag" string, or an array of any of those.
func (b *recipeBuilder) alternatives(spec gjson.Result) ([]catalogdomain.ItemID, error) {
	var (
		out  []catalogdomain.ItemID
		seen = make(map[catalogdomain.ItemID]struct{})
	)
	add := func(items []catalogdomain.ItemID) {
		for _, item := range items {
			if _, dup := seen[item]; dup {
				continue
			}
			seen[item] = struct{}{}
			out = append(out, item)
		}
	}

	var walk func(s gjson.Result) error
	walk = func(s gjson.Result) error {
		switch {
		case s.IsArray():
			for _, el := range s.Array() {
				if err := walk(el); err != nil {
					return err
				}
			}
			return nil
		case s.IsObject() && s.Get("item").Exists():
			item, err := b.item(s.Get("item").String())
			if err != nil {
				return err
			}
			add([]catalogdomain.ItemID{item})
			return nil
		case s.IsObject() && s.Get("tag").Exists():
			items, err := b.tag(s.Get("tag").String())
			if err != nil {
				return err
			}
			add(items)
			return nil
		case s.Type == gjson.String && strings.HasPrefix(s.String(), catalogdomain.TagRefPrefix):
			items, err := b.tag(s.String())
			if err != nil {
				return err
			}
			add(items)
			return nil
		case s.Type == gjson.String:
			item, err := b.item(s.String())
			if err != nil {
				return err
			}
			add([]catalogdomain.ItemID{item})
			return nil
		default:
			return catalogdomain.NewDatasetError(b.path, "invalid ingredient %s", s.Raw)
		}
	}

	if err := walk(spec); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, catalogdomain.NewDatasetError(b.path, "ingredient %s has no alternatives", spec.Raw)
	}
	return out, nil
}

func (b *recipeBuilder) item(raw string) (catalogdomain.ItemID, error) {
	id := catalogdomain.ItemID(catalogdomain.StripNamespace(raw))
	if _, ok := b.known[id]; !ok {
		return "", catalogdomain.NewDatasetError(b.path, "unknown item %q", raw)
	}
	return id, nil
}

func (b *recipeBuilder) tag(raw string) ([]catalogdomain.ItemID, error) {
	items, ok := b.catalog.tags[normalizeTagName(raw)]
	if !ok {
		return nil, catalogdomain.NewDatasetError(b.path, "unknown tag %q", raw)
	}
	return items, nil
}
