package catalogservice

import (
	"io"
	"log/slog"
	"math/rand/v2"
	"sort"

	catalogdomain "github.com/Black-And-White-Club/trivia-bot/app/modules/catalog/domain"
)

// DefaultNamespace is used for locale keys when Options.Namespace is empty.
const DefaultNamespace = "minecraft"

// Options configures Load.
type Options struct {
	// Namespace used to build locale keys such as item.<namespace>.<id>.
	Namespace string
	Logger    *slog.Logger
	// IntN returns a uniform integer in [0, n) and must be safe for
	// concurrent use. Defaults to math/rand/v2.IntN.
	IntN func(n int) int
}

// Catalog is the immutable, fully resolved recipe knowledge base. All
// methods are safe for concurrent use.
type Catalog struct {
	recipes   []catalogdomain.Recipe
	byID      map[catalogdomain.RecipeID]int
	tags      map[string][]catalogdomain.ItemID
	lang      map[string]string
	namespace string
	intn      func(n int) int
	logger    *slog.Logger
}

func newCatalog(opts Options) *Catalog {
	c := &Catalog{
		byID:      make(map[catalogdomain.RecipeID]int),
		tags:      make(map[string][]catalogdomain.ItemID),
		lang:      make(map[string]string),
		namespace: opts.Namespace,
		intn:      opts.IntN,
		logger:    opts.Logger,
	}
	if c.namespace == "" {
		c.namespace = DefaultNamespace
	}
	if c.intn == nil {
		c.intn = rand.IntN
	}
	if c.logger == nil {
		c.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return c
}

// Recipes returns every loaded recipe in load order.
func (c *Catalog) Recipes() []catalogdomain.Recipe {
	out := make([]catalogdomain.Recipe, len(c.recipes))
	copy(out, c.recipes)
	return out
}

// Recipe looks up a recipe by its identifier.
func (c *Catalog) Recipe(id catalogdomain.RecipeID) (catalogdomain.Recipe, bool) {
	i, ok := c.byID[id]
	if !ok {
		return catalogdomain.Recipe{}, false
	}
	return c.recipes[i], true
}

// RecipeCount returns the number of loaded recipes.
func (c *Catalog) RecipeCount() int { return len(c.recipes) }

// TagNames returns the resolved tag names in sorted order.
func (c *Catalog) TagNames() []string {
	names := make([]string, 0, len(c.tags))
	for name := range c.tags {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ResolveTag returns the concrete items reachable from a tag, in depth-first
// encounter order without duplicates. The name may carry the '#' prefix and
// a namespace.
func (c *Catalog) ResolveTag(name string) ([]catalogdomain.ItemID, error) {
	key := normalizeTagName(name)
	items, ok := c.tags[key]
	if !ok {
		return nil, ErrUnknownTag
	}
	out := make([]catalogdomain.ItemID, len(items))
	copy(out, items)
	return out, nil
}
