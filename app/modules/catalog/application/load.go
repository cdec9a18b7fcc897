package catalogservice

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"sort"
	"strings"

	catalogdomain "github.com/Black-And-White-Club/trivia-bot/app/modules/catalog/domain"
	"github.com/tidwall/gjson"
)

// Dataset layout below the root.
const (
	LangFile   = "lang.json"
	RecipesDir = "recipes"
	TagsDir    = "tags"
)

// LoadDir loads a catalog from a dataset directory on disk.
func LoadDir(root string, opts Options) (*Catalog, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, catalogdomain.NewDatasetError(root, "cannot open dataset root: %v", err)
	}
	if !info.IsDir() {
		return nil, catalogdomain.NewDatasetError(root, "dataset root is not a directory")
	}
	return Load(os.DirFS(root), opts)
}

// Load reads the locale table, every tag and every recipe from fsys and
// returns the resolved catalog. Any dangling reference fails the whole load
// with a *DatasetError; a cyclic tag fails it with a *TagCycleError.
// Recipes of unsupported types are skipped.
func Load(fsys fs.FS, opts Options) (*Catalog, error) {
	c := newCatalog(opts)

	if err := c.loadLang(fsys); err != nil {
		return nil, err
	}

	raw, err := readTags(fsys)
	if err != nil {
		return nil, err
	}
	resolver := newTagResolver(raw)
	if err := resolver.resolveAll(); err != nil {
		return nil, err
	}
	c.tags = resolver.memo

	files, err := readRecipeFiles(fsys)
	if err != nil {
		return nil, err
	}

	known := c.knownItems(raw, files)
	b := &recipeBuilder{catalog: c, known: known}
	for _, f := range files {
		recipe, ok, err := b.build(f)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		c.byID[recipe.ID] = len(c.recipes)
		c.recipes = append(c.recipes, recipe)
	}

	c.logger.Info("Recipe catalog loaded",
		slog.Int("recipes", len(c.recipes)),
		slog.Int("tags", len(c.tags)),
		slog.Int("skipped", b.skipped),
	)
	return c, nil
}

func (c *Catalog) loadLang(fsys fs.FS) error {
	data, err := fs.ReadFile(fsys, LangFile)
	if err != nil {
		return catalogdomain.NewDatasetError(LangFile, "cannot read locale table: %v", err)
	}
	if !gjson.ValidBytes(data) {
		return catalogdomain.NewDatasetError(LangFile, "invalid JSON")
	}
	parsed := gjson.ParseBytes(data)
	if !parsed.IsObject() {
		return catalogdomain.NewDatasetError(LangFile, "locale table must be an object")
	}
	parsed.ForEach(func(k, v gjson.Result) bool {
		c.lang[k.String()] = v.String()
		return true
	})
	return nil
}

// knownItems collects every identifier the dataset vouches for: locale
// entries, recipe results and items listed by any tag.
func (c *Catalog) knownItems(raw map[string]*rawTag, files []recipeFile) map[catalogdomain.ItemID]struct{} {
	known := make(map[catalogdomain.ItemID]struct{})
	for key := range c.lang {
		for _, kind := range []string{"item.", "block."} {
			prefix := kind + c.namespace + "."
			if strings.HasPrefix(key, prefix) {
				known[catalogdomain.ItemID(key[len(prefix):])] = struct{}{}
			}
		}
	}
	for _, t := range raw {
		for _, v := range t.values {
			if !v.isTag {
				known[catalogdomain.ItemID(v.name)] = struct{}{}
			}
		}
	}
	for _, f := range files {
		if id, ok := resultItem(f.data); ok {
			known[id] = struct{}{}
		}
	}
	return known
}

type recipeFile struct {
	path string
	id   catalogdomain.RecipeID
	data gjson.Result
}

func readRecipeFiles(fsys fs.FS) ([]recipeFile, error) {
	var files []recipeFile
	err := fs.WalkDir(fsys, RecipesDir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || path.Ext(p) != ".json" {
			return nil
		}
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return err
		}
		if !gjson.ValidBytes(data) {
			return catalogdomain.NewDatasetError(p, "invalid JSON")
		}
		rel := strings.TrimPrefix(p, RecipesDir+"/")
		files = append(files, recipeFile{
			path: p,
			id:   catalogdomain.RecipeID(strings.TrimSuffix(rel, ".json")),
			data: gjson.ParseBytes(data),
		})
		return nil
	})
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		var dsErr *catalogdomain.DatasetError
		if errors.As(err, &dsErr) {
			return nil, err
		}
		return nil, catalogdomain.NewDatasetError(RecipesDir, "cannot read recipes: %v", err)
	}
	sort.Slice(files, func(i, j int) bool { return files[i].id < files[j].id })
	return files, nil
}

func resultItem(data gjson.Result) (catalogdomain.ItemID, bool) {
	res := data.Get("result")
	var raw string
	switch {
	case res.Type == gjson.String:
		raw = res.String()
	case res.IsObject() && res.Get("item").Exists():
		raw = res.Get("item").String()
	case res.IsObject() && res.Get("id").Exists():
		raw = res.Get("id").String()
	}
	if raw == "" {
		return "", false
	}
	return catalogdomain.ItemID(catalogdomain.StripNamespace(raw)), true
}

func normalizeTagName(name string) string {
	return catalogdomain.StripNamespace(strings.TrimPrefix(name, catalogdomain.TagRefPrefix))
}
