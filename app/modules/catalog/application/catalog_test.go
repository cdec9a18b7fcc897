package catalogservice

import (
	"errors"
	"os"
	"path/filepath"
	"sort"
	"testing"

	catalogdomain "github.com/Black-And-White-Club/trivia-bot/app/modules/catalog/domain"
	"github.com/google/go-cmp/cmp"
)

func ids(items ...string) []catalogdomain.ItemID {
	out := make([]catalogdomain.ItemID, len(items))
	for i, s := range items {
		out[i] = catalogdomain.ItemID(s)
	}
	return out
}

func mustLoad(t *testing.T, opts Options) *Catalog {
	t.Helper()
	c, err := Load(testDataset(), opts)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	return c
}

func TestLoad_NormalizesRecipes(t *testing.T) {
	c := mustLoad(t, Options{})

	planks := ids("oak_planks", "spruce_planks", "birch_planks")
	want := []catalogdomain.Recipe{
		{ID: "crafting_table", Result: "crafting_table", Ingredients: []catalogdomain.Ingredient{
			{Alternatives: planks, Count: 4},
		}},
		{ID: "fire_charge", Result: "fire_charge", Ingredients: []catalogdomain.Ingredient{
			{Alternatives: ids("coal"), Count: 2},
			{Alternatives: ids("stick"), Count: 1},
		}},
		{ID: "stick", Result: "stick", Ingredients: []catalogdomain.Ingredient{
			{Alternatives: planks, Count: 2},
		}},
		{ID: "torch", Result: "torch", Ingredients: []catalogdomain.Ingredient{
			{Alternatives: ids("coal", "charcoal"), Count: 1},
			{Alternatives: ids("stick"), Count: 1},
		}},
		{ID: "torch_from_tag", Result: "torch", Ingredients: []catalogdomain.Ingredient{
			{Alternatives: ids("stick"), Count: 1},
			{Alternatives: ids("coal", "charcoal"), Count: 1},
		}},
	}

	if diff := cmp.Diff(want, c.Recipes()); diff != "" {
		t.Errorf("Recipes() mismatch (-want +got):\n%s", diff)
	}
	if c.RecipeCount() != 5 {
		t.Errorf("RecipeCount() = %d, want 5 (smelting skipped)", c.RecipeCount())
	}
	if _, ok := c.Recipe("stone_from_cobblestone"); ok {
		t.Error("unsupported recipe type should be skipped")
	}
	if r, ok := c.Recipe("stick"); !ok || r.Result != "stick" {
		t.Errorf("Recipe(stick) = %+v, %v", r, ok)
	}
}

func TestLoad_ShapelessCollapsesDuplicates(t *testing.T) {
	fsys := testDataset()
	fsys["recipes/aab.json"] = file(`{
		"type": "crafting_shapeless",
		"ingredients": [{"item": "minecraft:coal"}, {"item": "minecraft:coal"}, {"item": "minecraft:stick"}],
		"result": "minecraft:thing"
	}`)
	c, err := Load(fsys, Options{})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	r, _ := c.Recipe("aab")
	want := []catalogdomain.Ingredient{
		{Alternatives: ids("coal"), Count: 2},
		{Alternatives: ids("stick"), Count: 1},
	}
	if diff := cmp.Diff(want, r.Ingredients); diff != "" {
		t.Errorf("ingredients mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_ShapedCountsIndependentOfLayout(t *testing.T) {
	layouts := map[string]string{
		"a": `["XX", " Y"]`,
		"b": `["Y ", "XX"]`,
		"c": `["X ", "YX"]`,
	}
	fsys := testDataset()
	for name, pattern := range layouts {
		fsys["recipes/grid_"+name+".json"] = file(`{
			"type": "minecraft:crafting_shaped",
			"pattern": ` + pattern + `,
			"key": {"X": {"item": "minecraft:coal"}, "Y": {"item": "minecraft:stick"}},
			"result": {"item": "minecraft:grid"}
		}`)
	}
	c, err := Load(fsys, Options{})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	want := map[catalogdomain.ItemID]int{"coal": 2, "stick": 1}
	for name := range layouts {
		r, ok := c.Recipe(catalogdomain.RecipeID("grid_" + name))
		if !ok {
			t.Fatalf("grid_%s not loaded", name)
		}
		got := make(map[catalogdomain.ItemID]int)
		for _, ing := range r.Ingredients {
			got[ing.Alternatives[0]] = ing.Count
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("grid_%s counts mismatch (-want +got):\n%s", name, diff)
		}
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(fsys map[string]string)
		wantErr error
	}{
		{
			name: "unknown item",
			mutate: func(f map[string]string) {
				f["recipes/bad.json"] = `{"type":"crafting_shapeless","ingredients":[{"item":"minecraft:unobtainium"}],"result":{"item":"minecraft:x"}}`
			},
			wantErr: catalogdomain.ErrDataset,
		},
		{
			name: "unknown tag in recipe",
			mutate: func(f map[string]string) {
				f["recipes/bad.json"] = `{"type":"crafting_shapeless","ingredients":[{"tag":"minecraft:logs"}],"result":{"item":"minecraft:x"}}`
			},
			wantErr: catalogdomain.ErrDataset,
		},
		{
			name: "unknown tag inside tag",
			mutate: func(f map[string]string) {
				f["tags/items/broken.json"] = `{"values":["#minecraft:nowhere"]}`
			},
			wantErr: catalogdomain.ErrDataset,
		},
		{
			name: "missing result",
			mutate: func(f map[string]string) {
				f["recipes/bad.json"] = `{"type":"crafting_shapeless","ingredients":[{"item":"minecraft:coal"}]}`
			},
			wantErr: catalogdomain.ErrDataset,
		},
		{
			name: "no ingredients",
			mutate: func(f map[string]string) {
				f["recipes/bad.json"] = `{"type":"crafting_shapeless","ingredients":[],"result":"minecraft:x"}`
			},
			wantErr: catalogdomain.ErrDataset,
		},
		{
			name: "pattern symbol missing from key",
			mutate: func(f map[string]string) {
				f["recipes/bad.json"] = `{"type":"crafting_shaped","pattern":["#Z"],"key":{"#":{"item":"minecraft:coal"}},"result":"minecraft:x"}`
			},
			wantErr: catalogdomain.ErrDataset,
		},
		{
			name: "invalid ingredient spec",
			mutate: func(f map[string]string) {
				f["recipes/bad.json"] = `{"type":"crafting_shapeless","ingredients":[{"count":2}],"result":"minecraft:x"}`
			},
			wantErr: catalogdomain.ErrDataset,
		},
		{
			name: "invalid json",
			mutate: func(f map[string]string) {
				f["recipes/bad.json"] = `{"type":`
			},
			wantErr: catalogdomain.ErrDataset,
		},
		{
			name: "tag cycle",
			mutate: func(f map[string]string) {
				f["tags/items/a.json"] = `{"values":["#minecraft:b"]}`
				f["tags/items/b.json"] = `{"values":["minecraft:coal","#minecraft:a"]}`
			},
			wantErr: catalogdomain.ErrTagCycle,
		},
		{
			name: "self referencing tag",
			mutate: func(f map[string]string) {
				f["tags/blocks/loop.json"] = `{"values":["#loop"]}`
			},
			wantErr: catalogdomain.ErrTagCycle,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := testDataset()
			extra := map[string]string{}
			tt.mutate(extra)
			for k, v := range extra {
				fsys[k] = file(v)
			}

			c, err := Load(fsys, Options{})
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Load() error = %v, want %v", err, tt.wantErr)
			}
			if c != nil {
				t.Error("Load() must not return a partial catalog")
			}
		})
	}
}

func TestLoad_MissingLang(t *testing.T) {
	fsys := testDataset()
	delete(fsys, "lang.json")
	_, err := Load(fsys, Options{})
	var dsErr *catalogdomain.DatasetError
	if !errors.As(err, &dsErr) || dsErr.Path != LangFile {
		t.Fatalf("Load() error = %v, want DatasetError for %s", err, LangFile)
	}
}

func TestLoadDir(t *testing.T) {
	root := t.TempDir()
	for name, f := range testDataset() {
		p := filepath.Join(root, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(p, f.Data, 0o600); err != nil {
			t.Fatal(err)
		}
	}

	c, err := LoadDir(root, Options{})
	if err != nil {
		t.Fatalf("LoadDir() error = %v", err)
	}
	if c.RecipeCount() != 5 {
		t.Errorf("RecipeCount() = %d, want 5", c.RecipeCount())
	}

	if _, err := LoadDir(filepath.Join(root, "missing"), Options{}); !errors.Is(err, catalogdomain.ErrDataset) {
		t.Errorf("LoadDir(missing) error = %v, want ErrDataset", err)
	}
}

func TestDisplayNames(t *testing.T) {
	c := mustLoad(t, Options{})

	tests := []struct {
		id        catalogdomain.ItemID
		want      []string
		preferred string
	}{
		{"stick", []string{"stick", "Stick"}, "Stick"},
		{"oak_planks", []string{"oak_planks", "Oak Planks"}, "Oak Planks"},
		{"furnace", []string{"furnace", "Furnace", "Furnace Block"}, "Furnace Block"},
		{"fire_charge", []string{"fire_charge"}, "fire_charge"},
	}
	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, c.DisplayNames(tt.id)); diff != "" {
			t.Errorf("DisplayNames(%s) mismatch (-want +got):\n%s", tt.id, diff)
		}
		if got := c.PreferredName(tt.id); got != tt.preferred {
			t.Errorf("PreferredName(%s) = %q, want %q", tt.id, got, tt.preferred)
		}
	}
}

func TestDisplayNames_CustomNamespace(t *testing.T) {
	fsys := testDataset()
	fsys["lang.json"] = file(`{"item.mymod.stick": "Twig", "item.minecraft.stick": "Stick",
		"item.minecraft.coal": "Coal", "item.minecraft.charcoal": "Charcoal"}`)
	c, err := Load(fsys, Options{Namespace: "mymod"})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got := c.PreferredName("stick"); got != "Twig" {
		t.Errorf("PreferredName(stick) = %q, want Twig", got)
	}
}

func TestPickUnusedRecipe(t *testing.T) {
	c := mustLoad(t, Options{IntN: seqIntN(0, 1)})

	r, err := c.PickUnusedRecipe(nil)
	if err != nil || r.ID != "crafting_table" {
		t.Fatalf("PickUnusedRecipe() = %s, %v, want crafting_table", r.ID, err)
	}

	used := map[catalogdomain.RecipeID]struct{}{"crafting_table": {}, "fire_charge": {}, "torch": {}}
	r, err = c.PickUnusedRecipe(used)
	if err != nil || r.ID != "torch_from_tag" {
		t.Fatalf("PickUnusedRecipe() = %s, %v, want torch_from_tag", r.ID, err)
	}

	for _, rec := range c.Recipes() {
		used[rec.ID] = struct{}{}
	}
	if _, err := c.PickUnusedRecipe(used); !errors.Is(err, catalogdomain.ErrExhausted) {
		t.Fatalf("PickUnusedRecipe() error = %v, want ErrExhausted", err)
	}
}

func TestPickUnusedRecipe_CoversEveryRecipe(t *testing.T) {
	c := mustLoad(t, Options{})
	used := map[catalogdomain.RecipeID]struct{}{}
	for i := 0; i < c.RecipeCount(); i++ {
		r, err := c.PickUnusedRecipe(used)
		if err != nil {
			t.Fatalf("pick %d: %v", i, err)
		}
		if _, dup := used[r.ID]; dup {
			t.Fatalf("recipe %s picked twice", r.ID)
		}
		used[r.ID] = struct{}{}
	}
	if _, err := c.PickUnusedRecipe(used); !errors.Is(err, catalogdomain.ErrExhausted) {
		t.Fatalf("expected ErrExhausted, got %v", err)
	}
}

func TestTagNames(t *testing.T) {
	c := mustLoad(t, Options{})
	got := c.TagNames()
	want := []string{"birch_like", "coals", "planks"}
	if !sort.StringsAreSorted(got) {
		t.Errorf("TagNames() not sorted: %v", got)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("TagNames() mismatch (-want +got):\n%s", diff)
	}
}
