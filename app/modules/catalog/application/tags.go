package catalogservice

import (
	"errors"
	"io/fs"
	"path"
	"sort"
	"strings"

	catalogdomain "github.com/Black-And-White-Club/trivia-bot/app/modules/catalog/domain"
	"github.com/tidwall/gjson"
)

type tagValue struct {
	name  string
	isTag bool
}

type rawTag struct {
	path   string
	values []tagValue
}

// readTags merges tag files from every tag kind directory (blocks, items,
// ...) by tag name.
func readTags(fsys fs.FS) (map[string]*rawTag, error) {
	tags := make(map[string]*rawTag)
	err := fs.WalkDir(fsys, TagsDir, func(p string, d fs.DirEntry, err error) error {
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
		values, err := parseTagValues(p, gjson.ParseBytes(data))
		if err != nil {
			return err
		}

		name := tagNameFromPath(p)
		t, ok := tags[name]
		if !ok {
			t = &rawTag{path: p}
			tags[name] = t
		}
		t.values = append(t.values, values...)
		return nil
	})
	if errors.Is(err, fs.ErrNotExist) {
		return tags, nil
	}
	if err != nil {
		var dsErr *catalogdomain.DatasetError
		if errors.As(err, &dsErr) {
			return nil, err
		}
		return nil, catalogdomain.NewDatasetError(TagsDir, "cannot read tags: %v", err)
	}
	return tags, nil
}

// tagNameFromPath maps tags/<kind>/<name>.json to <name>.
func tagNameFromPath(p string) string {
	rel := strings.TrimSuffix(strings.TrimPrefix(p, TagsDir+"/"), ".json")
	if _, name, ok := strings.Cut(rel, "/"); ok {
		return name
	}
	return rel
}

func parseTagValues(p string, data gjson.Result) ([]tagValue, error) {
	values := data.Get("values")
	if !values.IsArray() {
		return nil, catalogdomain.NewDatasetError(p, "tag has no values array")
	}
	var out []tagValue
	var bad error
	values.ForEach(func(_, v gjson.Result) bool {
		ref := v.String()
		if v.IsObject() {
			ref = v.Get("id").String()
		}
		if ref == "" {
			bad = catalogdomain.NewDatasetError(p, "invalid tag value %s", v.Raw)
			return false
		}
		if strings.HasPrefix(ref, catalogdomain.TagRefPrefix) {
			out = append(out, tagValue{name: normalizeTagName(ref), isTag: true})
		} else {
			out = append(out, tagValue{name: catalogdomain.StripNamespace(ref)})
		}
		return true
	})
	if bad != nil {
		return nil, bad
	}
	return out, nil
}

type tagResolver struct {
	raw  map[string]*rawTag
	memo map[string][]catalogdomain.ItemID
}

func newTagResolver(raw map[string]*rawTag) *tagResolver {
	return &tagResolver{raw: raw, memo: make(map[string][]catalogdomain.ItemID, len(raw))}
}

// resolveAll resolves every tag so that cycles and dangling references fail
// the load instead of surfacing during a game.
func (r *tagResolver) resolveAll() error {
	names := make([]string, 0, len(r.raw))
	for name := range r.raw {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if _, err := r.resolve(name); err != nil {
			return err
		}
	}
	return nil
}

type tagFrame struct {
	name string
	tag  *rawTag
	next int
	out  []catalogdomain.ItemID
	seen map[catalogdomain.ItemID]struct{}
}

func (f *tagFrame) add(items ...catalogdomain.ItemID) {
	for _, item := range items {
		if _, dup := f.seen[item]; dup {
			continue
		}
		f.seen[item] = struct{}{}
		f.out = append(f.out, item)
	}
}

func newTagFrame(name string, tag *rawTag) *tagFrame {
	return &tagFrame{name: name, tag: tag, seen: make(map[catalogdomain.ItemID]struct{})}
}

// resolve flattens a tag depth-first using an explicit stack. Tags already on
// the current chain are a cycle; tags resolved earlier come from the memo.
func (r *tagResolver) resolve(name string) ([]catalogdomain.ItemID, error) {
	if items, ok := r.memo[name]; ok {
		return items, nil
	}
	root, ok := r.raw[name]
	if !ok {
		return nil, ErrUnknownTag
	}

	stack := []*tagFrame{newTagFrame(name, root)}
	onChain := map[string]struct{}{name: {}}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		if top.next == len(top.tag.values) {
			r.memo[top.name] = top.out
			delete(onChain, top.name)
			stack = stack[:len(stack)-1]
			if len(stack) > 0 {
				stack[len(stack)-1].add(top.out...)
			}
			continue
		}

		v := top.tag.values[top.next]
		top.next++
		if !v.isTag {
			top.add(catalogdomain.ItemID(v.name))
			continue
		}
		if items, ok := r.memo[v.name]; ok {
			top.add(items...)
			continue
		}
		if _, cyclic := onChain[v.name]; cyclic {
			chain := make([]string, 0, len(stack)+1)
			for _, f := range stack {
				chain = append(chain, f.name)
			}
			return nil, &catalogdomain.TagCycleError{Chain: append(chain, v.name)}
		}
		child, ok := r.raw[v.name]
		if !ok {
			return nil, catalogdomain.NewDatasetError(top.tag.path, "unknown tag %q", v.name)
		}
		onChain[v.name] = struct{}{}
		stack = append(stack, newTagFrame(v.name, child))
	}
	return r.memo[name], nil
}
