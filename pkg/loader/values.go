package loader

import (
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/vango-dev/htmldoom/internal/errors"
	"github.com/vango-dev/htmldoom/pkg/element"
)

// RenderFunc loads the file at name as an element.
type RenderFunc func(l *Loader, name string) (element.Element, error)

// DefaultRenderers returns the renderers for txt, html, css, js, yml and
// yaml files.
func DefaultRenderers() map[string]RenderFunc {
	text := func(l *Loader, name string) (element.Element, error) {
		return LoadText(l.FS, name, l.Static)
	}
	raw := func(l *Loader, name string) (element.Element, error) {
		return LoadRaw(l.FS, name, l.Static)
	}
	yml := func(l *Loader, name string) (element.Element, error) {
		return l.LoadYAML(name, "")
	}
	return map[string]RenderFunc{
		"txt":  text,
		"html": raw,
		"css":  raw,
		"js":   raw,
		"yml":  yml,
		"yaml": yml,
	}
}

// Values is a tree of rendered values. Leaves are element.RawText and
// subdirectories are nested Values.
type Values map[string]any

// Get returns the value at a dot-separated path such as "pages.index".
func (v Values) Get(dotted string) (any, bool) {
	var cur any = v
	for _, key := range strings.Split(dotted, ".") {
		m, ok := cur.(Values)
		if !ok {
			return nil, false
		}
		if cur, ok = m[key]; !ok {
			return nil, false
		}
	}
	return cur, true
}

// Paths returns the dot-separated paths of every leaf in sorted order.
func (v Values) Paths() []string {
	var out []string
	var walk func(prefix string, m Values)
	walk = func(prefix string, m Values) {
		for k, val := range m {
			p := k
			if prefix != "" {
				p = prefix + "." + k
			}
			if sub, ok := val.(Values); ok {
				walk(p, sub)
				continue
			}
			out = append(out, p)
		}
	}
	walk("", v)
	sort.Strings(out)
	return out
}

// LoadValues renders every file under dir with the extension renderers.
// A nil renderers map uses DefaultRenderers.
func LoadValues(fsys fs.FS, dir string, renderers map[string]RenderFunc) (Values, error) {
	l := New(fsys)
	l.Renderers = renderers
	return l.LoadValues(dir)
}

// LoadValues renders every file under dir into a Values tree.
func (l *Loader) LoadValues(dir string) (Values, error) {
	renderers := l.Renderers
	if renderers == nil {
		renderers = DefaultRenderers()
	}

	entries, err := fs.ReadDir(l.FS, dir)
	if err != nil {
		return nil, errors.New("E045").WithDetail(dir).Wrap(err)
	}

	values := make(Values, len(entries))
	for _, entry := range entries {
		name := path.Join(dir, entry.Name())

		var (
			key   string
			value any
		)
		if entry.IsDir() {
			key = entry.Name()
			if value, err = l.LoadValues(name); err != nil {
				return nil, err
			}
		} else {
			stem, ext, ok := splitName(entry.Name())
			if !ok {
				return nil, errors.New("E040").
					WithDetail(name).
					WithSuggestion("Rename the file to <name>.<extension>")
			}
			render, ok := renderers[ext]
			if !ok {
				return nil, errors.New("E041").WithDetailf("%s: no renderer for %q", name, ext)
			}
			key = stem

			el, err := render(l, name)
			if err != nil {
				return nil, err
			}
			html, err := l.renderer().Render(el)
			if err != nil {
				return nil, err
			}
			value = element.RawText(html)
			l.logger().Debug("value loaded", "path", name, "bytes", len(html))
		}

		if _, dup := values[key]; dup {
			return nil, errors.New("E042").WithDetailf("%s: duplicate name %q", name, key)
		}
		values[key] = value
	}
	return values, nil
}

// splitName splits a file name with exactly one dot into stem and extension.
func splitName(name string) (stem, ext string, ok bool) {
	if strings.Count(name, ".") != 1 {
		return "", "", false
	}
	i := strings.IndexByte(name, '.')
	return name[:i], name[i+1:], true
}
