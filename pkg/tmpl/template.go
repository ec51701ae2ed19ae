package tmpl

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/vango-dev/htmldoom/internal/errors"
	"github.com/vango-dev/htmldoom/pkg/element"
	"github.com/vango-dev/htmldoom/pkg/render"
)

// Values maps placeholder names to the values substituted for them.
type Values map[string]any

// Sentinel kinds matched by errors.Is.
var (
	ErrMissingBinding  = errors.ErrMissingBinding
	ErrConflictingName = errors.ErrConflictingName
	ErrTemplateSyntax  = errors.ErrTemplateSyntax
)

// Compiler compiles skeletons. The zero value uses the default renderer.
type Compiler struct {
	// Renderer renders the skeleton and every substituted value.
	Renderer *render.Renderer

	// Static values are substituted once at compile time. Their names are
	// reserved: supplying them again at execution time is an error.
	Static Values

	// Reserved names may not be supplied at execution time.
	Reserved []string
}

// Template is a compiled skeleton. It is immutable and safe for concurrent
// use.
type Template struct {
	source   string
	parts    []part
	names    []string
	reserved map[string]struct{}
	renderer *render.Renderer
}

// Compile renders the skeleton and parses its placeholders.
func (c Compiler) Compile(skeleton ...any) (*Template, error) {
	r := c.Renderer
	if r == nil {
		r = render.Default()
	}

	src, err := r.Render(skeleton...)
	if err != nil {
		return nil, err
	}
	parts, err := scan(src)
	if err != nil {
		return nil, err
	}

	t := &Template{
		source:   src,
		renderer: r,
		reserved: make(map[string]struct{}, len(c.Static)+len(c.Reserved)),
	}
	for _, name := range c.Reserved {
		t.reserved[name] = struct{}{}
	}
	for name := range c.Static {
		t.reserved[name] = struct{}{}
	}

	seen := make(map[string]bool)
	for _, p := range parts {
		if !p.isPlaceholder() {
			t.parts = appendText(t.parts, p.text)
			continue
		}
		if v, ok := c.Static[p.name]; ok {
			s, err := renderValue(r, p.name, v)
			if err != nil {
				return nil, err
			}
			t.parts = appendText(t.parts, s)
			continue
		}
		if _, ok := t.reserved[p.name]; ok {
			return nil, conflictError(p.name, "reserved name used as a placeholder")
		}
		t.parts = append(t.parts, p)
		if !seen[p.name] {
			seen[p.name] = true
			t.names = append(t.names, p.name)
		}
	}
	return t, nil
}

// appendText adds a literal run, merging it with a preceding one.
func appendText(parts []part, text string) []part {
	if text == "" {
		return parts
	}
	if n := len(parts); n > 0 && !parts[n-1].isPlaceholder() {
		parts[n-1].text += text
		return parts
	}
	return append(parts, part{text: text})
}

// Compile compiles a skeleton with the default renderer.
func Compile(skeleton ...any) (*Template, error) {
	return Compiler{}.Compile(skeleton...)
}

// MustCompile is like Compile but panics on error. It simplifies
// initialization of package-level templates.
func MustCompile(skeleton ...any) *Template {
	t, err := Compile(skeleton...)
	if err != nil {
		panic(err)
	}
	return t
}

// Source returns the rendered skeleton, placeholders included.
func (t *Template) Source() string { return t.source }

// Names returns the placeholder names in order of first appearance.
func (t *Template) Names() []string {
	out := make([]string, len(t.names))
	copy(out, t.names)
	return out
}

// Execute renders values and substitutes them into the template. Keys that
// no placeholder references are ignored.
func (t *Template) Execute(values Values) (element.RawText, error) {
	var b strings.Builder
	if err := t.execute(&b, values); err != nil {
		return "", err
	}
	return element.RawText(b.String()), nil
}

// ExecuteTo is like Execute but writes the result to w.
func (t *Template) ExecuteTo(w io.Writer, values Values) error {
	out, err := t.Execute(values)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, string(out))
	return err
}

func (t *Template) execute(b *strings.Builder, values Values) error {
	var conflicts []string
	for name := range values {
		if _, ok := t.reserved[name]; ok {
			conflicts = append(conflicts, name)
		}
	}
	if len(conflicts) > 0 {
		sort.Strings(conflicts)
		return conflictError(strings.Join(conflicts, ", "), "name is bound at compile time")
	}

	var missing []string
	for _, name := range t.names {
		if _, ok := values[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return errors.New("E020").
			WithDetailf("no value for %s", strings.Join(missing, ", ")).
			WithSuggestion("Return every placeholder name from the binding function")
	}

	rendered := make(map[string]string, len(t.names))
	for _, name := range t.names {
		s, err := renderValue(t.renderer, name, values[name])
		if err != nil {
			return err
		}
		rendered[name] = s
	}

	b.Grow(len(t.source))
	for _, p := range t.parts {
		if p.isPlaceholder() {
			b.WriteString(rendered[p.name])
		} else {
			b.WriteString(p.text)
		}
	}
	return nil
}

// renderValue renders a substituted value. Numbers and booleans are
// formatted, everything else goes through the renderer.
func renderValue(r *render.Renderer, name string, v any) (string, error) {
	switch x := v.(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64, bool:
		return fmt.Sprint(x), nil
	case fmt.Stringer:
		if _, ok := v.(element.Element); !ok {
			return r.Render(x.String())
		}
	}
	s, err := r.Render(v)
	if err != nil {
		return "", fmt.Errorf("placeholder %q: %w", name, err)
	}
	return s, nil
}

func conflictError(name, detail string) error {
	return errors.New("E021").
		WithDetailf("%s: %s", name, detail).
		WithSuggestion("Rename the placeholder or drop it from the static values")
}
