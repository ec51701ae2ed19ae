package render

import (
	"io"
	"strings"

	"github.com/vango-dev/htmldoom/internal/errors"
	"github.com/vango-dev/htmldoom/pkg/attr"
	"github.com/vango-dev/htmldoom/pkg/element"
)

// DefaultCacheSize is the number of outputs a Renderer keeps by default.
const DefaultCacheSize = 12800

// ErrUnsupportedValue is matched by errors.Is when a value cannot be rendered.
var ErrUnsupportedValue = errors.ErrUnsupportedValue

// Observer receives cache notifications. Implementations must be safe for
// concurrent use.
type Observer interface {
	CacheHit()
	CacheMiss()
	CacheEvict()
}

// Config configures a Renderer.
type Config struct {
	// CacheSize is the maximum number of cached outputs.
	// Defaults to DefaultCacheSize.
	CacheSize int

	// DisableCache renders every call from scratch.
	DisableCache bool

	// Observer, if set, is notified of cache activity.
	Observer Observer
}

// Renderer renders element trees to HTML.
type Renderer struct {
	config Config
	cache  *cache
}

// New creates a Renderer with the given configuration.
func New(config Config) *Renderer {
	if config.CacheSize <= 0 {
		config.CacheSize = DefaultCacheSize
	}
	r := &Renderer{config: config}
	if !config.DisableCache {
		r.cache = newCache(config.CacheSize, config.Observer)
	}
	return r
}

// Render renders values and concatenates the results in order.
func (r *Renderer) Render(values ...any) (string, error) {
	els, err := collect(nil, values)
	if err != nil {
		return "", err
	}
	switch len(els) {
	case 0:
		return "", nil
	case 1:
		// Text needs no cache entry.
		switch e := els[0].(type) {
		case element.EscapedText:
			return escapeHTML(string(e)), nil
		case element.RawText:
			return string(e), nil
		}
	}

	if r.cache == nil {
		return renderAll(els), nil
	}

	key := keyHash(els)
	if html, ok := r.cache.get(key, els); ok {
		return html, nil
	}
	html := renderAll(els)
	r.cache.put(key, els, html)
	return html, nil
}

// MustRender is like Render but panics on error.
func (r *Renderer) MustRender(values ...any) string {
	html, err := r.Render(values...)
	if err != nil {
		panic(err)
	}
	return html
}

// RenderTo renders values and writes the result to w.
func (r *Renderer) RenderTo(w io.Writer, values ...any) error {
	html, err := r.Render(values...)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, html)
	return err
}

// Reset clears the cache.
func (r *Renderer) Reset() {
	if r.cache != nil {
		r.cache.reset()
	}
}

// Stats returns a snapshot of cache counters.
func (r *Renderer) Stats() CacheStats {
	if r.cache == nil {
		return CacheStats{}
	}
	return r.cache.stats()
}

// collect converts values to elements, calling funcs and flattening slices.
func collect(dst []element.Element, values []any) ([]element.Element, error) {
	for _, v := range values {
		var err error
		switch x := v.(type) {
		case nil:
			continue
		case func() any:
			dst, err = collect(dst, []any{x()})
		case []any:
			dst, err = collect(dst, x)
		case []element.Element:
			for _, el := range x {
				if el != nil {
					dst = append(dst, el)
				}
			}
		default:
			if r, ok := element.Call(v); ok {
				dst, err = collect(dst, []any{r})
				break
			}
			var el element.Element
			el, err = element.ToElement(v)
			if err != nil {
				return nil, unsupported(v)
			}
			if el != nil {
				dst = append(dst, el)
			}
		}
		if err != nil {
			return nil, err
		}
	}
	return dst, nil
}

func unsupported(v any) error {
	return errors.New("E010").
		WithDetailf("%v: expected string, []byte, element or no-argument func but got %T", v, v).
		WithSuggestion("Convert the value with fmt.Sprint or wrap it in element.RawText")
}

func renderAll(els []element.Element) string {
	var b strings.Builder
	for _, el := range els {
		renderNode(&b, el)
	}
	return b.String()
}

// renderNode dispatches rendering based on element kind.
func renderNode(b *strings.Builder, el element.Element) {
	switch e := el.(type) {
	case element.EscapedText:
		b.WriteString(escapeHTML(string(e)))
	case element.RawText:
		b.WriteString(string(e))
	case element.Comment:
		b.WriteString("<!-- ")
		b.WriteString(escapeHTML(string(e)))
		b.WriteString(" -->")
	case element.DocType:
		b.WriteString("<!DOCTYPE")
		for _, a := range e.Attrs() {
			b.WriteByte(' ')
			b.WriteString(attr.FormatBool(a))
		}
		b.WriteByte('>')
	case element.LeafTag:
		renderOpen(b, e)
		b.WriteString(" />")
	case element.SingleChildTag:
		renderOpen(b, e)
		b.WriteByte('>')
		renderNode(b, e.Child())
		renderClose(b, e)
	case element.CompositeTag:
		renderOpen(b, e)
		b.WriteByte('>')
		for _, c := range e.Children() {
			renderNode(b, c)
		}
		renderClose(b, e)
	}
}

func renderOpen(b *strings.Builder, t element.Tag) {
	b.WriteByte('<')
	b.WriteString(t.Name())
	for _, a := range t.Attrs() {
		b.WriteByte(' ')
		b.WriteString(attr.FormatBool(a))
	}
	for _, p := range t.Props() {
		b.WriteByte(' ')
		b.WriteString(attr.FormatProp(p.Key, p.Value))
	}
}

func renderClose(b *strings.Builder, t element.Tag) {
	b.WriteString("</")
	b.WriteString(t.Name())
	b.WriteByte('>')
}

var std = New(Config{})

// Default returns the process-wide Renderer used by the package functions.
func Default() *Renderer { return std }

// Render renders values with the default Renderer.
func Render(values ...any) (string, error) { return std.Render(values...) }

// MustRender renders values with the default Renderer, panicking on error.
func MustRender(values ...any) string { return std.MustRender(values...) }
