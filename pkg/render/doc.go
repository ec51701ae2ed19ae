// Package render serializes element trees to HTML.
//
// A Renderer walks element values recursively and concatenates the result of
// every argument in call order. Text is escaped, raw text is written
// verbatim, and attributes are formatted by package attr.
//
// # Basic Usage
//
//	r := render.New(render.Config{})
//	html, err := r.Render(
//	    element.NewDocType("html"),
//	    el.P("a").With("x"),
//	)
//
// To stream output to a writer:
//
//	err := r.RenderTo(w, page)
//
// # Accepted values
//
//   - string: escaped text
//   - []byte: raw text
//   - element.Element: rendered per variant
//   - []element.Element and []any: flattened in order
//   - func() returning any of the above: called first
//   - nil: renders nothing
//
// Anything else fails with an error matching errors.ErrUnsupportedValue.
//
// # Caching
//
// Each Renderer owns a bounded LRU cache keyed by the structural value of its
// arguments, so repeated renders of equal trees return the stored output.
// The cache never changes output. It can be sized, disabled or cleared with
// Reset, and an Observer receives hit, miss and eviction notifications.
//
// A Renderer is safe for concurrent use.
package render
