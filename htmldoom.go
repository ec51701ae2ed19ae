// Package htmldoom provides the public API for building HTML from Go values.
//
// This is the recommended import for most applications:
//
//	import (
//	    "github.com/vango-dev/htmldoom"
//	    . "github.com/vango-dev/htmldoom/el"
//	)
//
// Usage:
//
//	page := Div(Class("card")).With(
//	    H2().With("Title"),
//	    P().With("Escaped <text>"),
//	)
//	html, err := htmldoom.Render(page)
//
//	var card = htmldoom.Renders[User](
//	    Div(Class("card")).With(H2().With("{name}")),
//	)(func(u User) htmldoom.Values {
//	    return htmldoom.Values{"name": u.Name}
//	})
package htmldoom

import (
	"github.com/vango-dev/htmldoom/internal/errors"
	"github.com/vango-dev/htmldoom/pkg/attr"
	"github.com/vango-dev/htmldoom/pkg/element"
	"github.com/vango-dev/htmldoom/pkg/render"
	"github.com/vango-dev/htmldoom/pkg/tmpl"
)

// =============================================================================
// Elements (re-export from pkg/element)
// =============================================================================

// Element is any renderable value.
type Element = element.Element

// EscapedText is text that is escaped when rendered.
type EscapedText = element.EscapedText

// RawText is markup emitted verbatim.
type RawText = element.RawText

// Comment renders as <!-- text -->.
type Comment = element.Comment

// DocType renders as <!DOCTYPE ...>.
type DocType = element.DocType

// Txt returns escaped text.
func Txt(s string) EscapedText { return element.EscapedText(s) }

// Raw returns raw text. Use it only with trusted markup.
func Raw(s string) RawText { return element.RawText(s) }

// NewDocType returns a doctype with the given parts, e.g. NewDocType("html").
func NewDocType(parts ...string) DocType { return element.NewDocType(parts...) }

// FormatAttr formats a single attribute; a nil value gives a boolean
// attribute.
func FormatAttr(key string, value *string) string { return attr.Format(key, value) }

// =============================================================================
// Rendering (re-export from pkg/render)
// =============================================================================

// Render renders values with the default renderer.
func Render(values ...any) (string, error) { return render.Render(values...) }

// MustRender is Render that panics on error.
func MustRender(values ...any) string { return render.MustRender(values...) }

// =============================================================================
// Templates (re-export from pkg/tmpl)
// =============================================================================

// Values binds placeholder names to values.
type Values = tmpl.Values

// Template is a compiled skeleton.
type Template = tmpl.Template

// Compile renders skeleton once and parses its placeholders.
func Compile(skeleton ...any) (*Template, error) { return tmpl.Compile(skeleton...) }

// MustCompile is Compile that panics on error.
func MustCompile(skeleton ...any) *Template { return tmpl.MustCompile(skeleton...) }

// Renders compiles skeleton now and returns a decorator binding it to a
// values function. It panics on a malformed skeleton.
func Renders[A any](skeleton ...any) func(f func(A) Values) tmpl.Func[A] {
	return tmpl.Renders[A](skeleton...)
}

// =============================================================================
// Errors
// =============================================================================

// Error kinds, matched with errors.Is.
var (
	ErrConstruction     = errors.ErrConstruction
	ErrUnsupportedValue = errors.ErrUnsupportedValue
	ErrMissingBinding   = errors.ErrMissingBinding
	ErrConflictingName  = errors.ErrConflictingName
	ErrTemplateSyntax   = errors.ErrTemplateSyntax
)
