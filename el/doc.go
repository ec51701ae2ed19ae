// Package el is the tag catalogue: one constructor per HTML5 and SVG tag.
//
// Constructors take attributes and panic on misuse, so trees read as
// literals. Strings are boolean attributes, element.Prop values and
// map[string]string are key-value attributes. Children are supplied with
// With:
//
//	import . "github.com/vango-dev/htmldoom/el"
//
//	page := Div(Class("card"), Hidden).With(
//	    H1().With("Title"),
//	    P().With("Body text"),
//	    Br(),
//	    Input(Type("text"), Required),
//	)
//
// Leaf tags (br, img, input, ...) have no With method; passing children to
// them is a compile error, and through New a construction error.
// script and style keep their text unescaped.
//
// Names that collide with Go keywords or with attribute helpers follow the
// tag: Select, Map, Var, Switch; the title and style attributes are
// TitleAttr and StyleAttr.
package el
