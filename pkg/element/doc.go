// Package element defines the immutable values rendered by htmldoom.
//
// An Element is one of seven variants:
//
//   - EscapedText: text that is HTML-escaped when rendered
//   - RawText: text emitted verbatim (caller-trusted)
//   - Comment: <!-- text -->
//   - DocType: <!DOCTYPE html>
//   - LeafTag: a tag without children, <br />
//   - SingleChildTag: a tag holding exactly one child, <title>x</title>
//   - CompositeTag: a tag holding zero or more children, <div>...</div>
//
// # Construction
//
// Tag constructors take attributes; children are supplied afterwards and
// always produce a new value:
//
//	p, err := element.NewCompositeTag("p", "hidden", element.KV("class_", "note"))
//	withText, err := p.WithChildren("Hello & welcome", element.RawText("<br />"))
//
// A string argument is a boolean attribute, a Prop (or []Prop, or
// map[string]string) is a key-value attribute. Passing an element where
// attributes are expected, or children to a LeafTag, fails with a
// construction error.
//
// Child values are converted as follows: string becomes EscapedText, []byte
// becomes RawText, an Element is used as-is and a func returning one of these
// is called once at construction time. Slices are flattened into a
// CompositeTag's children.
//
// # Equality
//
// Values never change after construction. Two values are equal when they are
// the same variant with equal names, attributes (order-sensitive), props and
// children. Hash is consistent with Equal, so the pair serves as a cache key.
package element
