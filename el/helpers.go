package el

import (
	"strings"

	"github.com/vango-dev/htmldoom/pkg/element"
)

// Txt creates escaped text.
func Txt(s string) element.EscapedText { return element.EscapedText(s) }

// Raw creates text rendered verbatim. Use it only with trusted content.
func Raw(s string) element.RawText { return element.RawText(s) }

// Comment creates an HTML comment.
func Comment(s string) element.Comment { return element.Comment(s) }

// DocType creates a <!DOCTYPE> declaration.
func DocType(parts ...string) element.DocType { return element.NewDocType(parts...) }

// HTML5 is <!DOCTYPE html>.
var HTML5 = element.NewDocType("html")

// Attr creates a key-value attribute.
func Attr(key, value string) element.Prop { return element.KV(key, value) }

func ID(id string) element.Prop {
	return element.KV("id", id)
}
func Class(classes ...string) element.Prop {
	return element.KV("class", strings.Join(classes, " "))
}
func StyleAttr(style string) element.Prop {
	return element.KV("style", style)
}
func TitleAttr(title string) element.Prop {
	return element.KV("title", title)
}
func DataAttr(key, value string) element.Prop {
	return element.KV("data-"+key, value)
}
func Aria(key, value string) element.Prop {
	return element.KV("aria-"+key, value)
}
func Role(role string) element.Prop {
	return element.KV("role", role)
}
func Href(url string) element.Prop {
	return element.KV("href", url)
}
func Src(url string) element.Prop {
	return element.KV("src", url)
}
func Alt(text string) element.Prop {
	return element.KV("alt", text)
}
func Rel(rel string) element.Prop {
	return element.KV("rel", rel)
}
func Type(typ string) element.Prop {
	return element.KV("type", typ)
}
func Name(name string) element.Prop {
	return element.KV("name", name)
}
func Value(value string) element.Prop {
	return element.KV("value", value)
}
func Placeholder(text string) element.Prop {
	return element.KV("placeholder", text)
}
func For(id string) element.Prop {
	return element.KV("for", id)
}
func Action(url string) element.Prop {
	return element.KV("action", url)
}
func Method(method string) element.Prop {
	return element.KV("method", method)
}
func Lang(lang string) element.Prop {
	return element.KV("lang", lang)
}
func Charset(charset string) element.Prop {
	return element.KV("charset", charset)
}
func Content(content string) element.Prop {
	return element.KV("content", content)
}
func Target(target string) element.Prop {
	return element.KV("target", target)
}

// Boolean attributes.
const (
	Async    = "async"
	Checked  = "checked"
	Defer    = "defer"
	Disabled = "disabled"
	Hidden   = "hidden"
	Multiple = "multiple"
	Readonly = "readonly"
	Required = "required"
	Selected = "selected"
)

// Range maps items to elements, for use as a child list.
func Range[T any](items []T, fn func(item T, index int) element.Element) []element.Element {
	out := make([]element.Element, 0, len(items))
	for i, item := range items {
		out = append(out, fn(item, i))
	}
	return out
}

// If returns el when condition holds and nil otherwise. Nil children are
// skipped.
func If(condition bool, el element.Element) element.Element {
	if condition {
		return el
	}
	return nil
}
