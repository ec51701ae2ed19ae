// Package layout provides page layouts built from the tag catalogue.
package layout

import (
	"github.com/vango-dev/htmldoom/el"
	"github.com/vango-dev/htmldoom/pkg/element"
	"github.com/vango-dev/htmldoom/pkg/render"
)

// Base is a basic HTML page. Zero fields fall back to empty defaults, so
// Base{} renders as
//
//	<!DOCTYPE html>
//	<html><head><title></title></head><body></body></html>
type Base struct {
	// DocType defaults to <!DOCTYPE html>.
	DocType *element.DocType

	// Title is the document title.
	Title string

	// Head holds extra head children, rendered after the title.
	Head []any

	// Body holds the body children.
	Body []any

	// HTMLAttrs and BodyAttrs are passed to the html and body tags.
	HTMLAttrs []any
	BodyAttrs []any
}

// Document returns the html element of the page.
func (b Base) Document() (element.CompositeTag, error) {
	head, err := el.Head().WithChildren(append([]any{el.Title().With(b.Title)}, b.Head...)...)
	if err != nil {
		return element.CompositeTag{}, err
	}
	html, err := element.NewCompositeTag("html", b.HTMLAttrs...)
	if err != nil {
		return element.CompositeTag{}, err
	}
	body, err := element.NewCompositeTag("body", b.BodyAttrs...)
	if err != nil {
		return element.CompositeTag{}, err
	}
	body, err = body.WithChildren(b.Body...)
	if err != nil {
		return element.CompositeTag{}, err
	}
	return html.WithChildren(head, body)
}

// Render renders the doctype, a newline and the document.
func (b Base) Render(r *render.Renderer) (string, error) {
	if r == nil {
		r = render.Default()
	}
	doc, err := b.Document()
	if err != nil {
		return "", err
	}
	doctype := el.HTML5
	if b.DocType != nil {
		doctype = *b.DocType
	}
	return r.Render(doctype, element.RawText("\n"), doc)
}
