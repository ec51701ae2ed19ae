package layout

import (
	stderrors "errors"
	"testing"

	"github.com/vango-dev/htmldoom/el"
	"github.com/vango-dev/htmldoom/pkg/element"
	"github.com/vango-dev/htmldoom/pkg/render"
)

func TestBase(t *testing.T) {
	strict := element.NewDocType("HTML", "PUBLIC", "-//W3C//DTD HTML 4.01//EN")

	tests := []struct {
		name   string
		layout Base
		want   string
	}{
		{
			name:   "empty",
			layout: Base{},
			want:   "<!DOCTYPE html>\n<html><head><title></title></head><body></body></html>",
		},
		{
			name: "title and body",
			layout: Base{
				Title: "foo",
				Body:  []any{"Welcome bar"},
			},
			want: "<!DOCTYPE html>\n<html><head><title>foo</title></head><body>Welcome bar</body></html>",
		},
		{
			name: "head extras and attributes",
			layout: Base{
				Title:     "x",
				Head:      []any{el.Meta(el.Charset("utf-8"))},
				HTMLAttrs: []any{el.Lang("en")},
				BodyAttrs: []any{el.Class("page")},
				Body:      []any{el.P().With("hi")},
			},
			want: `<!DOCTYPE html>` + "\n" +
				`<html lang="en"><head><title>x</title><meta charset="utf-8" /></head>` +
				`<body class="page"><p>hi</p></body></html>`,
		},
		{
			name:   "custom doctype",
			layout: Base{DocType: &strict},
			want: `<!DOCTYPE HTML PUBLIC "-//W3C//DTD HTML 4.01//EN">` + "\n" +
				"<html><head><title></title></head><body></body></html>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.layout.Render(render.New(render.Config{}))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBaseInvalidBody(t *testing.T) {
	_, err := Base{Body: []any{42}}.Render(nil)
	if !stderrors.Is(err, element.ErrConstruction) {
		t.Errorf("err = %v, want construction error", err)
	}
}
