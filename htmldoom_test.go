package htmldoom_test

import (
	stderrors "errors"
	"testing"

	"github.com/vango-dev/htmldoom"
	. "github.com/vango-dev/htmldoom/el"
)

func TestRender(t *testing.T) {
	page := Div(Class("card")).With(
		H2().With("Title"),
		P().With("1 < 2"),
		htmldoom.Raw("<hr />"),
		htmldoom.Comment("note"),
	)

	got, err := htmldoom.Render(htmldoom.NewDocType("html"), page)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `<!DOCTYPE html><div class="card"><h2>Title</h2><p>1 &lt; 2</p><hr /><!-- note --></div>`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	if got := htmldoom.MustRender(htmldoom.Txt("<")); got != "&lt;" {
		t.Errorf("MustRender = %q", got)
	}
	if got := htmldoom.MustRender(Br, Div().With(Hr)); got != "<br /><div><hr /></div>" {
		t.Errorf("uncalled constructors: got %q", got)
	}
}

func TestFormatAttr(t *testing.T) {
	v := "x"
	if got := htmldoom.FormatAttr("data_id", &v); got != `data-id="x"` {
		t.Errorf("got %q", got)
	}
	if got := htmldoom.FormatAttr("required", nil); got != "required" {
		t.Errorf("got %q", got)
	}
}

type user struct{ Name string }

var card = htmldoom.Renders[user](
	Div(Class("card")).With(H2().With("{name}")),
)(func(u user) htmldoom.Values {
	return htmldoom.Values{"name": u.Name}
})

func TestRenders(t *testing.T) {
	got, err := card(user{Name: "<Ada>"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != `<div class="card"><h2>&lt;Ada&gt;</h2></div>` {
		t.Errorf("got %q", got)
	}
}

func TestErrorKinds(t *testing.T) {
	tests := []struct {
		name string
		err  func() error
		want error
	}{
		{"construction", func() error { _, err := Br().WithChildren("x"); return err }, htmldoom.ErrConstruction},
		{"unsupported", func() error { _, err := htmldoom.Render(1.5); return err }, htmldoom.ErrUnsupportedValue},
		{"missing", func() error {
			_, err := htmldoom.MustCompile(P().With("{x}")).Execute(nil)
			return err
		}, htmldoom.ErrMissingBinding},
		{"syntax", func() error { _, err := htmldoom.Compile(htmldoom.Raw("{")); return err }, htmldoom.ErrTemplateSyntax},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.err(); !stderrors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}
