package tmpl

import (
	"bytes"
	stderrors "errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/vango-dev/htmldoom/pkg/element"
	"github.com/vango-dev/htmldoom/pkg/render"
)

func p() element.CompositeTag {
	return element.Must(element.NewCompositeTag("p"))
}

func TestExecute(t *testing.T) {
	tpl, err := Compile(p().With("{x}"), p().With("another {x}"))
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}

	tests := []struct {
		name   string
		values Values
		want   element.RawText
	}{
		{"string", Values{"x": "y"}, "<p>y</p><p>another y</p>"},
		{"escaped string", Values{"x": "<script>"}, "<p>&lt;script&gt;</p><p>another &lt;script&gt;</p>"},
		{"raw bytes", Values{"x": []byte("<b>y</b>")}, "<p><b>y</b></p><p>another <b>y</b></p>"},
		{"element", Values{"x": element.Comment("c")}, "<p><!-- c --></p><p>another <!-- c --></p>"},
		{"number", Values{"x": 42}, "<p>42</p><p>another 42</p>"},
		{"extra keys ignored", Values{"x": "y", "z": "w"}, "<p>y</p><p>another y</p>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tpl.Execute(tt.values)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTemplateIsReusable(t *testing.T) {
	tpl := MustCompile(p().With("{a}-{b}"))
	src := tpl.Source()

	first, _ := tpl.Execute(Values{"a": "1", "b": "2"})
	second, _ := tpl.Execute(Values{"a": "3", "b": "4"})

	if first != "<p>1-2</p>" || second != "<p>3-4</p>" {
		t.Errorf("got %q and %q", first, second)
	}
	if tpl.Source() != src {
		t.Error("execution must not change the compiled source")
	}
	if diff := cmp.Diff([]string{"a", "b"}, tpl.Names()); diff != "" {
		t.Errorf("Names() mismatch (-want +got):\n%s", diff)
	}
}

func TestLiteralBraces(t *testing.T) {
	style := element.Must(element.NewRawTextTag("style")).With("p {{ color: red; }}")
	tpl := MustCompile(style, p().With("{x}"))

	got, err := tpl.Execute(Values{"x": "{not a placeholder}"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := element.RawText("<style>p { color: red; }</style><p>{not a placeholder}</p>")
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestPlaceholderInAttribute(t *testing.T) {
	a := element.Must(element.NewCompositeTag("a", element.KV("href", "{url}"))).With("{label}")
	tpl := MustCompile(a)

	got, err := tpl.Execute(Values{"url": "/home", "label": "Home"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != `<a href="/home">Home</a>` {
		t.Errorf("got %q", got)
	}
}

func TestMissingBinding(t *testing.T) {
	tpl := MustCompile(p().With("{x}{y}"))
	_, err := tpl.Execute(Values{"x": "1"})
	if !stderrors.Is(err, ErrMissingBinding) {
		t.Fatalf("err = %v, want missing binding", err)
	}
	if !strings.Contains(err.Error(), "y") {
		t.Errorf("error should name the missing key: %v", err)
	}
}

func TestConflictingName(t *testing.T) {
	tpl, err := Compiler{
		Static:   Values{"site": "Doom"},
		Reserved: []string{"self"},
	}.Compile(p().With("{site}: {title}"))
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}

	got, err := tpl.Execute(Values{"title": "Home"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "<p>Doom: Home</p>" {
		t.Errorf("got %q", got)
	}

	for _, key := range []string{"site", "self"} {
		_, err := tpl.Execute(Values{"title": "Home", key: "x"})
		if !stderrors.Is(err, ErrConflictingName) {
			t.Errorf("%s: err = %v, want conflicting name", key, err)
		}
	}

	_, err = Compiler{Reserved: []string{"x"}}.Compile(p().With("{x}"))
	if !stderrors.Is(err, ErrConflictingName) {
		t.Errorf("reserved placeholder: err = %v, want conflicting name", err)
	}
}

func TestTemplateSyntax(t *testing.T) {
	tests := []struct {
		name     string
		skeleton string
	}{
		{"unclosed", "{x"},
		{"lone close", "x}"},
		{"empty name", "{}"},
		{"invalid name", "{a-b}"},
		{"leading digit", "{1x}"},
		{"css block", "p { color: red }"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Compile(element.RawText(tt.skeleton))
			if !stderrors.Is(err, ErrTemplateSyntax) {
				t.Errorf("err = %v, want template syntax error", err)
			}
		})
	}
}

func TestCompileUnsupportedValue(t *testing.T) {
	_, err := Compile(42)
	if !stderrors.Is(err, render.ErrUnsupportedValue) {
		t.Errorf("err = %v, want unsupported value", err)
	}

	tpl := MustCompile(p().With("{x}"))
	_, err = tpl.Execute(Values{"x": struct{}{}})
	if !stderrors.Is(err, render.ErrUnsupportedValue) {
		t.Errorf("err = %v, want unsupported value", err)
	}
}

func TestCompilerRenderer(t *testing.T) {
	r := render.New(render.Config{DisableCache: true})
	tpl, err := Compiler{Renderer: r}.Compile(p().With("{x}"))
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	var buf bytes.Buffer
	if err := tpl.ExecuteTo(&buf, Values{"x": "y"}); err != nil {
		t.Fatalf("ExecuteTo: %v", err)
	}
	if buf.String() != "<p>y</p>" {
		t.Errorf("got %q", buf.String())
	}
}

type user struct {
	Name string
	Bio  string
}

func TestRenders(t *testing.T) {
	card := Renders[user](
		element.Must(element.NewCompositeTag("div", element.KV("class_", "card"))).With(
			element.Must(element.NewSingleChildTag("h2")).With("{name}"),
			p().With("{bio}"),
		),
	)(func(u user) Values {
		return Values{"name": u.Name, "bio": u.Bio}
	})

	got, err := card(user{Name: "Ada", Bio: "<3 engines"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := element.RawText(`<div class="card"><h2>Ada</h2><p>&lt;3 engines</p></div>`)
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	// The result nests as raw text.
	page := render.MustRender(element.Must(element.NewCompositeTag("main")).With(got))
	if page != "<main>"+string(want)+"</main>" {
		t.Errorf("nested output = %q", page)
	}
}

func TestRendersPanicsOnBadSkeleton(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Renders should panic on a malformed skeleton")
		}
	}()
	Renders[int](element.RawText("{"))
}

func TestFuncMust(t *testing.T) {
	greet := Bind(MustCompile(p().With("hi {who}")), func(who string) Values {
		return Values{"who": who}
	}).Must()

	if got := greet("bob"); got != "<p>hi bob</p>" {
		t.Errorf("got %q", got)
	}

	defer func() {
		if recover() == nil {
			t.Error("Must should panic on a missing binding")
		}
	}()
	Bind(MustCompile(p().With("{x}")), func(int) Values { return nil }).Must()(0)
}
