package render

import (
	"fmt"
	"io"
	"testing"

	"github.com/vango-dev/htmldoom/pkg/element"
)

func BenchmarkRenderSimple(b *testing.B) {
	r := New(Config{DisableCache: true})
	node := tag("div", element.KV("class_", "card")).With(
		tag("h1").With("Title"),
		tag("p").With("Content"),
	)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r.Render(node)
	}
}

func BenchmarkRenderLargeTree(b *testing.B) {
	r := New(Config{DisableCache: true})

	var items []any
	for i := 0; i < 1000; i++ {
		items = append(items, tag("li").With(fmt.Sprintf("Item %d", i)))
	}
	node := tag("ul").With(items...)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r.Render(node)
	}
}

func BenchmarkRenderCached(b *testing.B) {
	r := New(Config{})

	var items []any
	for i := 0; i < 1000; i++ {
		items = append(items, tag("li").With(fmt.Sprintf("Item %d", i)))
	}
	node := tag("ul").With(items...)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r.Render(node)
	}
}

func BenchmarkRenderTo(b *testing.B) {
	r := New(Config{})
	node := tag("div").With(tag("p").With("Hello"), tag("p").With("World"))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r.RenderTo(io.Discard, node)
	}
}
