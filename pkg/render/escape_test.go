package render

import (
	"strings"
	"testing"
)

func TestEscapeHTML(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty string", "", ""},
		{"plain text", "Hello, World!", "Hello, World!"},
		{"ampersand", "Tom & Jerry", "Tom &amp; Jerry"},
		{"less than", "a < b", "a &lt; b"},
		{"greater than", "a > b", "a &gt; b"},
		{"double quote", `say "hello"`, "say &quot;hello&quot;"},
		{"single quote", "it's fine", "it&#39;s fine"},
		{
			"script tag",
			"<script>alert('xss')</script>",
			"&lt;script&gt;alert(&#39;xss&#39;)&lt;/script&gt;",
		},
		{
			"already escaped",
			"&amp;",
			"&amp;amp;",
		},
		{"placeholder braces untouched", "{name}", "{name}"},
		{"unicode preserved", "Hello 世界 🌍", "Hello 世界 🌍"},
		{"invalid utf-8 kept", "a\xff<", "a\xff&lt;"},
		{"invalid utf-8 without specials", "a\xff", "a\xff"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := escapeHTML(tt.input); got != tt.want {
				t.Errorf("escapeHTML(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestEscapeRemovesMarkup(t *testing.T) {
	inputs := []string{
		"<",
		">>",
		`<a href="x">y</a>`,
		"</script><script>alert(1)</script>",
		"<<<&&&>>>",
	}
	for _, s := range inputs {
		got := Escape(s)
		if strings.ContainsAny(got, "<>") {
			t.Errorf("Escape(%q) = %q, contains markup", s, got)
		}
	}
}

func BenchmarkEscapeHTML(b *testing.B) {
	b.Run("plain text", func(b *testing.B) {
		s := "Hello, World! This is a simple text without special characters."
		for i := 0; i < b.N; i++ {
			escapeHTML(s)
		}
	})

	b.Run("with special chars", func(b *testing.B) {
		s := `<script>alert("xss")</script> & more content here`
		for i := 0; i < b.N; i++ {
			escapeHTML(s)
		}
	})
}
