package attr

import "testing"

func TestFormatBool(t *testing.T) {
	tests := []struct {
		name string
		key  string
		want string
	}{
		{"plain", "required", "required"},
		{"digits and underscore", "x_1", "x_1"},
		{"hyphen is quoted", "data-x", `"data-x"`},
		{"space is quoted", "a b c", `"a b c"`},
		{"embedded quote", `abc"xyz`, `"abc\"xyz"`},
		{"url", "http://www.w3.org/TR/html4/strict.dtd", `"http://www.w3.org/TR/html4/strict.dtd"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatBool(tt.key); got != tt.want {
				t.Errorf("FormatBool(%q) = %q, want %q", tt.key, got, tt.want)
			}
		})
	}
}

func TestFormatProp(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
		want  string
	}{
		{"simple", "b", "c", `b="c"`},
		{"reserved word suffix", "class_", "row", `class="row"`},
		{"underscores become hyphens", "data_user_id", "7", `data-user-id="7"`},
		{"only one trailing underscore stripped", "x__", "1", `x-="1"`},
		{"quote in value", "title", `say "hi"`, `title="say \"hi\""`},
		{"markup passes through", "title", "<b>&", `title="<b>&"`},
		{"empty value", "alt", "", `alt=""`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatProp(tt.key, tt.value); got != tt.want {
				t.Errorf("FormatProp(%q, %q) = %q, want %q", tt.key, tt.value, got, tt.want)
			}
		})
	}
}

func TestFormat(t *testing.T) {
	v := "c"
	if got := Format("b", &v); got != `b="c"` {
		t.Errorf("Format(b, c) = %q", got)
	}
	if got := Format(`abc"xyz`, nil); got != `"abc\"xyz"` {
		t.Errorf("Format(abc\"xyz, nil) = %q", got)
	}
}

func TestQuote(t *testing.T) {
	if got := Quote(`abc"xyz`); got != `"abc\"xyz"` {
		t.Errorf("Quote = %q", got)
	}
	if got := Quote(""); got != `""` {
		t.Errorf("Quote(empty) = %q", got)
	}
}
