// Package attr formats tag attributes.
//
// Boolean attributes render bare when they are plain identifiers and
// double-quoted otherwise. Key-value attributes render as key="value" after
// the key is normalized: one trailing underscore is dropped (class_ becomes
// class) and the remaining underscores become hyphens (data_id becomes
// data-id).
//
// Only double quotes inside values are escaped, with a backslash. Values are
// not HTML-escaped; callers are responsible for the safety of attribute
// content.
package attr

import "strings"

// Format formats a single attribute. A nil value formats key as a boolean
// attribute.
func Format(key string, value *string) string {
	if value == nil {
		return FormatBool(key)
	}
	return FormatProp(key, *value)
}

// FormatBool formats a boolean (valueless) attribute such as required.
func FormatBool(key string) string {
	if isIdent(key) {
		return key
	}
	return Quote(key)
}

// FormatProp formats a key="value" attribute.
func FormatProp(key, value string) string {
	key = Normalize(key)
	var b strings.Builder
	b.Grow(len(key) + len(value) + 3)
	b.WriteString(key)
	b.WriteByte('=')
	writeQuoted(&b, value)
	return b.String()
}

// Normalize strips one trailing underscore and turns the remaining
// underscores into hyphens.
func Normalize(key string) string {
	key = strings.TrimSuffix(key, "_")
	return strings.ReplaceAll(key, "_", "-")
}

// Quote wraps s in double quotes, escaping embedded double quotes with a
// backslash.
func Quote(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	writeQuoted(&b, s)
	return b.String()
}

func writeQuoted(b *strings.Builder, s string) {
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		if s[i] == '"' {
			b.WriteByte('\\')
		}
		b.WriteByte(s[i])
	}
	b.WriteByte('"')
}

// isIdent reports whether s holds only ASCII letters, digits and underscores.
func isIdent(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9', c == '_':
		default:
			return false
		}
	}
	return true
}
