package tmpl

import (
	"fmt"
	"strings"

	"github.com/vango-dev/htmldoom/internal/errors"
)

// part is a literal run or a placeholder of a compiled template.
type part struct {
	text string
	name string
}

func (p part) isPlaceholder() bool { return p.name != "" }

// scan splits a rendered skeleton into literal runs and placeholders.
// {{ and }} stand for literal braces.
func scan(src string) ([]part, error) {
	var (
		parts []part
		lit   strings.Builder
	)
	flush := func() {
		if lit.Len() > 0 {
			parts = append(parts, part{text: lit.String()})
			lit.Reset()
		}
	}

	for i := 0; i < len(src); i++ {
		c := src[i]
		switch c {
		case '{':
			if i+1 < len(src) && src[i+1] == '{' {
				lit.WriteByte('{')
				i++
				continue
			}
			end := strings.IndexByte(src[i+1:], '}')
			if end < 0 {
				return nil, syntaxError(src, i, "unclosed placeholder")
			}
			name := src[i+1 : i+1+end]
			if !isIdent(name) {
				return nil, syntaxError(src, i, fmt.Sprintf("invalid placeholder name %q", name))
			}
			flush()
			parts = append(parts, part{name: name})
			i += end + 1
		case '}':
			if i+1 < len(src) && src[i+1] == '}' {
				lit.WriteByte('}')
				i++
				continue
			}
			return nil, syntaxError(src, i, "single '}' encountered")
		default:
			lit.WriteByte(c)
		}
	}
	flush()
	return parts, nil
}

func isIdent(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', c == '_':
		case '0' <= c && c <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}

func syntaxError(src string, offset int, msg string) error {
	return errors.New("E022").
		WithDetailf("%s at offset %d near %q", msg, offset, excerpt(src, offset)).
		WithSuggestion("Write literal braces as {{ and }}")
}

func excerpt(s string, at int) string {
	start, end := at-10, at+10
	if start < 0 {
		start = 0
	}
	if end > len(s) {
		end = len(s)
	}
	return s[start:end]
}
