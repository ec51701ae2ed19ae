package element

import (
	"github.com/cespare/xxhash/v2"

	"github.com/vango-dev/htmldoom/internal/errors"
)

// Kind is the element variant discriminator.
type Kind uint8

const (
	KindEscapedText    Kind = iota // escaped text
	KindRawText                    // unescaped text
	KindComment                    // <!-- -->
	KindDocType                    // <!DOCTYPE>
	KindLeafTag                    // <br />
	KindSingleChildTag             // <title>x</title>
	KindCompositeTag               // <div>...</div>
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindEscapedText:
		return "EscapedText"
	case KindRawText:
		return "RawText"
	case KindComment:
		return "Comment"
	case KindDocType:
		return "DocType"
	case KindLeafTag:
		return "LeafTag"
	case KindSingleChildTag:
		return "SingleChildTag"
	case KindCompositeTag:
		return "CompositeTag"
	default:
		return "Unknown"
	}
}

// Element is a renderable value. The set of implementations is closed.
type Element interface {
	// Kind reports the variant.
	Kind() Kind

	// Equal reports structural equality with another element.
	Equal(other Element) bool

	// Hash returns a hash consistent with Equal.
	Hash() uint64

	sealed()
}

// ErrConstruction is matched by errors.Is for every construction failure.
var ErrConstruction = errors.ErrConstruction

// EscapedText is text that is HTML-escaped when rendered.
type EscapedText string

func (EscapedText) Kind() Kind { return KindEscapedText }
func (EscapedText) sealed()    {}

// Hash returns a hash consistent with Equal.
func (t EscapedText) Hash() uint64 { return hashText(KindEscapedText, string(t)) }

// Equal reports whether other is the same escaped text.
func (t EscapedText) Equal(other Element) bool {
	o, ok := other.(EscapedText)
	return ok && o == t
}

// RawText is text rendered verbatim. Use it only with trusted content.
type RawText string

func (RawText) Kind() Kind { return KindRawText }
func (RawText) sealed()    {}

// Hash returns a hash consistent with Equal.
func (t RawText) Hash() uint64 { return hashText(KindRawText, string(t)) }

// Equal reports whether other is the same raw text.
func (t RawText) Equal(other Element) bool {
	o, ok := other.(RawText)
	return ok && o == t
}

// Comment is an HTML comment; its text is escaped when rendered.
type Comment string

func (Comment) Kind() Kind { return KindComment }
func (Comment) sealed()    {}

// Hash returns a hash consistent with Equal.
func (c Comment) Hash() uint64 { return hashText(KindComment, string(c)) }

// Equal reports whether other is the same comment.
func (c Comment) Equal(other Element) bool {
	o, ok := other.(Comment)
	return ok && o == c
}

// DocType is a <!DOCTYPE ...> declaration.
type DocType struct {
	attrs  []string
	hash   uint64
	hashed bool
}

// NewDocType creates a declaration from its space-separated parts, e.g.
// NewDocType("html").
func NewDocType(attrs ...string) DocType {
	d := DocType{attrs: cloneStrings(attrs)}
	h := newHasher(KindDocType)
	h.strings(d.attrs)
	d.hash, d.hashed = h.sum(), true
	return d
}

func (DocType) Kind() Kind { return KindDocType }
func (DocType) sealed()    {}

// Attrs returns a copy of the declaration parts.
func (d DocType) Attrs() []string { return cloneStrings(d.attrs) }

// Hash returns a hash consistent with Equal.
func (d DocType) Hash() uint64 {
	if !d.hashed {
		return NewDocType(d.attrs...).hash
	}
	return d.hash
}

// Equal reports whether other declares the same parts in the same order.
func (d DocType) Equal(other Element) bool {
	o, ok := other.(DocType)
	return ok && equalStrings(d.attrs, o.attrs)
}

// hasher accumulates a structural hash.
type hasher struct {
	d *xxhash.Digest
}

func newHasher(k Kind) hasher {
	h := hasher{d: xxhash.New()}
	h.d.Write([]byte{byte(k)})
	return h
}

func (h hasher) string(s string) {
	h.d.WriteString(s)
	h.d.Write([]byte{0})
}

func (h hasher) strings(ss []string) {
	for _, s := range ss {
		h.string(s)
	}
	h.d.Write([]byte{1})
}

func (h hasher) uint64(v uint64) {
	var b [8]byte
	for i := range b {
		b[i] = byte(v >> (8 * i))
	}
	h.d.Write(b[:])
}

func (h hasher) sum() uint64 { return h.d.Sum64() }

func hashText(k Kind, s string) uint64 {
	h := newHasher(k)
	h.string(s)
	return h.sum()
}

func cloneStrings(ss []string) []string {
	if len(ss) == 0 {
		return nil
	}
	out := make([]string, len(ss))
	copy(out, ss)
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
