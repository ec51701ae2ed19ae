package element

import (
	"sort"

	"github.com/vango-dev/htmldoom/internal/errors"
)

// Prop is a key-value attribute. Keys are normalized when rendered: one
// trailing underscore is dropped and other underscores become hyphens.
type Prop struct {
	Key   string
	Value string
}

// KV creates a Prop.
func KV(key, value string) Prop { return Prop{Key: key, Value: value} }

// Tag is implemented by LeafTag, SingleChildTag and CompositeTag.
type Tag interface {
	Element

	// Name returns the tag name.
	Name() string

	// Attrs returns the boolean attributes in order.
	Attrs() []string

	// Props returns the key-value attributes sorted by key.
	Props() []Prop
}

// head is the name and attributes shared by every tag variant.
type head struct {
	name  string
	attrs []string
	props []Prop
}

func (h head) write(hs hasher) {
	hs.string(h.name)
	hs.strings(h.attrs)
	for _, p := range h.props {
		hs.string(p.Key)
		hs.string(p.Value)
	}
	hs.d.Write([]byte{2})
}

func (h head) equal(o head) bool {
	if h.name != o.name || !equalStrings(h.attrs, o.attrs) || len(h.props) != len(o.props) {
		return false
	}
	for i := range h.props {
		if h.props[i] != o.props[i] {
			return false
		}
	}
	return true
}

func (h head) Name() string    { return h.name }
func (h head) Attrs() []string { return cloneStrings(h.attrs) }

func (h head) Props() []Prop {
	if len(h.props) == 0 {
		return nil
	}
	out := make([]Prop, len(h.props))
	copy(out, h.props)
	return out
}

// newHead parses constructor arguments into a tag head.
func newHead(name string, args []any) (head, error) {
	h := head{name: name}
	props := make(map[string]string)

	for _, arg := range args {
		switch v := arg.(type) {
		case nil:
			continue
		case string:
			h.attrs = append(h.attrs, v)
		case []string:
			h.attrs = append(h.attrs, v...)
		case Prop:
			props[v.Key] = v.Value
		case []Prop:
			for _, p := range v {
				props[p.Key] = p.Value
			}
		case map[string]string:
			for k, val := range v {
				props[k] = val
			}
		default:
			if isChildArg(arg) {
				return head{}, errors.New("E002").
					WithDetailf("%s(%T): here you pass tag attributes, not child elements", name, arg).
					WithSuggestion("Supply children afterwards: " + name + "(attrs...).With(children...)")
			}
			return head{}, errors.New("E005").
				WithDetailf("%s: got %v of type %T", name, arg, arg)
		}
	}

	if len(props) > 0 {
		h.props = make([]Prop, 0, len(props))
		for k, v := range props {
			h.props = append(h.props, Prop{Key: k, Value: v})
		}
		sort.Slice(h.props, func(i, j int) bool { return h.props[i].Key < h.props[j].Key })
	}
	return h, nil
}

// LeafTag is a tag that cannot hold children, rendered as <name ... />.
type LeafTag struct {
	head
	hash   uint64
	hashed bool
}

// NewLeafTag creates a leaf tag from its attributes.
func NewLeafTag(name string, args ...any) (LeafTag, error) {
	for _, arg := range args {
		if isChildArg(arg) {
			return LeafTag{}, leafChildrenError(name)
		}
	}
	h, err := newHead(name, args)
	if err != nil {
		return LeafTag{}, err
	}
	t := LeafTag{head: h}
	t.hash, t.hashed = t.computeHash(), true
	return t, nil
}

func (LeafTag) Kind() Kind { return KindLeafTag }
func (LeafTag) sealed()    {}

func (t LeafTag) computeHash() uint64 {
	hs := newHasher(KindLeafTag)
	t.head.write(hs)
	return hs.sum()
}

// Hash returns a hash consistent with Equal.
func (t LeafTag) Hash() uint64 {
	if !t.hashed {
		return t.computeHash()
	}
	return t.hash
}

// Equal reports structural equality.
func (t LeafTag) Equal(other Element) bool {
	o, ok := other.(LeafTag)
	return ok && t.Hash() == o.Hash() && t.head.equal(o.head)
}

// WithChildren always fails for non-empty children: leaf tags have none.
func (t LeafTag) WithChildren(children ...any) (LeafTag, error) {
	for _, c := range children {
		if c != nil {
			return LeafTag{}, leafChildrenError(t.name)
		}
	}
	return t, nil
}

func leafChildrenError(name string) error {
	return errors.New("E001").
		WithDetailf("%s: this is a leaf tag, it does not support child elements", name).
		WithSuggestion("Pass attributes only: " + name + "(attrs...)")
}

// SingleChildTag is a tag holding exactly one child.
type SingleChildTag struct {
	head
	child  Element
	raw    bool
	hash   uint64
	hashed bool
}

// NewSingleChildTag creates a single-child tag whose child is empty text.
func NewSingleChildTag(name string, args ...any) (SingleChildTag, error) {
	h, err := newHead(name, args)
	if err != nil {
		return SingleChildTag{}, err
	}
	t := SingleChildTag{head: h, child: EscapedText("")}
	t.hash, t.hashed = t.computeHash(), true
	return t, nil
}

// NewRawTextTag creates a single-child tag whose string children are kept
// verbatim, as needed by script and style.
func NewRawTextTag(name string, args ...any) (SingleChildTag, error) {
	h, err := newHead(name, args)
	if err != nil {
		return SingleChildTag{}, err
	}
	t := SingleChildTag{head: h, child: RawText(""), raw: true}
	t.hash, t.hashed = t.computeHash(), true
	return t, nil
}

func (SingleChildTag) Kind() Kind { return KindSingleChildTag }
func (SingleChildTag) sealed()    {}

// Child returns the tag's child.
func (t SingleChildTag) Child() Element {
	if t.child == nil {
		if t.raw {
			return RawText("")
		}
		return EscapedText("")
	}
	return t.child
}

// RawContent reports whether string children are kept unescaped.
func (t SingleChildTag) RawContent() bool { return t.raw }

func (t SingleChildTag) computeHash() uint64 {
	hs := newHasher(KindSingleChildTag)
	t.head.write(hs)
	if t.raw {
		hs.d.Write([]byte{1})
	}
	hs.uint64(t.Child().Hash())
	return hs.sum()
}

// Hash returns a hash consistent with Equal.
func (t SingleChildTag) Hash() uint64 {
	if !t.hashed {
		return t.computeHash()
	}
	return t.hash
}

// Equal reports structural equality.
func (t SingleChildTag) Equal(other Element) bool {
	o, ok := other.(SingleChildTag)
	return ok && t.raw == o.raw && t.Hash() == o.Hash() &&
		t.head.equal(o.head) && t.Child().Equal(o.Child())
}

// WithChild returns a copy of the tag holding child.
func (t SingleChildTag) WithChild(child any) (SingleChildTag, error) {
	var (
		el  Element
		err error
	)
	if t.raw {
		el, err = toRawElement(child)
	} else {
		el, err = ToElement(child)
	}
	if err != nil {
		return SingleChildTag{}, err
	}
	if el == nil {
		if t.raw {
			el = RawText("")
		} else {
			el = EscapedText("")
		}
	}
	n := SingleChildTag{head: t.head, child: el, raw: t.raw}
	n.hash, n.hashed = n.computeHash(), true
	return n, nil
}

// WithChildren is WithChild for call sites holding a slice; more than one
// child fails.
func (t SingleChildTag) WithChildren(children ...any) (SingleChildTag, error) {
	switch len(children) {
	case 0:
		return t.WithChild(nil)
	case 1:
		return t.WithChild(children[0])
	default:
		return SingleChildTag{}, errors.New("E003").
			WithDetailf("%s: got %d children", t.name, len(children)).
			WithSuggestion("Wrap the children in a composite tag or pass a single RawText")
	}
}

// With is WithChild for tree literals; it panics on a construction error.
func (t SingleChildTag) With(child any) SingleChildTag {
	return Must(t.WithChild(child))
}

// CompositeTag is a tag holding zero or more children.
type CompositeTag struct {
	head
	children []Element
	hash     uint64
	hashed   bool
}

// NewCompositeTag creates a composite tag without children.
func NewCompositeTag(name string, args ...any) (CompositeTag, error) {
	h, err := newHead(name, args)
	if err != nil {
		return CompositeTag{}, err
	}
	t := CompositeTag{head: h}
	t.hash, t.hashed = t.computeHash(), true
	return t, nil
}

func (CompositeTag) Kind() Kind { return KindCompositeTag }
func (CompositeTag) sealed()    {}

// Children returns a copy of the children.
func (t CompositeTag) Children() []Element {
	if len(t.children) == 0 {
		return nil
	}
	out := make([]Element, len(t.children))
	copy(out, t.children)
	return out
}

func (t CompositeTag) computeHash() uint64 {
	hs := newHasher(KindCompositeTag)
	t.head.write(hs)
	for _, c := range t.children {
		hs.uint64(c.Hash())
	}
	return hs.sum()
}

// Hash returns a hash consistent with Equal.
func (t CompositeTag) Hash() uint64 {
	if !t.hashed {
		return t.computeHash()
	}
	return t.hash
}

// Equal reports structural equality.
func (t CompositeTag) Equal(other Element) bool {
	o, ok := other.(CompositeTag)
	if !ok || t.Hash() != o.Hash() || !t.head.equal(o.head) || len(t.children) != len(o.children) {
		return false
	}
	for i := range t.children {
		if !t.children[i].Equal(o.children[i]) {
			return false
		}
	}
	return true
}

// WithChildren returns a copy of the tag holding children in order.
func (t CompositeTag) WithChildren(children ...any) (CompositeTag, error) {
	els, err := ToElements(children...)
	if err != nil {
		return CompositeTag{}, err
	}
	n := CompositeTag{head: t.head, children: els}
	n.hash, n.hashed = n.computeHash(), true
	return n, nil
}

// With is WithChildren for tree literals; it panics on a construction error.
func (t CompositeTag) With(children ...any) CompositeTag {
	return Must(t.WithChildren(children...))
}

// Must returns v, panicking if err is non-nil. Construction errors are
// programming errors, so tree literals use Must-style helpers.
func Must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
