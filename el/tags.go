package el

import "github.com/vango-dev/htmldoom/pkg/element"

// Tags maps every catalogued tag name to its variant.
var Tags = map[string]Variant{
	"a":                   Composite,
	"abbr":                Composite,
	"address":             Composite,
	"animate":             Composite,
	"animateMotion":       Composite,
	"animateTransform":    Composite,
	"area":                Leaf,
	"article":             Composite,
	"aside":               Composite,
	"audio":               Composite,
	"b":                   Composite,
	"base":                Leaf,
	"bdi":                 Composite,
	"bdo":                 Composite,
	"blockquote":          Composite,
	"body":                Composite,
	"br":                  Leaf,
	"button":              Composite,
	"canvas":              Composite,
	"caption":             Composite,
	"center":              Composite,
	"circle":              Composite,
	"circlePath":          Composite,
	"cite":                Composite,
	"code":                Composite,
	"col":                 Leaf,
	"colgroup":            Composite,
	"data":                Composite,
	"datalist":            Composite,
	"dd":                  Composite,
	"defs":                Composite,
	"del":                 Composite,
	"desc":                Composite,
	"details":             Composite,
	"dfn":                 Composite,
	"dialog":              Composite,
	"discard":             Composite,
	"div":                 Composite,
	"dl":                  Composite,
	"dt":                  Composite,
	"ellipse":             Composite,
	"em":                  Composite,
	"embed":               Leaf,
	"feBlend":             Composite,
	"feColorMatrix":       Composite,
	"feComponentTransfer": Composite,
	"feComposite":         Composite,
	"feConvolveMatrix":    Composite,
	"feDiffuseLighting":   Composite,
	"feDisplacementMap":   Composite,
	"feDistantLight":      Composite,
	"feDropShadow":        Composite,
	"feFlood":             Composite,
	"feFuncA":             Composite,
	"feFuncB":             Composite,
	"feFuncG":             Composite,
	"feFuncR":             Composite,
	"feGaussianBlur":      Composite,
	"feImage":             Composite,
	"feMerge":             Composite,
	"feMergeNode":         Composite,
	"feMorphology":        Composite,
	"feOffset":            Composite,
	"fePointLight":        Composite,
	"feSpecularLighting":  Composite,
	"feSpotLight":         Composite,
	"feTile":              Composite,
	"feTurbulence":        Composite,
	"fieldset":            Composite,
	"figcaption":          Composite,
	"figure":              Composite,
	"filter":              Composite,
	"footer":              Composite,
	"foreignObject":       Composite,
	"form":                Composite,
	"g":                   Composite,
	"h1":                  Composite,
	"h2":                  Composite,
	"h3":                  Composite,
	"h4":                  Composite,
	"h5":                  Composite,
	"h6":                  Composite,
	"hatch":               Composite,
	"hatchpath":           Composite,
	"head":                Composite,
	"header":              Composite,
	"hr":                  Leaf,
	"html":                Composite,
	"i":                   Composite,
	"iframe":              Composite,
	"image":               Composite,
	"img":                 Leaf,
	"input":               Leaf,
	"ins":                 Composite,
	"kbd":                 Composite,
	"label":               Composite,
	"legend":              Composite,
	"li":                  Composite,
	"line":                Composite,
	"linearGradient":      Composite,
	"link":                Leaf,
	"main":                Composite,
	"map":                 Composite,
	"mark":                Composite,
	"marker":              Composite,
	"mask":                Composite,
	"meta":                Leaf,
	"metadata":            Composite,
	"meter":               Composite,
	"mpath":               Composite,
	"nav":                 Composite,
	"nobr":                Composite,
	"noscript":            Composite,
	"object":              Composite,
	"ol":                  Composite,
	"optgroup":            Composite,
	"option":              Composite,
	"output":              Composite,
	"p":                   Composite,
	"param":               Leaf,
	"path":                Composite,
	"pattern":             Composite,
	"picture":             Composite,
	"polygon":             Composite,
	"polyline":            Composite,
	"pre":                 Composite,
	"profile":             Composite,
	"progress":            Composite,
	"q":                   Composite,
	"radialGradient":      Composite,
	"rect":                Composite,
	"rp":                  Composite,
	"rt":                  Composite,
	"ruby":                Composite,
	"s":                   Composite,
	"samp":                Composite,
	"script":              RawTextChild,
	"section":             Composite,
	"select":              Composite,
	"set":                 Composite,
	"small":               Composite,
	"solidcolor":          Composite,
	"source":              Leaf,
	"span":                Composite,
	"stop":                Composite,
	"strong":              Composite,
	"style":               RawTextChild,
	"sub":                 Composite,
	"summary":             Composite,
	"sup":                 Composite,
	"svg":                 Composite,
	"switch":              Composite,
	"symbol":              Composite,
	"table":               Composite,
	"tbody":               Composite,
	"td":                  Composite,
	"template":            Composite,
	"text":                Composite,
	"textPath":            Composite,
	"textarea":            SingleChild,
	"tfoot":               Composite,
	"th":                  Composite,
	"thead":               Composite,
	"time":                Composite,
	"title":               SingleChild,
	"tr":                  Composite,
	"track":               Leaf,
	"tspan":               Composite,
	"u":                   Composite,
	"ul":                  Composite,
	"use":                 Composite,
	"var":                 Composite,
	"video":               Composite,
	"view":                Composite,
	"wbr":                 Leaf,
}

// Variant is the element variant a tag name instantiates.
type Variant uint8

const (
	Composite    Variant = iota // zero or more children
	Leaf                        // no children, <name />
	SingleChild                 // exactly one child
	RawTextChild                // one child kept unescaped
)

// String returns the string representation of the Variant.
func (v Variant) String() string {
	switch v {
	case Composite:
		return "composite"
	case Leaf:
		return "leaf"
	case SingleChild:
		return "single-child"
	case RawTextChild:
		return "raw-text"
	default:
		return "unknown"
	}
}

// VariantOf returns the variant for a tag name. Unknown names are composite.
func VariantOf(name string) Variant {
	return Tags[name]
}

// New builds the tag called name with the given attributes and children.
// It is the entry point for callers that only know the tag name at run
// time, such as the YAML loader.
func New(name string, attrs []any, children ...any) (element.Tag, error) {
	switch VariantOf(name) {
	case Leaf:
		t, err := element.NewLeafTag(name, attrs...)
		if err != nil {
			return nil, err
		}
		return t.WithChildren(children...)
	case SingleChild, RawTextChild:
		var (
			t   element.SingleChildTag
			err error
		)
		if VariantOf(name) == RawTextChild {
			t, err = element.NewRawTextTag(name, attrs...)
		} else {
			t, err = element.NewSingleChildTag(name, attrs...)
		}
		if err != nil {
			return nil, err
		}
		return t.WithChildren(children...)
	default:
		t, err := element.NewCompositeTag(name, attrs...)
		if err != nil {
			return nil, err
		}
		return t.WithChildren(children...)
	}
}

func composite(name string, args []any) element.CompositeTag {
	return element.Must(element.NewCompositeTag(name, args...))
}

func leaf(name string, args []any) element.LeafTag {
	return element.Must(element.NewLeafTag(name, args...))
}

func single(name string, args []any) element.SingleChildTag {
	return element.Must(element.NewSingleChildTag(name, args...))
}

func raw(name string, args []any) element.SingleChildTag {
	return element.Must(element.NewRawTextTag(name, args...))
}
