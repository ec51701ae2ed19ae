package loader

import (
	"fmt"
	"io/fs"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vango-dev/htmldoom/internal/errors"
	"github.com/vango-dev/htmldoom/pkg/element"
	"github.com/vango-dev/htmldoom/pkg/render"
)

const exampleFormat = `leaf tag <tag />:
  tag: [{}]
composite tag <tag></tag>:
  tag: [[]]
attributes <tag a b="v" />:
  tag: [{ a: true, b: v }]
children <tag>v1 v2</tag>:
  tag: [[ v1, " ", v2 ]]
attributes and children:
  tag:
  - a: true
    b: v
  - - v1
    - " "
    - v2`

// LoadYAML reads a YAML component from name. A non-empty directive is a
// dot-separated path to the component inside the document.
func LoadYAML(fsys fs.FS, name, directive string) (element.Element, error) {
	return New(fsys).LoadYAML(name, directive)
}

// LoadYAML reads a YAML component from name.
func (l *Loader) LoadYAML(name, directive string) (element.Element, error) {
	data, err := fs.ReadFile(l.FS, name)
	if err != nil {
		return nil, errors.New("E045").WithDetail(name).Wrap(err)
	}
	return ParseYAML(l.renderer(), name, data, directive)
}

// ParseYAML parses a YAML component document. name is used in errors only.
func ParseYAML(r *render.Renderer, name string, data []byte, directive string) (element.Element, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.New("E043").WithDetailf("%s: %v", name, err).Wrap(err)
	}

	node := &doc
	if node.Kind == 0 {
		return nil, nil
	}
	if node.Kind == yaml.DocumentNode {
		if len(node.Content) == 0 {
			return nil, nil
		}
		node = node.Content[0]
	}

	if directive != "" {
		for _, key := range strings.Split(directive, ".") {
			next := lookup(node, key)
			if next == nil {
				return nil, errors.New("E044").
					WithDetailf("%s: %q has no %q", name, directive, key)
			}
			node = next
		}
	}

	p := parser{name: name, src: data, renderer: r}
	return p.parse(node)
}

// lookup returns the value node for key in a mapping node.
func lookup(n *yaml.Node, key string) *yaml.Node {
	if n.Kind == yaml.AliasNode {
		n = n.Alias
	}
	if n.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		if n.Content[i].Value == key {
			return n.Content[i+1]
		}
	}
	return nil
}

type parser struct {
	name     string
	src      []byte
	renderer *render.Renderer
}

// parse converts a node: mappings are tags, sequences render to raw text
// and scalars are text.
func (p parser) parse(n *yaml.Node) (element.Element, error) {
	switch n.Kind {
	case yaml.AliasNode:
		return p.parse(n.Alias)
	case yaml.MappingNode:
		return p.tag(n)
	case yaml.SequenceNode:
		children, err := p.children(n)
		if err != nil {
			return nil, err
		}
		html, err := p.renderer.Render(children...)
		if err != nil {
			return nil, err
		}
		return element.RawText(html), nil
	case yaml.ScalarNode:
		if n.Tag == "!!null" {
			return nil, nil
		}
		return element.EscapedText(n.Value), nil
	default:
		return nil, p.formatError(n, "unexpected node")
	}
}

func (p parser) children(n *yaml.Node) ([]any, error) {
	out := make([]any, 0, len(n.Content))
	for _, c := range n.Content {
		child, err := p.parse(c)
		if err != nil {
			return nil, err
		}
		if child != nil {
			out = append(out, child)
		}
	}
	return out, nil
}

// tag converts a single-key mapping such as {p: [{class: row}, [x]]}.
func (p parser) tag(n *yaml.Node) (element.Element, error) {
	if len(n.Content) != 2 {
		return nil, p.formatError(n, fmt.Sprintf("expected exactly one tag name, got %d keys", len(n.Content)/2))
	}
	name, values := n.Content[0].Value, n.Content[1]
	if values.Kind != yaml.SequenceNode || len(values.Content) == 0 || len(values.Content) > 2 {
		return nil, p.formatError(values, fmt.Sprintf("%s: expected a list of [attributes], [children] or both", name))
	}

	var attrsNode, innerNode *yaml.Node
	switch {
	case len(values.Content) == 1 && values.Content[0].Kind == yaml.MappingNode:
		attrsNode = values.Content[0]
	case len(values.Content) == 1 && values.Content[0].Kind == yaml.SequenceNode:
		innerNode = values.Content[0]
	case len(values.Content) == 2 &&
		values.Content[0].Kind == yaml.MappingNode &&
		values.Content[1].Kind == yaml.SequenceNode:
		attrsNode, innerNode = values.Content[0], values.Content[1]
	default:
		return nil, p.formatError(values, name+": expected a list of [attributes], [children] or both")
	}

	var attrs []any
	if attrsNode != nil {
		for i := 0; i+1 < len(attrsNode.Content); i += 2 {
			k, v := attrsNode.Content[i], attrsNode.Content[i+1]
			switch {
			case v.Kind == yaml.ScalarNode && v.Tag == "!!bool" && strings.EqualFold(v.Value, "true"):
				attrs = append(attrs, k.Value)
			case v.Kind == yaml.ScalarNode && v.Tag == "!!str":
				attrs = append(attrs, element.KV(k.Value, v.Value))
			default:
				return nil, p.formatError(v, fmt.Sprintf("%s: attribute %q: expected true or a string", name, k.Value))
			}
		}
	}

	if innerNode == nil {
		t, err := element.NewLeafTag(name, attrs...)
		if err != nil {
			return nil, err
		}
		return t, nil
	}

	// The inner list becomes one raw child, so any tag name holds any
	// number of values.
	inner, err := p.parse(innerNode)
	if err != nil {
		return nil, err
	}
	tag, err := element.NewCompositeTag(name, attrs...)
	if err != nil {
		return nil, err
	}
	if inner == element.RawText("") {
		return tag, nil
	}
	tag, err = tag.WithChildren(inner)
	if err != nil {
		return nil, err
	}
	return tag, nil
}

func (p parser) formatError(n *yaml.Node, detail string) error {
	e := errors.New("E043").
		WithDetail(detail).
		WithExample(exampleFormat)
	e.Location = &errors.Location{File: p.name, Line: n.Line, Column: n.Column}
	return e.WithContext(contextLines(p.src, n.Line, 5))
}

func contextLines(src []byte, line, size int) []string {
	lines := strings.Split(string(src), "\n")
	start, end := line-1-size/2, line+size/2
	if start < 0 {
		start = 0
	}
	if end > len(lines) {
		end = len(lines)
	}
	if start >= end {
		return nil
	}
	return lines[start:end]
}
