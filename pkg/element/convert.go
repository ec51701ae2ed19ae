package element

import (
	"reflect"

	"github.com/vango-dev/htmldoom/internal/errors"
)

// ToElement converts a child value to an Element. A nil value converts to a
// nil Element.
func ToElement(v any) (Element, error) {
	switch c := v.(type) {
	case nil:
		return nil, nil
	case Element:
		return c, nil
	case string:
		return EscapedText(c), nil
	case []byte:
		return RawText(string(c)), nil
	case func() Element:
		return ToElement(c())
	case func() string:
		return EscapedText(c()), nil
	case func() []byte:
		return RawText(string(c())), nil
	case func() CompositeTag:
		return c(), nil
	case func() SingleChildTag:
		return c(), nil
	case func() LeafTag:
		return c(), nil
	default:
		if r, ok := Call(v); ok {
			return ToElement(r)
		}
		return nil, errors.New("E004").WithDetailf("%v: expected string, []byte, element or func but got %T", v, v)
	}
}

// Call invokes v when it is a func that can be called without arguments
// and returns one value, such as an uncalled el.Br. ok is false otherwise.
func Call(v any) (result any, ok bool) {
	fn := reflect.ValueOf(v)
	if fn.Kind() != reflect.Func || fn.IsNil() {
		return nil, false
	}
	ft := fn.Type()
	if ft.NumOut() != 1 {
		return nil, false
	}
	if ft.NumIn() != 0 && (ft.NumIn() != 1 || !ft.IsVariadic()) {
		return nil, false
	}
	return fn.Call(nil)[0].Interface(), true
}

// ToElements converts child values in order, flattening slices and
// dropping nils.
func ToElements(vs ...any) ([]Element, error) {
	if len(vs) == 0 {
		return nil, nil
	}
	out := make([]Element, 0, len(vs))
	for _, v := range vs {
		switch c := v.(type) {
		case []Element:
			for _, el := range c {
				if el != nil {
					out = append(out, el)
				}
			}
			continue
		case []any:
			els, err := ToElements(c...)
			if err != nil {
				return nil, err
			}
			out = append(out, els...)
			continue
		}
		el, err := ToElement(v)
		if err != nil {
			return nil, err
		}
		if el != nil {
			out = append(out, el)
		}
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out, nil
}

// toRawElement is ToElement for raw text tags: strings are kept verbatim.
func toRawElement(v any) (Element, error) {
	switch c := v.(type) {
	case string:
		return RawText(c), nil
	case func() string:
		return RawText(c()), nil
	}
	return ToElement(v)
}

// isChildArg reports whether a constructor argument is child content.
func isChildArg(v any) bool {
	switch v.(type) {
	case Element, []Element, []byte,
		func() Element, func() string, func() []byte,
		func() CompositeTag, func() SingleChildTag, func() LeafTag:
		return true
	}
	fn := reflect.TypeOf(v)
	return fn != nil && fn.Kind() == reflect.Func && fn.NumOut() == 1 &&
		(fn.NumIn() == 0 || fn.NumIn() == 1 && fn.IsVariadic())
}
