package tmpl

import "github.com/vango-dev/htmldoom/pkg/element"

// Func renders a template from an argument of type A.
type Func[A any] func(A) (element.RawText, error)

// Bind pairs a template with a binding function computing its values.
func Bind[A any](t *Template, f func(A) Values) Func[A] {
	return func(arg A) (element.RawText, error) {
		return t.Execute(f(arg))
	}
}

// Renders compiles the skeleton immediately and returns a decorator that
// binds it to a values function. It panics if the skeleton does not compile,
// so it suits package-level declarations.
func Renders[A any](skeleton ...any) func(f func(A) Values) Func[A] {
	t := MustCompile(skeleton...)
	return func(f func(A) Values) Func[A] {
		return Bind(t, f)
	}
}

// Must is the Func counterpart of MustCompile: it returns a function that
// panics instead of returning an error.
func (fn Func[A]) Must() func(A) element.RawText {
	return func(arg A) element.RawText {
		out, err := fn(arg)
		if err != nil {
			panic(err)
		}
		return out
	}
}
