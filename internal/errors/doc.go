// Package errors provides structured, actionable error messages for htmldoom.
//
// Every failure the library reports is an *Error built from a registered
// code. The code determines the category, a short message, a longer detail
// and the sentinel Kind that errors.Is matches against:
//
//   - construction: invalid structural use of an element (children given to
//     a leaf tag, elements passed where attributes belong)
//   - render: the renderer met a value it cannot interpret
//   - template: placeholder bindings are missing, conflicting or malformed
//   - config, loader, publish, cli: the tooling around the core
//
// # Usage
//
//	err := errors.New("E001").
//	    WithDetail(`tag "br" cannot have child elements`).
//	    WithSuggestion("Use a composite tag such as div instead")
//
//	if stderrors.Is(err, errors.ErrConstruction) {
//	    fmt.Println(err.Format())
//	}
//	// Output:
//	// ERROR E001: Leaf tag cannot have child elements
//	//
//	//   tag "br" cannot have child elements
//	//
//	//   Hint: Use a composite tag such as div instead
package errors
