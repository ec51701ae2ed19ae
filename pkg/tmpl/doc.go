// Package tmpl compiles element trees into reusable fill-in-the-blanks
// templates.
//
// A skeleton is rendered once, at compile time, to a string holding {name}
// placeholders. Each execution renders only the supplied values and splices
// them into the precompiled string, so the tree walk happens once per
// definition rather than once per call.
//
//	var card = tmpl.Renders[User](
//	    el.Div(el.Class("card")).With(
//	        el.H2().With("{name}"),
//	        el.P().With("{bio}"),
//	    ),
//	)(func(u User) tmpl.Values {
//	    return tmpl.Values{"name": u.Name, "bio": u.Bio}
//	})
//
//	html, err := card(user)
//
// Strings are escaped and []byte values are inserted verbatim, exactly as the
// renderer treats them inside a tree. Literal braces in the skeleton are
// written as {{ and }}.
package tmpl
