// Package href builds absolute URLs.
package href

import (
	"net/url"
	"strings"
)

// Params are query parameters. Repeated values produce repeated keys.
type Params map[string][]string

// URL joins scheme, domain and path segments and appends params encoded in
// key order, e.g.
//
//	URL("https", "foo.com", []string{"bar"}, Params{"page": {"1"}, "sortby": {"id", "date"}})
//	// https://foo.com/bar?page=1&sortby=id&sortby=date
func URL(scheme, domain string, paths []string, params Params) string {
	var b strings.Builder
	b.WriteString(scheme)
	b.WriteString("://")
	b.WriteString(domain)
	for _, p := range paths {
		b.WriteByte('/')
		b.WriteString(url.PathEscape(p))
	}
	if len(params) > 0 {
		b.WriteByte('?')
		b.WriteString(url.Values(params).Encode())
	}
	return b.String()
}

// HTTPS is URL with the https scheme.
func HTTPS(domain string, paths []string, params Params) string {
	return URL("https", domain, paths, params)
}

// HTTP is URL with the http scheme.
func HTTP(domain string, paths []string, params Params) string {
	return URL("http", domain, paths, params)
}
