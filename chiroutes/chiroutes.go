// Package chiroutes extracts route records from a chi routing table so a
// chi-based application can feed its live router straight into bindgen.
package chiroutes

import (
	"net/http"
	"regexp"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/routebind/routebind/bindgen"
)

// Resolver maps one walked route to its handler package reference.
// Returning false omits the route from the record list entirely; use it
// for routes that should never get client bindings (health checks,
// static assets).
type Resolver func(method, pattern string, handler http.Handler) (bindgen.Ref, bool)

// Records walks r's routing tree and returns one RouteRecord per pattern,
// in walk order. Methods registered for the same pattern are merged onto
// a single record in the order chi reports them.
func Records(r chi.Routes, resolve Resolver) ([]bindgen.RouteRecord, error) {
	var records []bindgen.RouteRecord
	index := make(map[string]int)

	walker := func(method, route string, handler http.Handler, _ ...func(http.Handler) http.Handler) error {
		pattern := translate(route)
		ref, ok := resolve(method, pattern, handler)
		if !ok {
			return nil
		}
		if i, exists := index[pattern]; exists {
			records[i].Methods = append(records[i].Methods, method)
			return nil
		}
		index[pattern] = len(records)
		records = append(records, bindgen.RouteRecord{
			Pattern: pattern,
			Methods: []string{method},
			Handler: ref,
		})
		return nil
	}

	if err := chi.Walk(r, walker); err != nil {
		return nil, err
	}
	return records, nil
}

// chiParamPattern matches a chi placeholder, with or without an inline
// regexp constraint.
var chiParamPattern = regexp.MustCompile(`\{([^}:]+)(?::[^}]*)?\}`)

// translate rewrites chi-style {name} parameters into :name markers and
// normalizes the trailing slash chi appends to mounted subtrees.
func translate(route string) string {
	route = chiParamPattern.ReplaceAllString(route, ":$1")
	if route != "/" {
		route = strings.TrimSuffix(route, "/")
	}
	if route == "" {
		route = "/"
	}
	return route
}
