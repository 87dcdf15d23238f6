package bindgen

import (
	"path"
	"strings"
)

// routeName is the derived identifier pair for one route. Key is the
// UPPER_SNAKE entry name in the generated routes mapping; Type is the
// PascalCase prefix shared by the route's generated type declarations.
type routeName struct {
	Key  string
	Type string
}

// deriveName builds a route's identifier pair from its path pattern and
// its handler package path.
//
// Tokens come from two sources, in order: the pattern's non-parameter
// segments (split on ".", "/" and "-") and the handler package's final
// path segment with the _controller suffix stripped and split on "_".
// Tokens are lowercased, deduplicated keeping first occurrence, and joined
// into a phrase. Names that would start with a digit get an X prefix so
// the generated declarations stay legal identifiers.
//
// A handler package without the _controller suffix is a
// fatal NamingError: the suffix is the contract that marks a package as a
// controller, and a route pointing elsewhere means the route table and the
// handler layout disagree.
func deriveName(pattern, handlerPkg string) (routeName, error) {
	base := path.Base(handlerPkg)
	stem, found := strings.CutSuffix(base, "_controller")
	if !found || stem == "" {
		return routeName{}, &NamingError{Pattern: pattern, Pkg: handlerPkg}
	}

	var tokens []string
	for _, segment := range strings.Split(pattern, "/") {
		if segment == "" || strings.HasPrefix(segment, ":") {
			continue
		}
		tokens = append(tokens, splitTokens(segment)...)
	}
	for _, t := range strings.Split(stem, "_") {
		tokens = append(tokens, strings.ToLower(t))
	}

	words := dedupe(tokens)
	return routeName{
		Key:  identifier(strings.ToUpper(strings.Join(words, "_"))),
		Type: identifier(pascal(words)) + "Route",
	}, nil
}

// splitTokens breaks a path segment on "." and "-" and lowercases the
// pieces.
func splitTokens(segment string) []string {
	parts := strings.FieldsFunc(segment, func(r rune) bool {
		return r == '.' || r == '-'
	})
	for i, p := range parts {
		parts[i] = strings.ToLower(p)
	}
	return parts
}

// dedupe removes repeated words, keeping the first occurrence's position.
func dedupe(words []string) []string {
	seen := make(map[string]bool, len(words))
	out := words[:0]
	for _, w := range words {
		if w == "" || seen[w] {
			continue
		}
		seen[w] = true
		out = append(out, w)
	}
	return out
}

// pascal concatenates words with each first letter upcased.
func pascal(words []string) string {
	var b strings.Builder
	for _, w := range words {
		if w == "" {
			continue
		}
		b.WriteString(strings.ToUpper(w[:1]))
		b.WriteString(w[1:])
	}
	return b.String()
}

// identifier makes a derived name a legal Go identifier. Path segments and
// group keys may start with a digit; the generated declarations cannot.
func identifier(s string) string {
	if s != "" && s[0] >= '0' && s[0] <= '9' {
		return "X" + s
	}
	return s
}
