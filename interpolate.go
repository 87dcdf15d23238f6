package routebind

import (
	"fmt"
	"regexp"
	"strings"
)

// placeholderPattern matches one {{ name }} placeholder in a path template.
// Parameter names are letters only; the generator enforces the same rule
// before a template is ever emitted.
var placeholderPattern = regexp.MustCompile(`\{\{ ([A-Za-z]+) \}\}`)

// Interpolate substitutes params into template, replacing every {{ name }}
// placeholder with the named parameter's value. It returns an error naming
// the missing parameters if any placeholder has no corresponding entry.
//
// Interpolate is pure and safe for concurrent use.
func Interpolate(template string, params map[string]string) (string, error) {
	var missing []string
	out := placeholderPattern.ReplaceAllStringFunc(template, func(match string) string {
		name := strings.Trim(match, "{} ")
		value, ok := params[name]
		if !ok {
			missing = append(missing, name)
			return match
		}
		return value
	})
	if len(missing) > 0 {
		return "", fmt.Errorf("interpolate %q: missing parameters: %s", template, strings.Join(missing, ", "))
	}
	return out, nil
}
