package bindgen

import (
	"regexp"
	"strings"
)

var (
	paramNamePattern      = regexp.MustCompile(`^[A-Za-z]+$`)
	literalSegmentPattern = regexp.MustCompile(`^[a-z0-9-]+$`)
)

// rewritePath validates each segment of pattern and rewrites :name
// parameter segments into {{ name }} placeholders. A segment that is
// neither a well-formed parameter nor lowercase-alphanumeric-with-hyphen
// is a fatal PathError: an unparsable path cannot be emitted into
// generated code.
func rewritePath(pattern string) (string, error) {
	if !strings.HasPrefix(pattern, "/") {
		return "", &PathError{Pattern: pattern, Segment: pattern, Reason: "pattern must start with /"}
	}
	if pattern == "/" {
		return "/", nil
	}

	segments := strings.Split(pattern[1:], "/")
	rewritten := make([]string, len(segments))
	for i, segment := range segments {
		switch {
		case strings.HasPrefix(segment, ":"):
			name := segment[1:]
			if !paramNamePattern.MatchString(name) {
				return "", &PathError{Pattern: pattern, Segment: segment, Reason: "parameter name must be letters only"}
			}
			rewritten[i] = "{{ " + name + " }}"
		case literalSegmentPattern.MatchString(segment):
			rewritten[i] = segment
		default:
			return "", &PathError{Pattern: pattern, Segment: segment, Reason: "literal segment must be lowercase alphanumeric or hyphen"}
		}
	}
	return "/" + strings.Join(rewritten, "/"), nil
}

// resolveMethod picks the canonical HTTP method for a route registered
// under several. HEAD never wins; among the rest, the last declared method
// does. Routes with no usable method default to GET.
func resolveMethod(methods []string) string {
	resolved := "GET"
	for _, m := range methods {
		if strings.EqualFold(m, "HEAD") {
			continue
		}
		resolved = strings.ToUpper(m)
	}
	return resolved
}
