package bindgen

import (
	"fmt"
	"strings"
)

// The fatal error taxonomy. Each carries the offending route, segment, or
// name so failures can be diagnosed without re-running the pipeline. Skips
// are not errors; they are reported on the Result.

// ConfigError reports a malformed group key or prefix pattern, detected
// when configuration is loaded.
type ConfigError struct {
	Key    string
	Value  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config: group %q: %s (got %q)", e.Key, e.Reason, e.Value)
}

// NamingError reports a handler package whose final path segment lacks the
// required _controller suffix.
type NamingError struct {
	Pattern string
	Pkg     string
}

func (e *NamingError) Error() string {
	return fmt.Sprintf("route %s: handler package %q must end with _controller", e.Pattern, e.Pkg)
}

// PathError reports a route pattern segment that cannot be rewritten into
// a generated path template.
type PathError struct {
	Pattern string
	Segment string
	Reason  string
}

func (e *PathError) Error() string {
	return fmt.Sprintf("route %s: segment %q: %s", e.Pattern, e.Segment, e.Reason)
}

// CollisionError reports two routes that resolved to the same derived key
// or the same controller package.
type CollisionError struct {
	Kind    string // "key" or "controller"
	Value   string
	Pattern string
	Prior   string
}

func (e *CollisionError) Error() string {
	return fmt.Sprintf("route %s: duplicate %s %q, already registered by %s", e.Pattern, e.Kind, e.Value, e.Prior)
}

// ToolError reports a failed external tool invocation with its captured
// output attached.
type ToolError struct {
	Tool   string
	Args   []string
	Output []byte
	Err    error
}

func (e *ToolError) Error() string {
	msg := fmt.Sprintf("tool %s (%s) failed", e.Tool, strings.Join(e.Args, " "))
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	if len(e.Output) > 0 {
		msg += "\n" + strings.TrimSpace(string(e.Output))
	}
	return msg
}

func (e *ToolError) Unwrap() error { return e.Err }
