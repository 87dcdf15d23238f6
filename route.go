// Package routebind is the runtime half of the routebind generator.
// Generated binding files reference the descriptors declared here; nothing
// in this package depends on the generation pipeline under bindgen.
package routebind

// None marks the absence of an input or output shape. Generated aliases use
// it when a route's handler declares no Input member or returns nothing
// serializable.
type None struct{}

// Meta is the static metadata baked into a generated route descriptor.
type Meta struct {
	// Path is the route's path template, with parameters written as
	// {{ name }} placeholders.
	Path string

	// Method is the canonical HTTP method for the route.
	Method string

	// Form indicates the route expects a form submission rather than a
	// JSON body.
	Form bool
}

// Route is an immutable descriptor for one generated route.
//
// The In and Out type parameters carry the route's request and response
// shapes for compile-time checking only; they add no runtime payload. Use
// Path to build a concrete request path from the route's template.
type Route[In, Out any] struct {
	meta Meta
}

// Register wraps static route metadata into a typed descriptor. It is
// called by generated code; there is rarely a reason to call it by hand.
func Register[In, Out any](meta Meta) Route[In, Out] {
	return Route[In, Out]{meta: meta}
}

// Method returns the route's canonical HTTP method.
func (r Route[In, Out]) Method() string { return r.meta.Method }

// Form reports whether the route expects a form submission.
func (r Route[In, Out]) Form() bool { return r.meta.Form }

// Template returns the raw path template with its placeholders intact.
func (r Route[In, Out]) Template() string { return r.meta.Path }

// Path builds a concrete request path by substituting params into the
// route's template. Routes without path parameters accept nil.
func (r Route[In, Out]) Path(params map[string]string) (string, error) {
	return Interpolate(r.meta.Path, params)
}
