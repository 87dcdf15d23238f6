package bindgen

// history tracks the derived keys and controller packages claimed by
// previously accepted routes. Both are globally unique within a run: a
// duplicate means the generator cannot name the route (or pick a winning
// route for the controller) without silently dropping something, so
// collisions are fatal rather than skips.
type history struct {
	keys        map[string]string // key -> claiming route pattern
	controllers map[string]string // controller package -> claiming route pattern
}

func newHistory() *history {
	return &history{
		keys:        make(map[string]string),
		controllers: make(map[string]string),
	}
}

// claim registers a route's key and controller package, failing with a
// CollisionError when either is already held.
func (h *history) claim(key, controllerPkg, pattern string) error {
	if prior, ok := h.controllers[controllerPkg]; ok {
		return &CollisionError{Kind: "controller", Value: controllerPkg, Pattern: pattern, Prior: prior}
	}
	if prior, ok := h.keys[key]; ok {
		return &CollisionError{Kind: "key", Value: key, Pattern: pattern, Prior: prior}
	}
	h.controllers[controllerPkg] = pattern
	h.keys[key] = pattern
	return nil
}
