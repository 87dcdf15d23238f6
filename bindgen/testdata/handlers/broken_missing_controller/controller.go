package broken_missing_controller

// Helper is not the declaration the generator looks for.
type Helper struct{}
