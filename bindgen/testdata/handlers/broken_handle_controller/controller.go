package broken_handle_controller

type Controller struct{}

// Process is not Handle.
func (Controller) Process() error { return nil }
