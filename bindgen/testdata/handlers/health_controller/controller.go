package health_controller

import "context"

// Controller answers health probes; it declares no input and returns no
// body.
type Controller struct{}

func (Controller) Handle(ctx context.Context) error {
	_ = ctx
	return nil
}
