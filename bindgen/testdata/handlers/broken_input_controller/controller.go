package broken_input_controller

import "context"

type Controller struct {
	Input string
}

func (Controller) Handle(ctx context.Context) error {
	_ = ctx
	return nil
}
