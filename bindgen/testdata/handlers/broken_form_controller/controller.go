package broken_form_controller

import "context"

type Controller struct{}

func (Controller) Handle(ctx context.Context) error {
	_ = ctx
	return nil
}

func (Controller) Form() string { return "yes" }
