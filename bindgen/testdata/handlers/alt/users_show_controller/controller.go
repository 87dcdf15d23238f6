package users_show_controller

import "context"

type Controller struct{}

func (Controller) Handle(ctx context.Context) error {
	_ = ctx
	return nil
}
