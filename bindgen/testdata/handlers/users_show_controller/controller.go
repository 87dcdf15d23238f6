package users_show_controller

import "context"

// ShowInput is the request shape for the show page.
type ShowInput struct {
	ID string `json:"id"`
}

type ShowResult struct {
	ID    string   `json:"id"`
	Name  string   `json:"name"`
	Tags  []string `json:"tags"`
	Score *int     `json:"score,omitempty"`

	// Neither of these survives serialization.
	Reload  func() `json:"-"`
	Refresh func()

	hidden int
}

type Controller struct {
	Input ShowInput
}

func (Controller) Handle(ctx context.Context) (ShowResult, error) {
	_ = ctx
	return ShowResult{}, nil
}
