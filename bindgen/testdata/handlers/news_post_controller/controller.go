package news_post_controller

import (
	"context"
	"time"
)

type PostInput struct {
	Title string   `json:"title"`
	Body  string   `json:"body"`
	Tags  []string `json:"tags,omitempty"`
}

type Author struct {
	Name string `json:"name"`
}

type PostResult struct {
	ID        int64     `json:"id"`
	Author    Author    `json:"author"`
	CreatedAt time.Time `json:"created_at"`
}

type Controller struct {
	Input PostInput
}

func (Controller) Handle(ctx context.Context) (*PostResult, error) {
	_ = ctx
	return nil, nil
}

func (Controller) Form() bool { return true }
