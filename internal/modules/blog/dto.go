package blog

import "time"

type PostSummary struct {
	Slug       string    `json:"slug" example:"first-post"`
	Title      string    `json:"title" example:"First post"`
	TeaserText string    `json:"teaser_text"`
	Tags       []string  `json:"tags"`
	CreatedAt  time.Time `json:"created_at"`
}

type PostDetail struct {
	Slug      string    `json:"slug"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Tags      []string  `json:"tags"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
