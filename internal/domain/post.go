package domain

import "time"

type PostStatus int

const (
	PostDraft     PostStatus = 0
	PostPublished PostStatus = 1
)

type Post struct {
	ID         int64      `gorm:"primaryKey" json:"id"`
	Title      string     `gorm:"type:varchar(200);not null" json:"title"`
	Slug       string     `gorm:"type:varchar(200);uniqueIndex;not null" json:"slug"`
	TeaserText string     `gorm:"type:varchar(200)" json:"teaser_text"`
	Content    string     `gorm:"type:text" json:"content"`
	// Comma-separated tag list, lowercase.
	Tags      string     `gorm:"type:varchar(500)" json:"tags"`
	Status    PostStatus `gorm:"default:0;index" json:"status"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func (Post) TableName() string { return "posts" }
