package model

import "time"

const (
	BlogStatusDraft     = "draft"
	BlogStatusPublished = "published"
)

// BlogPost represents an article in the public blog.
type BlogPost struct {
	ID               int64      `json:"id"`
	Slug             string     `json:"slug" validate:"required"`
	Title            string     `json:"title" validate:"required"`
	Content          string     `json:"content"`
	Excerpt          string     `json:"excerpt,omitempty"`
	Author           string     `json:"author"`
	Status           string     `json:"status" validate:"oneof=draft published"`
	Category         string     `json:"category,omitempty"`
	Tags             []string   `json:"tags"`
	Views            int64      `json:"views"`
	FeaturedImageURL string     `json:"featured_image_url,omitempty"`
	PublishedAt      *time.Time `json:"published_at,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// BlogPostPatch holds fields that can be updated on a post.
type BlogPostPatch struct {
	Slug             *string
	Title            *string
	Content          *string
	Excerpt          *string
	Author           *string
	Status           *string
	Category         *string
	Tags             *[]string
	FeaturedImageURL *string
}

// BlogListOptions carries filters for listing posts.
type BlogListOptions struct {
	PublishedOnly bool
	Category      string
	Tag           string
}
