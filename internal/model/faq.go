package model

import "time"

// FAQ is a question/answer pair shown on the public site.
type FAQ struct {
	ID           int64     `json:"id"`
	Question     string    `json:"question" validate:"required"`
	Answer       string    `json:"answer" validate:"required"`
	Category     string    `json:"category"`
	DisplayOrder int       `json:"display_order" validate:"gte=0"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// FAQPatch holds fields that can be updated on a FAQ.
type FAQPatch struct {
	Question     *string
	Answer       *string
	Category     *string
	DisplayOrder *int
	Active       *bool
}

// FAQListOptions filters FAQ listings.
type FAQListOptions struct {
	ActiveOnly bool
}
