package model

import "time"

// ImageFile is a blog image stored with the blog image provider.
// URL and Path are opaque handles owned by that provider.
type ImageFile struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name" validate:"required"`
	URL          string    `json:"url" validate:"required"`
	Path         string    `json:"path"`
	Subtitle     string    `json:"subtitle,omitempty"`
	DisplayOrder int       `json:"display_order"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ImageFilePatch holds the metadata fields that can be updated on an image.
type ImageFilePatch struct {
	Name         *string
	Subtitle     *string
	DisplayOrder *int
	Active       *bool
}

// ClientLogo is a client logo stored with the logo provider.
type ClientLogo struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name" validate:"required"`
	URL          string    `json:"url" validate:"required"`
	Path         string    `json:"path"`
	AltText      string    `json:"alt_text,omitempty"`
	DisplayOrder int       `json:"display_order"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ClientLogoPatch holds fields that can be updated on a logo.
type ClientLogoPatch struct {
	Name         *string
	URL          *string
	Path         *string
	AltText      *string
	DisplayOrder *int
	Active       *bool
}

// LogoListOptions filters logo listings.
type LogoListOptions struct {
	ActiveOnly bool
}
