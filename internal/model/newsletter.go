package model

import "time"

// DefaultNewsletterSource is used when a subscription carries no source tag.
const DefaultNewsletterSource = "website"

// NewsletterSubscriber is a single newsletter subscription; Email is unique.
type NewsletterSubscriber struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	Source       string    `json:"source"`
	SubscribedAt time.Time `json:"subscribed_at"`
}
