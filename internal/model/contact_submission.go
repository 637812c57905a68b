package model

import "time"

// Contact submission lifecycle states. Any transition between them is allowed.
const (
	ContactStatusNew       = "new"
	ContactStatusRead      = "read"
	ContactStatusResponded = "responded"
)

// DefaultContactSource tags submissions that arrive through the public contact form.
const DefaultContactSource = "contact-form"

// ContactSubmission represents a message submitted via the contact form.
type ContactSubmission struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name" validate:"required,max=200"`
	Email      string    `json:"email" validate:"required,email"`
	Phone      string    `json:"phone,omitempty"`
	Company    string    `json:"company,omitempty"`
	Service    string    `json:"service,omitempty"`
	Message    string    `json:"message" validate:"required"`
	Newsletter bool      `json:"newsletter"`
	Status     string    `json:"status" validate:"oneof=new read responded"`
	Source     string    `json:"source"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ContactSubmissionPatch holds fields that can be updated on a submission.
type ContactSubmissionPatch struct {
	Name    *string
	Email   *string
	Phone   *string
	Company *string
	Service *string
	Message *string
	Status  *string
}

// ContactListOptions carries filter parameters for listing submissions.
type ContactListOptions struct {
	// Status filters by lifecycle status. Empty string and "all" return everything.
	Status string
}

// ValidContactStatus reports whether s is one of the known lifecycle states.
func ValidContactStatus(s string) bool {
	switch s {
	case ContactStatusNew, ContactStatusRead, ContactStatusResponded:
		return true
	}
	return false
}
