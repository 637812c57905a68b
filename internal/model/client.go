package model

import "time"

// Client is a registry client record managed from the admin console.
// ISIN is stored verbatim; uniqueness is not enforced.
type Client struct {
	ID           int64     `json:"id"`
	SerialNumber string    `json:"serial_number"`
	CompanyName  string    `json:"company_name" validate:"required"`
	SecurityType string    `json:"security_type"`
	ISINCode     string    `json:"isin_code"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ClientPatch holds fields that can be updated on a client.
type ClientPatch struct {
	SerialNumber *string
	CompanyName  *string
	SecurityType *string
	ISINCode     *string
	Active       *bool
}
