package model

import "time"

// Organization is a community group that owns facilities, events, campaigns, polls
// and volunteer opportunities.
type Organization struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Location     string    `json:"location"`
	ContactEmail string    `json:"contact_email"`
	Website      string    `json:"website"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
