package model

import "time"

// Campaign is a fundraising goal. Amounts are in cents.
type Campaign struct {
	ID              string     `json:"id"`
	OrganizationID  string     `json:"organization_id"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	GoalCents       int64      `json:"goal_cents"`
	RaisedCents     int64      `json:"raised_cents"`
	EndsAt          *time.Time `json:"ends_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	ProgressPercent float64    `json:"progress_percent"`
	DonationCount   int        `json:"donation_count"`
}

// Donation is a single contribution to a campaign.
type Donation struct {
	ID          string    `json:"id"`
	CampaignID  string    `json:"campaign_id"`
	UserID      string    `json:"user_id,omitempty"`
	DonorName   string    `json:"donor_name"`
	AmountCents int64     `json:"amount_cents"`
	Message     string    `json:"message"`
	Anonymous   bool      `json:"anonymous"`
	CreatedAt   time.Time `json:"created_at"`
}
