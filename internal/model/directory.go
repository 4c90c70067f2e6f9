package model

import "time"

// Business is a local enterprise listed in an organization's directory.
type Business struct {
	ID             string    `json:"id"`
	OrganizationID string    `json:"organization_id"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	Category       string    `json:"category"`
	ContactEmail   string    `json:"contact_email"`
	Phone          string    `json:"phone"`
	Website        string    `json:"website"`
	Address        string    `json:"address"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// BusinessCard is a short promotional card a business publishes.
type BusinessCard struct {
	ID         string    `json:"id"`
	BusinessID string    `json:"business_id"`
	Headline   string    `json:"headline"`
	Body       string    `json:"body"`
	LinkURL    string    `json:"link_url"`
	CreatedAt  time.Time `json:"created_at"`
}

// Group is an interest group inside an organization.
type Group struct {
	ID             string    `json:"id"`
	OrganizationID string    `json:"organization_id"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	IsPrivate      bool      `json:"is_private"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// BillingPeriod is how often a MembershipPlan is charged.
type BillingPeriod string

const (
	BillingMonthly BillingPeriod = "monthly"
	BillingYearly  BillingPeriod = "yearly"
	BillingOnce    BillingPeriod = "once"
)

// Valid reports whether p is one of the known periods.
func (p BillingPeriod) Valid() bool {
	switch p {
	case BillingMonthly, BillingYearly, BillingOnce:
		return true
	}
	return false
}

// MembershipPlan is a paid membership tier an organization offers.
type MembershipPlan struct {
	ID             string        `json:"id"`
	OrganizationID string        `json:"organization_id"`
	Name           string        `json:"name"`
	Description    string        `json:"description"`
	PriceCents     int64         `json:"price_cents"`
	BillingPeriod  BillingPeriod `json:"billing_period"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}
