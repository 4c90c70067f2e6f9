package model

import "time"

// VolunteerOpportunity offers a fixed number of spots; SpotsFilled stays within [0, SpotsAvailable].
type VolunteerOpportunity struct {
	ID             string    `json:"id"`
	OrganizationID string    `json:"organization_id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Location       string    `json:"location"`
	StartsAt       time.Time `json:"starts_at"`
	SpotsAvailable int       `json:"spots_available"`
	SpotsFilled    int       `json:"spots_filled"`
	CreatedAt      time.Time `json:"created_at"`
}

// VolunteerSignup links a user to an opportunity.
type VolunteerSignup struct {
	ID            string    `json:"id"`
	OpportunityID string    `json:"opportunity_id"`
	UserID        string    `json:"user_id"`
	CreatedAt     time.Time `json:"created_at"`
}
