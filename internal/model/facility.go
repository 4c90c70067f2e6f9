package model

import "time"

// BookingStatus is the lifecycle state of a FacilityBooking.
type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
)

// Facility is a bookable resource such as a hall or a sports field.
type Facility struct {
	ID             string    `json:"id"`
	OrganizationID string    `json:"organization_id"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	Location       string    `json:"location"`
	Capacity       int       `json:"capacity"`
	CreatedAt      time.Time `json:"created_at"`
}

// FacilityBooking reserves the half-open interval [StartTime, EndTime) of a facility.
type FacilityBooking struct {
	ID         string        `json:"id"`
	FacilityID string        `json:"facility_id"`
	UserID     string        `json:"user_id"`
	Title      string        `json:"title"`
	StartTime  time.Time     `json:"start_time"`
	EndTime    time.Time     `json:"end_time"`
	Status     BookingStatus `json:"status"`
	CreatedAt  time.Time     `json:"created_at"`
}
