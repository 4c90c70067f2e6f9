package model

import "time"

// Document is a file attached to an organization.
// The bytes live in object storage under StoragePath; this row holds the metadata.
type Document struct {
	ID             string    `json:"id"`
	OrganizationID string    `json:"organization_id"`
	Filename       string    `json:"filename"`
	OriginalName   string    `json:"original_name"`
	StoragePath    string    `json:"storage_path"`
	Size           int64     `json:"size"`
	ContentType    string    `json:"content_type"`
	CreatedAt      time.Time `json:"created_at"`
}
