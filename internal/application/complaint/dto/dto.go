package dto

import "time"

// ComplaintDTO is the wire representation of a complaint shown on the
// dashboard.
type ComplaintDTO struct {
	ID            uint      `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Subject       string    `json:"subject"`
	Complaint     string    `json:"complaint"`
	IsNew         bool      `json:"is_new"`
	AttachmentURL *string   `json:"attachment_url,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}
