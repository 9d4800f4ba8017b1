package models

import "time"

// Contact is a message submitted through the contact form. EmployerID is
// optional and set when the message targets a specific employer.
type Contact struct {
	ID           string    `json:"id"`
	EmployerID   string    `json:"employerId,omitempty"`
	FullName     string    `json:"fullName"`
	EmailAddress string    `json:"emailAddress"`
	Subject      string    `json:"subject"`
	Description  string    `json:"description"`
	CreatedAt    time.Time `json:"created_at"`
}
