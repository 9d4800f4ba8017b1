package models

import "time"

// Job is a posting owned by exactly one employer. Company and
// CompanyDescription are denormalized from the employer's profile at post
// time and not kept in sync afterward.
type Job struct {
	ID                 string    `json:"id"`
	EmployerID         string    `json:"employerId"`
	Title              string    `json:"title"`
	Description        string    `json:"description"`
	Location           string    `json:"location"`
	Type               string    `json:"type"`
	Experience         string    `json:"experience,omitempty"`
	Salary             string    `json:"salary,omitempty"`
	Skills             []string  `json:"skills,omitempty"`
	Company            string    `json:"company,omitempty"`
	CompanyDescription string    `json:"companyDescription,omitempty"`
	PostedAt           time.Time `json:"postedDate"`
}

// JobFilter narrows Job listings. Text and Location match by
// case-insensitive substring, Type and Experience exactly.
// ExcludeAppliedBy, when set to a seeker id, omits jobs that seeker has
// already applied to.
type JobFilter struct {
	Text             string
	Location         string
	Type             string
	Experience       string
	ExcludeAppliedBy string
}

// JobPatch carries the whitelisted mutable fields for a job update.
// Nil pointers leave the stored value untouched.
type JobPatch struct {
	Title              *string    `json:"title"`
	Description        *string    `json:"description"`
	Location           *string    `json:"location"`
	Type               *string    `json:"type"`
	Experience         *string    `json:"experience"`
	Salary             *string    `json:"salary"`
	Skills             *[]string  `json:"skills"`
	Company            *string    `json:"company"`
	CompanyDescription *string    `json:"companyDescription"`
	PostedAt           *time.Time `json:"postedDate"`
}
