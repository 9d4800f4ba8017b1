package models

import "time"

// SavedJob is a seeker's bookmark of a job, independent of applying.
// JobTitle and Company are denormalized at save time. At most one row
// exists per (JobSeekerID, JobID); a successful application for the same
// pair removes the bookmark.
type SavedJob struct {
	ID          string    `json:"id"`
	JobSeekerID string    `json:"jobSeekerId"`
	JobID       string    `json:"jobId"`
	JobTitle    string    `json:"jobTitle"`
	Company     string    `json:"company"`
	SavedAt     time.Time `json:"savedAt"`
}
