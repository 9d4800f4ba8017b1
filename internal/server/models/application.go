package models

import "time"

// Application is a job seeker's submission for one job. At most one
// application exists per (JobSeekerID, JobID) pair; the applications table
// enforces this with a unique index. ResumeKey is the object-store key of
// the uploaded resume artifact.
type Application struct {
	ID          string    `json:"id"`
	JobSeekerID string    `json:"jobSeekerId"`
	JobID       string    `json:"jobId"`
	CoverLetter string    `json:"coverLetter"`
	ResumeKey   string    `json:"resume"`
	Status      string    `json:"status"`
	AppliedAt   time.Time `json:"appliedAt"`
}

// ApplicationWithJob is an application joined with the minimal job fields
// a seeker's application list needs.
type ApplicationWithJob struct {
	Application
	JobTitle    string `json:"jobTitle"`
	Company     string `json:"company"`
	JobLocation string `json:"jobLocation"`
	JobType     string `json:"jobType"`
}

// Applicant is an application joined with the applicant's identity, as
// shown on the employer's review screen.
type Applicant struct {
	ApplicationID string    `json:"applicationId"`
	JobID         string    `json:"jobId"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	CoverLetter   string    `json:"coverLetter"`
	ResumeKey     string    `json:"resume"`
	Status        string    `json:"status"`
	AppliedAt     time.Time `json:"appliedAt"`
}

// JobApplicants groups the applicants against one job. Jobs with zero
// applicants keep an empty (non-nil) Applicants slice.
type JobApplicants struct {
	Job        Job         `json:"job"`
	Applicants []Applicant `json:"applicants"`
}
