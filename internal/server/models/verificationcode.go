package models

import "time"

// VerificationCode is a pending email-verification code with its expiry.
// Stored keyed by email so the flow survives process restarts.
type VerificationCode struct {
	Email   string
	Code    string
	Expires time.Time
}
