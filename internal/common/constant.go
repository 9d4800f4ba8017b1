package common

// AuthorizationHeaderName is the HTTP header carrying the bearer token on
// authenticated routes.
const AuthorizationHeaderName = "Authorization"

// BearerPrefix is the expected scheme prefix of the Authorization header.
const BearerPrefix = "Bearer "

// User roles. Every stored user has exactly one of these.
const (
	RoleJobSeeker = "jobseeker"
	RoleEmployer  = "employer"
)

// Application statuses. New is the status every application starts with.
const (
	StatusNew         = "New"
	StatusUnderReview = "Under Review"
	StatusRejected    = "Rejected"
	StatusAccepted    = "Accepted"
)

// ValidRole reports whether role is one of the known user roles.
func ValidRole(role string) bool {
	return role == RoleJobSeeker || role == RoleEmployer
}

// ValidStatus reports whether status is one of the known application statuses.
func ValidStatus(status string) bool {
	switch status {
	case StatusNew, StatusUnderReview, StatusRejected, StatusAccepted:
		return true
	}
	return false
}
