// Package models defines the persisted row types shared by repositories,
// services, and the HTTP layer.
package models

import "time"

// User is an identity record. Role is one of common.RoleJobSeeker /
// common.RoleEmployer; CompanyName is set for employers only. Email is
// stored lower-cased and is unique across all users. PasswordHash is a
// bcrypt hash, never the plaintext secret.
type User struct {
	ID           string    `json:"id"`
	Role         string    `json:"role"`
	FullName     string    `json:"fullname"`
	CompanyName  string    `json:"companyname,omitempty"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
