package domain

import "time"

// User is the domain model for registered accounts.
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// PublicUser is the read-only projection exposed by user listings.
// Department and AccessLevel are sourced from the bound profile and stay
// empty when no profile row exists.
type PublicUser struct {
	ID          string
	Username    string
	Email       string
	Department  string
	AccessLevel string
}
