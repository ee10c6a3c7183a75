package domain

import "time"

// Profile holds the per-user contact and organizational details. Every user
// owns exactly one profile; it is created in the same transaction as the
// user row and never independently.
type Profile struct {
	ID                 string
	UserID             string
	Contact            string
	Department         string
	RealName           string
	AccessLevel        string
	ProjectAccessLevel string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
