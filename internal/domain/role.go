package domain

// Role names a capability grantable to users.
type Role string

const (
	// RoleTicketAdmin grants visibility over every ticket regardless of
	// ownership.
	RoleTicketAdmin Role = "ticket-admin"
)
