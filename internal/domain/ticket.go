package domain

import "time"

// Ticket is the aggregate for support requests. Status, priority, type and
// category are opaque labels with no transition rules. The owner is fixed at
// creation time.
type Ticket struct {
	ID          string
	OwnerID     string
	TicketNo    string
	Subject     string
	Status      string
	SupportBy   string
	Date        time.Time
	Rate        int
	Category    string
	Type        string
	Priority    string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
