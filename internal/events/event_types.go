package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventUserRegistered EventType = "user_registered"
	EventUserLoggedIn   EventType = "user_logged_in"
	EventTicketCreated  EventType = "ticket_created"
	EventTicketUpdated  EventType = "ticket_updated"
	EventProfileUpdated EventType = "profile_updated"
)

// Event represents a domain event emitted by services. UserID identifies the
// acting principal.
type Event struct {
	Type      EventType   `json:"type"`
	UserID    string      `json:"user_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// UserRegisteredPayload payload.
type UserRegisteredPayload struct {
	Username string `json:"username"`
}

// TicketCreatedPayload payload.
type TicketCreatedPayload struct {
	TicketID string `json:"ticket_id"`
	TicketNo string `json:"ticket_no"`
	Subject  string `json:"subject"`
}

// TicketUpdatedPayload payload.
type TicketUpdatedPayload struct {
	TicketID string   `json:"ticket_id"`
	TicketNo string   `json:"ticket_no"`
	Changed  []string `json:"changed"`
}

// ProfileUpdatedPayload payload.
type ProfileUpdatedPayload struct {
	ProfileID string   `json:"profile_id"`
	Changed   []string `json:"changed"`
}
