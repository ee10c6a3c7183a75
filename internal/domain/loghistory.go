package domain

import "time"

// LogEntry is an immutable audit trail record of a user action. Entries are
// append-only; no update or delete path exists.
type LogEntry struct {
	ID        string
	UserID    string
	Action    string
	Timestamp time.Time
	Details   string
}
