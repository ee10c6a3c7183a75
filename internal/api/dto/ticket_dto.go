package dto

import "time"

// CreateTicketRequest payload. Owner is never taken from the payload.
type CreateTicketRequest struct {
	TicketNo    string `json:"ticketNo"`
	Subject     string `json:"subject"`
	Status      string `json:"status"`
	SupportBy   string `json:"supportBy"`
	Rate        int    `json:"rate"`
	Category    string `json:"category"`
	Type        string `json:"type"`
	Priority    string `json:"priority"`
	Description string `json:"description"`
}

// UpdateTicketRequest carries a partial update; absent fields stay as they
// are. Owner and id are not accepted.
type UpdateTicketRequest struct {
	TicketNo    *string    `json:"ticketNo"`
	Subject     *string    `json:"subject"`
	Status      *string    `json:"status"`
	SupportBy   *string    `json:"supportBy"`
	Date        *time.Time `json:"date"`
	Rate        *int       `json:"rate"`
	Category    *string    `json:"category"`
	Type        *string    `json:"type"`
	Priority    *string    `json:"priority"`
	Description *string    `json:"description"`
}

// TicketResponse is the enumerated ticket view.
type TicketResponse struct {
	ID          string    `json:"id"`
	Owner       string    `json:"owner"`
	TicketNo    string    `json:"ticketNo"`
	Subject     string    `json:"subject"`
	Status      string    `json:"status"`
	SupportBy   string    `json:"supportBy"`
	Date        time.Time `json:"date"`
	Rate        int       `json:"rate"`
	Category    string    `json:"category"`
	Type        string    `json:"type"`
	Priority    string    `json:"priority"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
