package contact

import (
	"time"

	"github.com/uptrace/bun"
)

// Ticket statuses
const (
	StatusNew      = "new"
	StatusNotified = "notified"
)

// Ticket represents a stored contact-sales submission
type Ticket struct {
	bun.BaseModel `bun:"table:contact_tickets,alias:ct"`

	ID        string    `bun:"id,pk,type:uuid"`
	FirstName string    `bun:"first_name"`
	LastName  string    `bun:"last_name"`
	Email     string    `bun:"email"`
	Company   string    `bun:"company"`
	Phone     string    `bun:"phone"`
	Message   string    `bun:"message"`
	Source    string    `bun:"source"`
	UserID    *string   `bun:"user_id,type:uuid"`
	Status    string    `bun:"status"`
	CreatedAt time.Time `bun:"created_at"`
}

// SubmitRequest is the request body for a contact submission
type SubmitRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Company   string `json:"company"`
	Phone     string `json:"phone,omitempty"`
	Message   string `json:"message"`
	Source    string `json:"source,omitempty"`
}

// SubmitResponse is returned after a successful submission
type SubmitResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}
