package entities

import "time"

// TimelineEvent is an append-only audit entry of an order.
type TimelineEvent struct {
	ID        string    `json:"id"`
	OrderID   string    `json:"os_id"`
	Event     string    `json:"evento"`
	CreatedAt time.Time `json:"created_at"`
	UserID    *string   `json:"user_id,omitempty"`
}
