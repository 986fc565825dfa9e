package domain

import "time"

const EventStatusChange = "status_change"

// OrderEvent is published on every successful status transition whose order
// carries an email-shaped customer field.
type OrderEvent struct {
	Type      string    `json:"type"`
	OrderID   int       `json:"order_id"`
	Status    string    `json:"status"`
	Email     string    `json:"email"`
	Timestamp time.Time `json:"timestamp"`
}
