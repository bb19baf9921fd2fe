package entities

import "time"

// Notification is an in-app notice delivered to a platform user.
//
// Storage model (DynamoDB):
//   - PK: user_id
//   - SK: created_at
//
// Writes are best effort: a failed notification must never fail or roll
// back the operation that triggered it.
type Notification struct {
	ID        string         `json:"id"`
	UserID    string         `json:"user_id"`
	Type      string         `json:"type"`
	Title     string         `json:"title"`
	Message   string         `json:"message"`
	Data      map[string]any `json:"data,omitempty"`
	Read      bool           `json:"read"`
	CreatedAt time.Time      `json:"created_at"`
}
