package chat

import "time"

// Conversation captures one template-creation dialogue with the assistant.
type Conversation struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"createdAt"`
}
