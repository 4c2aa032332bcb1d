package chat

import (
	"time"

	"github.com/seojinpark/talktemplate/client/internal/model/template"
)

// Message roles within a conversation.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message persists individual turns of a conversation.
type Message struct {
	ID             string          `json:"id"`
	ConversationID string          `json:"conversationId"`
	Role           string          `json:"role"`
	Content        string          `json:"content"`
	Draft          *template.Draft `json:"draft,omitempty"`
	CreatedAt      time.Time       `json:"createdAt"`
}
