// Package chat drives the template-creation dialogue with the assistant.
package chat

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/seojinpark/talktemplate/client/internal/model/chat"
)

var (
	ErrTitleRequired        = errors.New("conversation title is required")
	ErrConversationNotFound = errors.New("conversation not found")
	ErrEmptyMessage         = errors.New("message content is empty")
)

const defaultTitle = "새 템플릿"

// Service encapsulates conversation state. The assistant behind it is a
// canned simulation: every user turn yields the same guidance reply and a
// fixed AlimTalk draft after a short delay.
type Service struct {
	delay time.Duration

	mu            sync.RWMutex
	conversations map[string]chat.Conversation
	messages      map[string][]chat.Message
}

// NewService bootstraps the in-memory chat service. delay is how long the
// simulated assistant "thinks" before replying.
func NewService(delay time.Duration) *Service {
	return &Service{
		delay:         delay,
		conversations: make(map[string]chat.Conversation),
		messages:      make(map[string][]chat.Message),
	}
}

// StartConversation provisions a conversation opened by the assistant's
// greeting message.
func (s *Service) StartConversation(_ context.Context, title string) (chat.Conversation, error) {
	if title == "" {
		title = defaultTitle
	}

	conv := chat.Conversation{
		ID:        uuid.NewString(),
		Title:     title,
		CreatedAt: time.Now().UTC(),
	}
	greeting := chat.Message{
		ID:             uuid.NewString(),
		ConversationID: conv.ID,
		Role:           chat.RoleAssistant,
		Content:        greetingText,
		CreatedAt:      conv.CreatedAt,
	}

	s.mu.Lock()
	s.conversations[conv.ID] = conv
	s.messages[conv.ID] = append(make([]chat.Message, 0, 16), greeting)
	s.mu.Unlock()

	return conv, nil
}

// Send records a user turn and returns the assistant's reply once the
// simulated delay has elapsed. The reply carries the template draft.
func (s *Service) Send(ctx context.Context, conversationID, content string) (chat.Message, error) {
	if content == "" {
		return chat.Message{}, ErrEmptyMessage
	}

	userMsg := chat.Message{
		ConversationID: conversationID,
		Role:           chat.RoleUser,
		Content:        content,
	}
	if err := s.saveMessage(userMsg); err != nil {
		return chat.Message{}, err
	}

	// Simulated assistant latency; a cancelled context wins.
	if s.delay > 0 {
		select {
		case <-time.After(s.delay):
		case <-ctx.Done():
			return chat.Message{}, ctx.Err()
		}
	}

	draft := draftFixture()
	reply := chat.Message{
		ConversationID: conversationID,
		Role:           chat.RoleAssistant,
		Content:        replyText,
		Draft:          &draft,
	}
	if err := s.saveMessage(reply); err != nil {
		return chat.Message{}, err
	}
	return s.lastMessage(conversationID)
}

// GetConversation retrieves a conversation by identifier.
func (s *Service) GetConversation(_ context.Context, id string) (chat.Conversation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	conv, ok := s.conversations[id]
	if !ok {
		return chat.Conversation{}, ErrConversationNotFound
	}
	return conv, nil
}

// ListConversations returns all conversations, insertion order not
// guaranteed.
func (s *Service) ListConversations(_ context.Context) []chat.Conversation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]chat.Conversation, 0, len(s.conversations))
	for _, conv := range s.conversations {
		out = append(out, conv)
	}
	return out
}

// Transcript returns the stored messages for a conversation.
func (s *Service) Transcript(_ context.Context, conversationID string) ([]chat.Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	messages, ok := s.messages[conversationID]
	if !ok {
		return nil, ErrConversationNotFound
	}

	copied := make([]chat.Message, len(messages))
	copy(copied, messages)
	return copied, nil
}

func (s *Service) saveMessage(message chat.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.conversations[message.ConversationID]; !ok {
		return ErrConversationNotFound
	}

	message.ID = uuid.NewString()
	if message.CreatedAt.IsZero() {
		message.CreatedAt = time.Now().UTC()
	}
	s.messages[message.ConversationID] = append(s.messages[message.ConversationID], message)
	return nil
}

func (s *Service) lastMessage(conversationID string) (chat.Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	messages := s.messages[conversationID]
	if len(messages) == 0 {
		return chat.Message{}, ErrConversationNotFound
	}
	return messages[len(messages)-1], nil
}
