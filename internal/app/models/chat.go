package models

import (
	"time"

	"github.com/google/uuid"
)

// Role identifies the author of a chat message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// ChatErrorMessage is appended to the transcript when the assistant cannot be reached.
const ChatErrorMessage = "Sorry, I couldn't reach the travel assistant. Please try again."

// ChatMessage is one turn of the transcript. Messages are never mutated after creation.
type ChatMessage struct {
	ID        uuid.UUID `json:"id"`
	Role      Role      `json:"role"`
	Content   string    `json:"content"`
	Markdown  bool      `json:"markdown,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// NewChatMessage creates a message stamped with a fresh ID and the current time.
func NewChatMessage(role Role, content string, markdown bool) ChatMessage {
	return ChatMessage{
		ID:        uuid.New(),
		Role:      role,
		Content:   content,
		Markdown:  markdown,
		CreatedAt: time.Now().UTC(),
	}
}

func (m ChatMessage) IsUser() bool {
	return m.Role == RoleUser
}
