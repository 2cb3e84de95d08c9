package models

import "time"

// MessageRole identifies the author of a chat message.
type MessageRole string

const (
	RoleUser      MessageRole = "user"
	RoleAssistant MessageRole = "assistant"
)

// Chat is a conversation bound to a trained model.
type Chat struct {
	ID        string    `json:"id"`
	ModelID   string    `json:"modelId"`
	Title     string    `json:"title"`
	Messages  []Message `json:"messages,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Message is a single turn within a chat.
type Message struct {
	ID        string      `json:"id"`
	Role      MessageRole `json:"role"`
	Content   string      `json:"content"`
	CreatedAt time.Time   `json:"createdAt"`
}

// ChatSpec is the payload for creating a chat.
type ChatSpec struct {
	ModelID string `json:"modelId"`
	Title   string `json:"title,omitempty"`
}

// ChatUpdate carries the mutable fields of a chat.
type ChatUpdate struct {
	Title string `json:"title"`
}
