package services

import (
	"context"
	"fmt"

	"github.com/aadarshprajapati/docuchat-cli/internal/client/models"
)

// ChatAPI is the slice of the API client the chat service needs.
type ChatAPI interface {
	ListChats(ctx context.Context) ([]models.Chat, error)
	GetChat(ctx context.Context, id string) (*models.Chat, error)
	CreateChat(ctx context.Context, spec models.ChatSpec) (*models.Chat, error)
	SendMessage(ctx context.Context, chatID, content string) (*models.Message, error)
	GetModel(ctx context.Context, id string) (*models.Model, error)
}

// ChatService drives conversations against trained models.
type ChatService struct {
	api ChatAPI
}

func NewChatService(api ChatAPI) *ChatService {
	return &ChatService{api: api}
}

// Open starts a conversation bound to the given model. The model must have
// finished training; opening a chat on an unready model fails fast here
// rather than on the first message.
func (s *ChatService) Open(ctx context.Context, modelID, title string) (*models.Chat, error) {
	m, err := s.api.GetModel(ctx, modelID)
	if err != nil {
		return nil, err
	}
	if m.Status != models.ModelReady {
		return nil, fmt.Errorf("model %s is not ready (status %s)", m.Name, m.Status)
	}

	return s.api.CreateChat(ctx, models.ChatSpec{ModelID: modelID, Title: title})
}

// Ask sends a user message and returns the assistant reply.
func (s *ChatService) Ask(ctx context.Context, chatID, content string) (*models.Message, error) {
	if content == "" {
		return nil, fmt.Errorf("message content is empty")
	}
	return s.api.SendMessage(ctx, chatID, content)
}

// List returns the account's conversations.
func (s *ChatService) List(ctx context.Context) ([]models.Chat, error) {
	return s.api.ListChats(ctx)
}

// History returns a conversation with its messages.
func (s *ChatService) History(ctx context.Context, chatID string) (*models.Chat, error) {
	return s.api.GetChat(ctx, chatID)
}
