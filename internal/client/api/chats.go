package api

import (
	"context"
	"net/http"

	"github.com/aadarshprajapati/docuchat-cli/internal/client/models"
)

func (c *RESTClient) ListChats(ctx context.Context) ([]models.Chat, error) {
	var chats []models.Chat
	if _, err := c.do(ctx, http.MethodGet, "/api/chat", nil, &chats); err != nil {
		return nil, err
	}
	return chats, nil
}

func (c *RESTClient) GetChat(ctx context.Context, id string) (*models.Chat, error) {
	var chat models.Chat
	if _, err := c.do(ctx, http.MethodGet, "/api/chat/"+id, nil, &chat); err != nil {
		return nil, err
	}
	return &chat, nil
}

func (c *RESTClient) CreateChat(ctx context.Context, spec models.ChatSpec) (*models.Chat, error) {
	var chat models.Chat
	if _, err := c.do(ctx, http.MethodPost, "/api/chat", spec, &chat); err != nil {
		return nil, err
	}
	return &chat, nil
}

func (c *RESTClient) UpdateChat(ctx context.Context, id string, upd models.ChatUpdate) (*models.Chat, error) {
	var chat models.Chat
	if _, err := c.do(ctx, http.MethodPut, "/api/chat/"+id, upd, &chat); err != nil {
		return nil, err
	}
	return &chat, nil
}

func (c *RESTClient) DeleteChat(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodDelete, "/api/chat/"+id, nil, nil)
	return err
}

// SendMessage posts a user message and returns the assistant's reply.
func (c *RESTClient) SendMessage(ctx context.Context, chatID, content string) (*models.Message, error) {
	body := struct {
		Content string `json:"content"`
	}{Content: content}

	var reply models.Message
	if _, err := c.do(ctx, http.MethodPost, "/api/chat/"+chatID+"/messages", body, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}
