package cli

import (
	"context"
	"fmt"
	"os"
)

// ListChats prints the account's conversations.
func (a *App) ListChats(ctx context.Context) error {
	chats, err := a.chats.List(ctx)
	if err != nil {
		printlnFn("Error: " + err.Error())
		return err
	}
	if len(chats) == 0 {
		printlnFn("No conversations yet. Use 'chat' to start one.")
		return nil
	}
	for _, c := range chats {
		marker := " "
		if c.ID == a.activeChat {
			marker = "*"
		}
		printlnFn(fmt.Sprintf("%s %s  %-20s  (model %s)", marker, c.ID, c.Title, c.ModelID))
	}
	return nil
}

// OpenChat starts a conversation on a trained model and makes it active.
func (a *App) OpenChat(ctx context.Context) error {
	modelID, err := getSimpleText(a.reader, "Model id", os.Stdout)
	if err != nil {
		return err
	}
	title, err := getSimpleText(a.reader, "Title", os.Stdout)
	if err != nil {
		return err
	}

	chat, err := a.chats.Open(ctx, modelID, title)
	if err != nil {
		printlnFn("Error: " + err.Error())
		return err
	}

	a.activeChat = chat.ID
	printlnFn(fmt.Sprintf("Opened chat %s. Use 'say' to talk to the model.", chat.ID))
	return nil
}

// Say posts a message to the active conversation and prints the reply.
func (a *App) Say(ctx context.Context) error {
	if a.activeChat == "" {
		printlnFn("No active chat. Use 'chat' to open one.")
		return nil
	}

	content, err := getSimpleText(a.reader, "Message", os.Stdout)
	if err != nil {
		return err
	}

	reply, err := a.chats.Ask(ctx, a.activeChat, content)
	if err != nil {
		printlnFn("Error: " + err.Error())
		return err
	}

	printlnFn("assistant> " + reply.Content)
	return nil
}
