// Package cli implements the interactive DocuChat command-line client.
package cli

import (
	"bufio"
	"context"
	"log/slog"
	"os"

	"github.com/aadarshprajapati/docuchat-cli/internal/client/api"
	"github.com/aadarshprajapati/docuchat-cli/internal/client/config"
	"github.com/aadarshprajapati/docuchat-cli/internal/client/services"
	"github.com/aadarshprajapati/docuchat-cli/internal/client/session"
	"github.com/aadarshprajapati/docuchat-cli/internal/client/storage"
	"github.com/aadarshprajapati/docuchat-cli/internal/logging"
)

type App struct {
	config  *config.Config
	log     logging.Logger
	session *session.Controller
	docs    *services.DocumentService
	chats   *services.ChatService
	client  *api.RESTClient
	reader  *bufio.Reader

	// activeChat is the conversation the "say" command posts to.
	activeChat string
}

func NewApp(c *config.Config) (*App, error) {
	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	var tokens storage.TokenStore
	if c.TokenFile != "" {
		tokens = storage.NewFileStore(c.TokenFile)
	} else {
		fs, err := storage.DefaultFileStore()
		if err != nil {
			return nil, err
		}
		tokens = fs
	}

	client := api.NewRESTClient(c.GatewayURL, c.RequestTimeout, log)
	ctrl := session.New(client, tokens, log)
	client.SetOnUnauthorized(ctrl.HandleUnauthorized)

	return &App{
		config:  c,
		log:     log,
		session: ctrl,
		docs:    services.NewDocumentService(client),
		chats:   services.NewChatService(client),
		client:  client,
		reader:  bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) Run(ctx context.Context) {
	if err := a.session.Bootstrap(ctx); err != nil {
		a.log.Warn(ctx, "bootstrap interrupted", "error", err)
	}
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.session.Snapshot().IsAuthenticated()
}
