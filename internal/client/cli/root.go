package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = func(s string) { fmt.Println(s) }

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies it; tests provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	ListDocuments(ctx context.Context) error
	UploadDocument(ctx context.Context) error
	ListModels(ctx context.Context) error
	CreateModel(ctx context.Context) error
	TrainModel(ctx context.Context) error
	ListChats(ctx context.Context) error
	ListTeams(ctx context.Context) error
	CreateTeam(ctx context.Context) error
	OpenChat(ctx context.Context) error
	Say(ctx context.Context) error
	Usage(ctx context.Context) error
	Plans(ctx context.Context) error
	APIKey(ctx context.Context) error
}

func (a *App) getStatus() string {
	snap := a.session.Snapshot()
	if snap.User != nil {
		return fmt.Sprintf("(%s)", snap.User.Email)
	}
	return ""
}

func (a *App) Root(ctx context.Context) {
	printlnFn("Welcome to DocuChat CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

// runREPL reads a line, parses the first token as the command, and dispatches
// to methods on a. Unknown commands are reported back to the user. The loop
// exits on scanner EOF or when the user types "exit" or "quit".
//
// Errors returned by command handlers are ignored here; handlers print their
// own errors. This keeps the loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		fmt.Printf("docuchat %s> ", statusFn())
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}

		switch cmd := parts[0]; cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: whoami, docs, upload, models, newmodel, train, teams, newteam, chats, chat, say, usage, plans, apikey, logout, exit")
			} else {
				printlnFn("Available commands: register, login, exit")
			}

		case "register":
			_ = a.Register(ctx)
		case "login":
			_ = a.Login(ctx)
		case "logout":
			_ = a.Logout(ctx)
		case "whoami":
			_ = a.WhoAmI(ctx)

		case "docs":
			_ = a.ListDocuments(ctx)
		case "upload":
			_ = a.UploadDocument(ctx)

		case "models":
			_ = a.ListModels(ctx)
		case "newmodel":
			_ = a.CreateModel(ctx)
		case "train":
			_ = a.TrainModel(ctx)

		case "teams":
			_ = a.ListTeams(ctx)
		case "newteam":
			_ = a.CreateTeam(ctx)

		case "chats":
			_ = a.ListChats(ctx)
		case "chat":
			_ = a.OpenChat(ctx)
		case "say":
			_ = a.Say(ctx)

		case "usage":
			_ = a.Usage(ctx)
		case "plans":
			_ = a.Plans(ctx)
		case "apikey":
			_ = a.APIKey(ctx)

		case "exit", "quit":
			return

		default:
			printlnFn(fmt.Sprintf("Unknown command: %s", cmd))
		}
	}
}
