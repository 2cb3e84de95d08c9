package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/aadarshprajapati/docuchat-cli/internal/client/models"
)

// ListTeams prints the account's teams and their members.
func (a *App) ListTeams(ctx context.Context) error {
	teams, err := a.client.ListTeams(ctx)
	if err != nil {
		printlnFn("Error: " + err.Error())
		return err
	}
	if len(teams) == 0 {
		printlnFn("No teams yet. Use 'newteam' to create one.")
		return nil
	}
	for _, tm := range teams {
		printlnFn(fmt.Sprintf("%s  %-20s  (%d members)", tm.ID, tm.Name, len(tm.Members)))
		for _, m := range tm.Members {
			printlnFn(fmt.Sprintf("    %-30s  %s", m.Email, m.Role))
		}
	}
	return nil
}

// CreateTeam prompts for a name and creates a team.
func (a *App) CreateTeam(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Team name", os.Stdout)
	if err != nil {
		return err
	}

	tm, err := a.client.CreateTeam(ctx, models.TeamSpec{Name: name})
	if err != nil {
		printlnFn("Error: " + err.Error())
		return err
	}

	printlnFn(fmt.Sprintf("Created team %s (id %s).", tm.Name, tm.ID))
	return nil
}
