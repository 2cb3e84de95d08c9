package cli

import (
	"context"
	"fmt"
)

// Usage prints the current billing period's consumption.
func (a *App) Usage(ctx context.Context) error {
	u, err := a.client.GetUsage(ctx)
	if err != nil {
		printlnFn("Error: " + err.Error())
		return err
	}

	printlnFn(fmt.Sprintf("Messages:  %d / %d", u.MessagesUsed, u.MessagesLimit))
	printlnFn(fmt.Sprintf("Documents: %d / %d", u.DocumentsUsed, u.DocumentsLimit))
	printlnFn(fmt.Sprintf("Storage:   %d / %d bytes", u.StorageUsedBytes, u.StorageLimitBytes))
	return nil
}

// Plans prints the available subscription tiers.
func (a *App) Plans(ctx context.Context) error {
	plans, err := a.client.ListPlans(ctx)
	if err != nil {
		printlnFn("Error: " + err.Error())
		return err
	}

	for _, p := range plans {
		printlnFn(fmt.Sprintf("%-6s  $%d.%02d/%s", p.Name, p.PriceCents/100, p.PriceCents%100, p.Interval))
		for _, f := range p.Features {
			printlnFn("        - " + f)
		}
	}
	return nil
}

// APIKey generates and prints a programmatic-access key.
func (a *App) APIKey(ctx context.Context) error {
	key, err := a.client.GenerateAPIKey(ctx)
	if err != nil {
		printlnFn("Error: " + err.Error())
		return err
	}

	printlnFn("New API key (store it now, it is not shown again): " + key.Key)
	return nil
}
