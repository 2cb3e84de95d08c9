package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/aadarshprajapati/docuchat-cli/internal/client/models"
)

// ListModels prints the account's models.
func (a *App) ListModels(ctx context.Context) error {
	ms, err := a.client.ListModels(ctx)
	if err != nil {
		printlnFn("Error: " + err.Error())
		return err
	}
	if len(ms) == 0 {
		printlnFn("No models yet. Use 'newmodel' to create one.")
		return nil
	}
	for _, m := range ms {
		printlnFn(fmt.Sprintf("%s  %-20s  %s  (%d documents)", m.ID, m.Name, m.Status, len(m.DocumentIDs)))
	}
	return nil
}

// CreateModel prompts for a name and document ids, then creates a model.
func (a *App) CreateModel(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Model name", os.Stdout)
	if err != nil {
		return err
	}
	docIDs, err := getSimpleText(a.reader, "Document ids (space-separated)", os.Stdout)
	if err != nil {
		return err
	}

	m, err := a.client.CreateModel(ctx, models.ModelSpec{Name: name, DocumentIDs: strings.Fields(docIDs)})
	if err != nil {
		printlnFn("Error: " + err.Error())
		return err
	}

	printlnFn(fmt.Sprintf("Created model %s (id %s). Use 'train' to start training.", m.Name, m.ID))
	return nil
}

// TrainModel starts training for a model id.
func (a *App) TrainModel(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Model id", os.Stdout)
	if err != nil {
		return err
	}

	m, err := a.client.TrainModel(ctx, id)
	if err != nil {
		printlnFn("Error: " + err.Error())
		return err
	}

	printlnFn(fmt.Sprintf("Model %s is now %s.", m.Name, m.Status))
	return nil
}
