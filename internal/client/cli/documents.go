package cli

import (
	"context"
	"fmt"
	"os"
)

// ListDocuments prints the account's documents.
func (a *App) ListDocuments(ctx context.Context) error {
	docs, err := a.docs.List(ctx)
	if err != nil {
		printlnFn("Error: " + err.Error())
		return err
	}
	if len(docs) == 0 {
		printlnFn("No documents yet. Use 'upload' to add one.")
		return nil
	}
	for _, d := range docs {
		printlnFn(fmt.Sprintf("%s  %-30s  %8d bytes  %s", d.ID, d.Name, d.SizeBytes, d.Status))
	}
	return nil
}

// UploadDocument prompts for a path and streams the file to the gateway.
func (a *App) UploadDocument(ctx context.Context) error {
	path, err := getSimpleText(a.reader, "Path to file", os.Stdout)
	if err != nil {
		return err
	}

	doc, err := a.docs.UploadFromFile(ctx, path)
	if err != nil {
		printlnFn("Upload failed: " + err.Error())
		return err
	}

	printlnFn(fmt.Sprintf("Uploaded %s (id %s, %d bytes)", doc.Name, doc.ID, doc.SizeBytes))
	return nil
}
