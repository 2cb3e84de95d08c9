// Package services contains application services composing the API client
// with local concerns (filesystem access, conversation flow) for the CLI.
package services

import (
	"context"
	"fmt"
	"io"
	"mime"
	"os"
	"path/filepath"

	"github.com/aadarshprajapati/docuchat-cli/internal/client/models"
)

// maxUploadSize caps document uploads; the gateway enforces its own limit,
// this just avoids streaming an obviously oversized file.
const maxUploadSize = 100 << 20

// DocumentUploader is the slice of the API client the document service needs.
type DocumentUploader interface {
	UploadDocument(ctx context.Context, name, contentType string, r io.Reader) (*models.Document, error)
	ListDocuments(ctx context.Context) ([]models.Document, error)
	DeleteDocument(ctx context.Context, id string) error
}

// DocumentService uploads and manages source documents.
type DocumentService struct {
	api DocumentUploader
}

func NewDocumentService(api DocumentUploader) *DocumentService {
	return &DocumentService{api: api}
}

// UploadFromFile streams the file at path to the gateway. The content type is
// inferred from the file extension, defaulting to application/octet-stream.
func (s *DocumentService) UploadFromFile(ctx context.Context, path string) (*models.Document, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory", path)
	}
	if info.Size() > maxUploadSize {
		return nil, fmt.Errorf("%s exceeds the %d MB upload limit", path, maxUploadSize>>20)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	contentType := mime.TypeByExtension(filepath.Ext(path))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	return s.api.UploadDocument(ctx, filepath.Base(path), contentType, f)
}

// List returns the account's documents.
func (s *DocumentService) List(ctx context.Context) ([]models.Document, error) {
	return s.api.ListDocuments(ctx)
}

// Delete removes a document by id.
func (s *DocumentService) Delete(ctx context.Context, id string) error {
	return s.api.DeleteDocument(ctx, id)
}
