package api

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/aadarshprajapati/docuchat-cli/internal/client/models"
)

func (c *RESTClient) ListDocuments(ctx context.Context) ([]models.Document, error) {
	var docs []models.Document
	if _, err := c.do(ctx, http.MethodGet, "/api/documents", nil, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

func (c *RESTClient) GetDocument(ctx context.Context, id string) (*models.Document, error) {
	var doc models.Document
	if _, err := c.do(ctx, http.MethodGet, "/api/documents/"+id, nil, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// UploadDocument streams a document to the gateway as multipart form data
// under the "document" field, the way the dashboard's upload form does.
func (c *RESTClient) UploadDocument(ctx context.Context, name, contentType string, r io.Reader) (*models.Document, error) {
	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)

	go func() {
		part, err := mw.CreateFormFile("document", name)
		if err != nil {
			pw.CloseWithError(err)
			return
		}
		if _, err := io.Copy(part, r); err != nil {
			pw.CloseWithError(err)
			return
		}
		if contentType != "" {
			if err := mw.WriteField("contentType", contentType); err != nil {
				pw.CloseWithError(err)
				return
			}
		}
		pw.CloseWithError(mw.Close())
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/documents", pr)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	var doc models.Document
	if _, err := c.send(req, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

func (c *RESTClient) UpdateDocument(ctx context.Context, id string, upd models.DocumentUpdate) (*models.Document, error) {
	var doc models.Document
	if _, err := c.do(ctx, http.MethodPut, "/api/documents/"+id, upd, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

func (c *RESTClient) DeleteDocument(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodDelete, "/api/documents/"+id, nil, nil)
	return err
}
