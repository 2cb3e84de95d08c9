package models

import "time"

// DocumentStatus tracks gateway-side processing of an uploaded document.
type DocumentStatus string

const (
	DocumentProcessing DocumentStatus = "processing"
	DocumentReady      DocumentStatus = "ready"
	DocumentFailed     DocumentStatus = "failed"
)

// Document is an uploaded source document available for model training.
type Document struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	ContentType string         `json:"contentType"`
	SizeBytes   int64          `json:"sizeBytes"`
	PageCount   int            `json:"pageCount,omitempty"`
	Status      DocumentStatus `json:"status"`
	CreatedAt   time.Time      `json:"createdAt"`
}

// DocumentUpdate carries the mutable fields of a document.
type DocumentUpdate struct {
	Name string `json:"name"`
}
