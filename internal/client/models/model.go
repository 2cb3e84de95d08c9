package models

import "time"

// ModelStatus tracks the training lifecycle of a custom model.
type ModelStatus string

const (
	ModelDraft    ModelStatus = "draft"
	ModelTraining ModelStatus = "training"
	ModelReady    ModelStatus = "ready"
	ModelFailed   ModelStatus = "failed"
)

// Model is a user-trained chat model built from uploaded documents.
type Model struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description,omitempty"`
	BaseModel   string      `json:"baseModel,omitempty"`
	DocumentIDs []string    `json:"documentIds"`
	Status      ModelStatus `json:"status"`
	CreatedAt   time.Time   `json:"createdAt"`
}

// ModelSpec is the payload for creating a model.
type ModelSpec struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	BaseModel   string   `json:"baseModel,omitempty"`
	DocumentIDs []string `json:"documentIds"`
}
