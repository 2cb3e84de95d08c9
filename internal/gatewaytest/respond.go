package gatewaytest

import (
	"encoding/json"
	"net/http"
)

// envelope mirrors the gateway's JSON wrapper. Different endpoints use
// different error fields on purpose, so client-side normalization gets
// exercised against all the shapes seen in production.
type envelope struct {
	Token   string            `json:"token,omitempty"`
	Data    any               `json:"data,omitempty"`
	Error   string            `json:"error,omitempty"`
	Message string            `json:"message,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, env envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(env)
}

func writeData(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, envelope{Data: data})
}

func writeAuth(w http.ResponseWriter, token string, data any) {
	writeJSON(w, http.StatusOK, envelope{Token: token, Data: data})
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, envelope{Error: msg})
}

func writeFieldErrors(w http.ResponseWriter, status int, fields map[string]string) {
	writeJSON(w, status, envelope{Errors: fields})
}
