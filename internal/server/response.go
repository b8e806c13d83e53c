package server

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is the JSON error envelope for all API failures.
type ErrorResponse struct {
	Error   string                 `json:"error"`
	Details map[string]interface{} `json:"details,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string, details map[string]interface{}) {
	respondJSON(w, status, ErrorResponse{Error: message, Details: details})
}
