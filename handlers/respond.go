package handlers

import (
	"encoding/json"
	"net/http"
)

// Envelope is the uniform body of every /api response.
type Envelope struct {
	Success bool   `json:"success"`
	Count   *int   `json:"count,omitempty"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, env Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(env)
}

func fail(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, Envelope{Success: false, Message: message})
}

// failWithErr adds the underlying error text so operators can see what broke
// without the handler leaking stack detail.
func failWithErr(w http.ResponseWriter, status int, message string, err error) {
	writeJSON(w, status, Envelope{Success: false, Message: message, Error: err.Error()})
}
