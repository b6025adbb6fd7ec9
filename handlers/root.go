package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
)

type bannerResponse struct {
	Message   string            `json:"message"`
	API       string            `json:"api"`
	Endpoints map[string]string `json:"endpoints"`
}

// Banner handles GET / with a short service description and route listing.
func Banner(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(bannerResponse{
		Message: "Smart Library System API is running!",
		API:     "/api/books",
		Endpoints: map[string]string{
			"getAllBooks": "GET /api/books",
			"addBook":     "POST /api/books",
			"deleteBook":  "DELETE /api/books/:id",
		},
	})
}

func Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

// NotFound answers any unmatched path or method with a 404 envelope.
func NotFound(w http.ResponseWriter, r *http.Request) {
	fail(w, http.StatusNotFound, fmt.Sprintf("Route not found - %s", r.URL.Path))
}
