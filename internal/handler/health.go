package handler

import "net/http"

type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// HandleHealth is the liveness probe. It never touches the store.
//
// HTTP: GET /health
func HandleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "OK", Message: "Server is running"})
}
