package handler

// RESPONSE HELPERS:
// Every handler answers through writeJSON / writeError so the wire format
// stays uniform. Errors always look like:
//
//	{"error": "Review not found"}
//
// The web client shows that string as-is, so messages are written for
// people, and internal details never reach it.

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/sakif/restaurant-reviews/internal/apperror"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is the body of responses that only confirm an action.
type MessageResponse struct {
	Message string `json:"message"`
}

// writeJSON sends a JSON response with the given status code.
// Headers and status must be written before the body.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			// Headers are already sent; all we can do is log.
			slog.Error("failed to encode JSON response", slog.String("error", err.Error()))
		}
	}
}

// errorStatus maps a domain error to its HTTP status.
// Anything that is not a typed AppError is a store or programming failure.
func errorStatus(err error) int {
	var appErr *apperror.AppError
	if !errors.As(err, &appErr) {
		return http.StatusInternalServerError
	}

	switch {
	case errors.Is(err, apperror.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, apperror.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, apperror.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// writeError answers with the AppError's message, or with fallback for a
// 500. The original error of a 500 is logged for operators and never sent
// to the client.
func writeError(w http.ResponseWriter, logger *slog.Logger, err error, fallback string) {
	status := errorStatus(err)
	if status == http.StatusInternalServerError {
		logger.Error(fallback, slog.String("error", err.Error()))
		writeJSON(w, status, ErrorResponse{Error: fallback})
		return
	}

	var appErr *apperror.AppError
	errors.As(err, &appErr)
	writeJSON(w, status, ErrorResponse{Error: appErr.Message})
}

// writeBadRequest answers 400 for bodies that are not valid JSON.
func writeBadRequest(w http.ResponseWriter, logger *slog.Logger, err error) {
	logger.Warn("invalid request body", slog.String("error", err.Error()))
	writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
}
