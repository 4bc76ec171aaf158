package handler

import (
	"encoding/json"
	"net/http"

	apperrors "content-analyzer/pkg/errors"
)

type contextKey string

const requestIDContextKey contextKey = "request_id"

// GetRequestIDFromContext returns the request ID assigned by RequestIDMiddleware
func GetRequestIDFromContext(r *http.Request) (string, bool) {
	id, ok := r.Context().Value(requestIDContextKey).(string)
	return id, ok
}

type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// writeJSON writes a JSON response
func writeJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}

// writeAppError writes an AppError as {"error": ..., "details": ...}
func writeAppError(w http.ResponseWriter, err *apperrors.AppError) {
	writeJSON(w, apperrors.GetStatusCode(err), errorResponse{Error: err.Message, Details: err.Details})
}
