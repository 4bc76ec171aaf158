package handler

import (
	"net/http"

	"content-analyzer/internal/domain"
)

const (
	ServiceName    = "content-analyzer"
	ServiceVersion = "0.1.0"
)

// Health reports liveness
func Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, domain.HealthResponse{
		OK:      true,
		Service: ServiceName,
		Version: ServiceVersion,
	})
}
