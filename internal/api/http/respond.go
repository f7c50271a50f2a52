package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"farmshare-backend/internal/domain"
	"farmshare-backend/internal/logger"
)

// writeJSON serializes v as the response body with the given status code.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("Failed to encode response", "error", err)
	}
}

// writeError maps the error taxonomy onto HTTP statuses and renders the
// {"error": message} body: validation and availability failures are 400,
// missing records are 404, everything else is a 500 with a generic message.
func writeError(w http.ResponseWriter, err error) {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": ve.Message})
	case errors.Is(err, domain.ErrEquipmentNotAvailable):
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Equipment not available"})
	case errors.Is(err, domain.ErrNotFound):
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "Not found"})
	default:
		logger.Error("Request failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Database error"})
	}
}
