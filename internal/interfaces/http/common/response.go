package common

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/feastmap/storefront-api/internal/catalog/domain"
)

// WriteJSON serializes payload to JSON with status and logs on failure.
func WriteJSON(logger *log.Logger, w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil && logger != nil {
		logger.Printf("failed to encode JSON response: %v", err)
	}
}

// WriteDomainError maps catalog error kinds onto HTTP statuses: validation
// 400, not-found 404, slug conflict 409. Anything else is reported as a 500
// without leaking the cause to the client.
func WriteDomainError(logger *log.Logger, w http.ResponseWriter, err error) {
	var validation *domain.ValidationError
	if errors.As(err, &validation) {
		WriteJSON(logger, w, http.StatusBadRequest, map[string]any{
			"error":  validation.Error(),
			"fields": validation.Fields,
		})
		return
	}

	var notFound *domain.NotFoundError
	if errors.As(err, &notFound) {
		WriteJSON(logger, w, http.StatusNotFound, map[string]string{"error": notFound.Error()})
		return
	}

	var conflict *domain.ConflictError
	if errors.As(err, &conflict) {
		WriteJSON(logger, w, http.StatusConflict, map[string]string{"error": conflict.Error()})
		return
	}

	if logger != nil {
		logger.Printf("unhandled error: %v", err)
	}
	WriteJSON(logger, w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
}
