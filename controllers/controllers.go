package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"togedog_server/services"
)

// callerEmail extracts the authenticated principal. The auth layer in front
// of this service verifies the session and forwards the email in a header.
func callerEmail(r *http.Request) string {
	return r.Header.Get("X-User-Email")
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// writeServiceError maps service failures onto HTTP statuses: business-rule
// failures are 4xx, cache-store failures are a 502 dependency failure.
func writeServiceError(w http.ResponseWriter, err error) {
	var cacheErr *services.CacheOperationError

	switch {
	case errors.Is(err, services.ErrMemberNotFound), errors.Is(err, services.ErrMatchNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, services.ErrMatchAlreadyExists):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, services.ErrInvalidPageRequest):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.As(err, &cacheErr):
		http.Error(w, "cache store unavailable: "+err.Error(), http.StatusBadGateway)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
