// Package handlers holds the HTTP layer: request decoding, per-endpoint
// validation and the uniform {error} response shape.
package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/andyguzmaneth/ethcr-planner-sub000/logging"
)

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		json.NewEncoder(w).Encode(payload)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// respondServiceError logs the error and maps it onto a status: messages
// containing "Invalid" are treated as validation failures, the rest as
// internal errors.
func respondServiceError(w http.ResponseWriter, r *http.Request, err error) {
	logging.Logger.Errorf("Event ID: REQUEST_FAILED, Description: %s %s failed: %v", r.Method, r.URL.Path, err)
	status := http.StatusInternalServerError
	if strings.Contains(err.Error(), "Invalid") {
		status = http.StatusBadRequest
	}
	respondError(w, status, err.Error())
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		logging.Logger.Warnf("Event ID: BAD_PAYLOAD, Description: %s %s: %v", r.Method, r.URL.Path, err)
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return false
	}
	return true
}
