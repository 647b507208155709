package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/sevigo/quality-warden/internal/core"
)

type errorResponse struct {
	Status    string `json:"status"`
	Error     string `json:"error"`
	Kind      string `json:"kind"`
	Parameter string `json:"parameter,omitempty"`
}

// StatusFor maps a domain error kind to its HTTP status code.
func StatusFor(kind core.ErrorKind) int {
	switch kind {
	case core.ErrorKindValidation:
		return http.StatusBadRequest
	case core.ErrorKindNotFound:
		return http.StatusNotFound
	case core.ErrorKindPreconditionFailed:
		return http.StatusPreconditionFailed
	case core.ErrorKindForbidden:
		return http.StatusForbidden
	case core.ErrorKindUnauthenticated:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// writeError renders err without leaking wrapped causes to the client.
func writeError(w http.ResponseWriter, logger *slog.Logger, err error) {
	domainErr := core.AsError(err)
	status := StatusFor(domainErr.Kind)
	if status == http.StatusInternalServerError {
		logger.Error("request failed", "error", err)
	}
	writeJSON(w, status, errorResponse{
		Status:    "error",
		Error:     domainErr.Key,
		Kind:      string(domainErr.Kind),
		Parameter: domainErr.Field,
	})
}
