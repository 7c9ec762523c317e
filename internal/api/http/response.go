package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"fixerhub-backend/internal/domain"
	"fixerhub-backend/internal/logger"
)

type response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeData(w http.ResponseWriter, status int, data interface{}) {
	writeJSON(w, status, response{Success: true, Data: data})
}

// writeError maps domain errors onto HTTP statuses. Anything outside the
// domain taxonomy is a 500 and its detail stays in the logs.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case domain.IsValidation(err):
		writeJSON(w, http.StatusBadRequest, response{Success: false, Message: err.Error()})
	case domain.IsNotFound(err):
		writeJSON(w, http.StatusNotFound, response{Success: false, Message: err.Error()})
	case domain.IsBusinessRule(err):
		writeJSON(w, http.StatusConflict, response{Success: false, Message: err.Error()})
	case errors.Is(err, domain.ErrTransactionFailed):
		logger.Error("request failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, response{Success: false, Message: "internal server error"})
	default:
		logger.Error("request failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, response{Success: false, Message: "internal server error"})
	}
}
