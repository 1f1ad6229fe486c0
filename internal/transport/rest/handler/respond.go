package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"thrgacha/internal/service"
)

// envelope is the uniform response shape: {success, data} on the happy
// path, {success, error} otherwise.
type envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(envelope{Success: true, Data: data})
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(envelope{Success: false, Error: message})
}

// writeServiceError maps expected domain outcomes to their status codes
// and reason strings. Anything unexpected becomes a generic 500; the
// detail goes to the log, never to the participant.
func writeServiceError(w http.ResponseWriter, logger *zap.Logger, err error) {
	switch {
	case errors.Is(err, service.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrInvalidEntryCode):
		writeError(w, http.StatusBadRequest, service.ErrInvalidEntryCode.Error())
	case errors.Is(err, service.ErrRoomNotFound),
		errors.Is(err, service.ErrQuestionNotFound),
		errors.Is(err, service.ErrParticipantNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrAlreadyAnswered),
		errors.Is(err, service.ErrInsufficientTokens),
		errors.Is(err, service.ErrNoRewardsAvailable):
		writeError(w, http.StatusConflict, err.Error())
	default:
		logger.Error("request failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "something went wrong, please try again")
	}
}
