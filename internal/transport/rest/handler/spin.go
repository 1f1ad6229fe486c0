package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"thrgacha/internal/service"
)

// SpinHandler handles the reward wheel endpoints.
type SpinHandler struct {
	spinSvc  *service.SpinService
	tokenSvc *service.TokenService
	logger   *zap.Logger
}

// NewSpinHandler creates a new spin handler.
func NewSpinHandler(spinSvc *service.SpinService, tokenSvc *service.TokenService, logger *zap.Logger) *SpinHandler {
	return &SpinHandler{
		spinSvc:  spinSvc,
		tokenSvc: tokenSvc,
		logger:   logger,
	}
}

// SpinRequest is the request body for a spin.
type SpinRequest struct {
	ParticipantID string `json:"participantId"`
}

// Spin handles POST /v1/rooms/{roomId}/spins
func (h *SpinHandler) Spin(w http.ResponseWriter, r *http.Request) {
	roomID := mux.Vars(r)["roomId"]

	var req SpinRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.ParticipantID == "" {
		writeError(w, http.StatusBadRequest, "participantId is required")
		return
	}

	result, err := h.spinSvc.Spin(r.Context(), req.ParticipantID, roomID)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// History handles GET /v1/rooms/{roomId}/spins?participantId=
func (h *SpinHandler) History(w http.ResponseWriter, r *http.Request) {
	roomID := mux.Vars(r)["roomId"]
	participantID := r.URL.Query().Get("participantId")
	if participantID == "" {
		writeError(w, http.StatusBadRequest, "participantId is required")
		return
	}

	history, err := h.spinSvc.History(r.Context(), participantID, roomID)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, history)
}

// Balance handles GET /v1/rooms/{roomId}/tokens?participantId=
func (h *SpinHandler) Balance(w http.ResponseWriter, r *http.Request) {
	roomID := mux.Vars(r)["roomId"]
	participantID := r.URL.Query().Get("participantId")
	if participantID == "" {
		writeError(w, http.StatusBadRequest, "participantId is required")
		return
	}

	balance, err := h.tokenSvc.GetBalance(r.Context(), participantID, roomID)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, balance)
}
