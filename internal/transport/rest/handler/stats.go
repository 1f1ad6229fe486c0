package handler

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"thrgacha/internal/service"
)

// StatsHandler handles the admin statistics endpoints.
type StatsHandler struct {
	statsSvc *service.StatsService
	logger   *zap.Logger
}

// NewStatsHandler creates a new stats handler.
func NewStatsHandler(statsSvc *service.StatsService, logger *zap.Logger) *StatsHandler {
	return &StatsHandler{
		statsSvc: statsSvc,
		logger:   logger,
	}
}

// Room handles GET /v1/rooms/{roomId}/stats
func (h *StatsHandler) Room(w http.ResponseWriter, r *http.Request) {
	roomID := mux.Vars(r)["roomId"]

	stats, err := h.statsSvc.RoomStatistics(r.Context(), roomID)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, stats)
}

// Questions handles GET /v1/rooms/{roomId}/stats/questions
func (h *StatsHandler) Questions(w http.ResponseWriter, r *http.Request) {
	roomID := mux.Vars(r)["roomId"]

	stats, err := h.statsSvc.QuestionStatistics(r.Context(), roomID)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, stats)
}

// Participants handles GET /v1/rooms/{roomId}/stats/participants
func (h *StatsHandler) Participants(w http.ResponseWriter, r *http.Request) {
	roomID := mux.Vars(r)["roomId"]

	stats, err := h.statsSvc.ParticipantStatistics(r.Context(), roomID)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, stats)
}

// Rewards handles GET /v1/rooms/{roomId}/stats/rewards
func (h *StatsHandler) Rewards(w http.ResponseWriter, r *http.Request) {
	roomID := mux.Vars(r)["roomId"]

	dist, err := h.statsSvc.RewardDistribution(r.Context(), roomID)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, dist)
}

// Leaderboard handles GET /v1/rooms/{roomId}/leaderboard?limit=
func (h *StatsHandler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	roomID := mux.Vars(r)["roomId"]

	limit := 10
	if v := r.URL.Query().Get("limit"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 1 {
			writeError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = parsed
	}

	entries, err := h.statsSvc.Leaderboard(r.Context(), roomID, limit)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, entries)
}
