package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"thrgacha/internal/model"
	"thrgacha/internal/service"
)

// RoomHandler handles room management endpoints.
type RoomHandler struct {
	roomSvc *service.RoomService
	logger  *zap.Logger
}

// NewRoomHandler creates a new room handler.
func NewRoomHandler(roomSvc *service.RoomService, logger *zap.Logger) *RoomHandler {
	return &RoomHandler{
		roomSvc: roomSvc,
		logger:  logger,
	}
}

// Create handles POST /v1/rooms
func (h *RoomHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req service.CreateRoomInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	room, err := h.roomSvc.CreateRoom(r.Context(), &req)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusCreated, room)
}

// Get handles GET /v1/rooms/{roomId} (accepts a room ID or a room code)
func (h *RoomHandler) Get(w http.ResponseWriter, r *http.Request) {
	idOrCode := mux.Vars(r)["roomId"]

	room, err := h.roomSvc.GetRoom(r.Context(), idOrCode)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, room)
}

// List handles GET /v1/rooms?createdBy=
func (h *RoomHandler) List(w http.ResponseWriter, r *http.Request) {
	creatorID := r.URL.Query().Get("createdBy")
	if creatorID == "" {
		writeError(w, http.StatusBadRequest, "createdBy is required")
		return
	}

	rooms, err := h.roomSvc.ListRooms(r.Context(), creatorID)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, rooms)
}

// UpdateTiersRequest is the request body for replacing a room's tiers.
type UpdateTiersRequest struct {
	WeightingMode model.TierWeightingMode `json:"weightingMode,omitempty"`
	RewardTiers   []model.RewardTier      `json:"rewardTiers"`
}

// UpdateTiers handles PUT /v1/rooms/{roomId}/tiers
func (h *RoomHandler) UpdateTiers(w http.ResponseWriter, r *http.Request) {
	roomID := mux.Vars(r)["roomId"]

	var req UpdateTiersRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	room, err := h.roomSvc.UpdateRewardTiers(r.Context(), roomID, req.WeightingMode, req.RewardTiers)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, room)
}
