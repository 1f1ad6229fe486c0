package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"thrgacha/internal/service"
)

// EntryHandler handles entry code endpoints.
type EntryHandler struct {
	entrySvc *service.EntryService
	logger   *zap.Logger
}

// NewEntryHandler creates a new entry handler.
func NewEntryHandler(entrySvc *service.EntryService, logger *zap.Logger) *EntryHandler {
	return &EntryHandler{
		entrySvc: entrySvc,
		logger:   logger,
	}
}

// CreateEntriesRequest is the request body for batch entry creation.
type CreateEntriesRequest struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Create handles POST /v1/rooms/{roomId}/entries
func (h *EntryHandler) Create(w http.ResponseWriter, r *http.Request) {
	roomID := mux.Vars(r)["roomId"]

	var req CreateEntriesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	entries, err := h.entrySvc.CreateEntries(r.Context(), roomID, req.Name, req.Count)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusCreated, entries)
}

// List handles GET /v1/rooms/{roomId}/entries
func (h *EntryHandler) List(w http.ResponseWriter, r *http.Request) {
	roomID := mux.Vars(r)["roomId"]

	entries, err := h.entrySvc.ListEntries(r.Context(), roomID)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, entries)
}

// ValidateRequest is the request body for entry validation/activation.
type ValidateRequest struct {
	Code string `json:"code"`
	Name string `json:"name,omitempty"`
}

// Validate handles POST /v1/rooms/{roomId}/entries/validate
func (h *EntryHandler) Validate(w http.ResponseWriter, r *http.Request) {
	roomID := mux.Vars(r)["roomId"]

	var req ValidateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.entrySvc.Validate(r.Context(), roomID, req.Code)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// Activate handles POST /v1/rooms/{roomId}/entries/activate
func (h *EntryHandler) Activate(w http.ResponseWriter, r *http.Request) {
	roomID := mux.Vars(r)["roomId"]

	var req ValidateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	participant, err := h.entrySvc.Activate(r.Context(), roomID, req.Code, req.Name)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, participant)
}
