package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"thrgacha/internal/service"
)

// QuestionHandler handles question management and answering.
type QuestionHandler struct {
	questionSvc *service.QuestionService
	logger      *zap.Logger
}

// NewQuestionHandler creates a new question handler.
func NewQuestionHandler(questionSvc *service.QuestionService, logger *zap.Logger) *QuestionHandler {
	return &QuestionHandler{
		questionSvc: questionSvc,
		logger:      logger,
	}
}

// Create handles POST /v1/rooms/{roomId}/questions
func (h *QuestionHandler) Create(w http.ResponseWriter, r *http.Request) {
	roomID := mux.Vars(r)["roomId"]

	var req service.QuestionInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	question, err := h.questionSvc.CreateQuestion(r.Context(), roomID, &req)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusCreated, question)
}

// BulkCreateRequest is the request body for a question upload.
type BulkCreateRequest struct {
	Questions []*service.QuestionInput `json:"questions"`
}

// BulkCreate handles POST /v1/rooms/{roomId}/questions/bulk
func (h *QuestionHandler) BulkCreate(w http.ResponseWriter, r *http.Request) {
	roomID := mux.Vars(r)["roomId"]

	var req BulkCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	count, err := h.questionSvc.BulkCreateQuestions(r.Context(), roomID, req.Questions)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]int{"count": count})
}

// List handles GET /v1/rooms/{roomId}/questions
func (h *QuestionHandler) List(w http.ResponseWriter, r *http.Request) {
	roomID := mux.Vars(r)["roomId"]

	questions, err := h.questionSvc.ListQuestions(r.Context(), roomID)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, questions)
}

// ListActive handles GET /v1/rooms/{roomId}/questions/active?participantId=
func (h *QuestionHandler) ListActive(w http.ResponseWriter, r *http.Request) {
	roomID := mux.Vars(r)["roomId"]
	participantID := r.URL.Query().Get("participantId")
	if participantID == "" {
		writeError(w, http.StatusBadRequest, "participantId is required")
		return
	}

	questions, err := h.questionSvc.ListActiveQuestions(r.Context(), roomID, participantID)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, questions)
}

// AnswerRequest is the request body for an answer submission.
type AnswerRequest struct {
	QuestionID    string `json:"questionId"`
	ParticipantID string `json:"participantId"`
	AnswerIndex   int    `json:"answerIndex"`
}

// Answer handles POST /v1/rooms/{roomId}/answers
func (h *QuestionHandler) Answer(w http.ResponseWriter, r *http.Request) {
	var req AnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.QuestionID == "" || req.ParticipantID == "" {
		writeError(w, http.StatusBadRequest, "questionId and participantId are required")
		return
	}

	isCorrect, err := h.questionSvc.SubmitAnswer(r.Context(), req.QuestionID, req.ParticipantID, req.AnswerIndex)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"isCorrect": isCorrect})
}
