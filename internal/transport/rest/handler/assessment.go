package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"maturitymap/internal/engine"
	"maturitymap/internal/service"
)

// AssessmentHandler handles assessment endpoints
type AssessmentHandler struct {
	assessmentSvc *service.AssessmentService
	log           *zap.Logger
}

// NewAssessmentHandler creates a new assessment handler
func NewAssessmentHandler(assessmentSvc *service.AssessmentService, log *zap.Logger) *AssessmentHandler {
	return &AssessmentHandler{
		assessmentSvc: assessmentSvc,
		log:           log,
	}
}

// SubmitResponsesRequest is the request body for submitting a snapshot
type SubmitResponsesRequest struct {
	Answers map[string]int `json:"answers"`
}

// Create handles POST /v1/assessments
func (h *AssessmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	id := h.assessmentSvc.CreateAssessment()
	writeJSON(w, http.StatusCreated, map[string]string{"assessmentId": id})
}

// SubmitResponses handles POST /v1/assessments/{id}/responses
func (h *AssessmentHandler) SubmitResponses(w http.ResponseWriter, r *http.Request) {
	assessmentID := mux.Vars(r)["id"]

	var req SubmitResponsesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(req.Answers) == 0 {
		writeError(w, http.StatusBadRequest, "answers must not be empty")
		return
	}

	snap, err := h.assessmentSvc.SubmitResponses(r.Context(), assessmentID, req.Answers)
	if err != nil {
		h.log.Error("submit responses failed", zap.String("assessment", assessmentID), zap.Error(err))
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"snapshotId": snap.ID})
}

// EligibleQuestions handles GET /v1/assessments/{id}/questions
func (h *AssessmentHandler) EligibleQuestions(w http.ResponseWriter, r *http.Request) {
	assessmentID := mux.Vars(r)["id"]

	questions, err := h.assessmentSvc.EligibleQuestions(r.Context(), assessmentID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"questions": questions})
}

// GetScores handles GET /v1/assessments/{id}/scores
func (h *AssessmentHandler) GetScores(w http.ResponseWriter, r *http.Request) {
	assessmentID := mux.Vars(r)["id"]

	report, err := h.assessmentSvc.GetScores(r.Context(), assessmentID)
	if err != nil {
		h.writeComputeError(w, assessmentID, err)
		return
	}
	if report == nil {
		writeError(w, http.StatusNotFound, "no responses submitted for assessment")
		return
	}

	writeJSON(w, http.StatusOK, report)
}

// GetRoadmap handles GET /v1/assessments/{id}/roadmap
func (h *AssessmentHandler) GetRoadmap(w http.ResponseWriter, r *http.Request) {
	assessmentID := mux.Vars(r)["id"]

	roadmap, err := h.assessmentSvc.GetRoadmap(r.Context(), assessmentID)
	if err != nil {
		h.writeComputeError(w, assessmentID, err)
		return
	}
	if roadmap == nil {
		writeError(w, http.StatusNotFound, "no responses submitted for assessment")
		return
	}

	writeJSON(w, http.StatusOK, roadmap)
}

// GetRecommendation handles GET /v1/assessments/{id}/roadmap/recommendations/{recId}
func (h *AssessmentHandler) GetRecommendation(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	assessmentID := vars["id"]
	recID := vars["recId"]

	rec, err := h.assessmentSvc.GetRecommendation(r.Context(), assessmentID, recID)
	if err != nil {
		h.writeComputeError(w, assessmentID, err)
		return
	}
	if rec == nil {
		writeError(w, http.StatusNotFound, "recommendation not found")
		return
	}

	writeJSON(w, http.StatusOK, rec)
}

// GetTopRecommendations handles GET /v1/assessments/{id}/roadmap/top
func (h *AssessmentHandler) GetTopRecommendations(w http.ResponseWriter, r *http.Request) {
	assessmentID := mux.Vars(r)["id"]

	limit := 5
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			writeError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = parsed
	}

	entries, err := h.assessmentSvc.GetTopRecommendations(r.Context(), assessmentID, limit)
	if err != nil {
		h.writeComputeError(w, assessmentID, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"recommendations": entries})
}

// writeComputeError maps engine errors onto status codes: a RangeError is a
// problem with this assessment's data (422), anything else is a server
// fault.
func (h *AssessmentHandler) writeComputeError(w http.ResponseWriter, assessmentID string, err error) {
	var rangeErr *engine.RangeError
	if errors.As(err, &rangeErr) {
		writeError(w, http.StatusUnprocessableEntity, rangeErr.Error())
		return
	}
	h.log.Error("assessment computation failed", zap.String("assessment", assessmentID), zap.Error(err))
	writeError(w, http.StatusInternalServerError, err.Error())
}
