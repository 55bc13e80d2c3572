package handler

import (
	"encoding/json"
	"net/http"

	"maturitymap/internal/service"
)

// CatalogHandler handles catalog endpoints
type CatalogHandler struct {
	catalogSvc *service.CatalogService
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalogSvc *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogSvc: catalogSvc}
}

// ListQuestions handles GET /v1/catalog/questions
func (h *CatalogHandler) ListQuestions(w http.ResponseWriter, r *http.Request) {
	assessmentType := r.URL.Query().Get("type")
	questions := h.catalogSvc.Questions(assessmentType)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"catalogVersion": h.catalogSvc.Version(),
		"questions":      questions,
	})
}

// Helper functions

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
