package rest

import (
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"maturitymap/internal/service"
	"maturitymap/internal/transport/rest/handler"
)

// Container holds all dependencies for the router
type Container struct {
	CatalogService    *service.CatalogService
	AssessmentService *service.AssessmentService
	Logger            *zap.Logger
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	catalogHandler := handler.NewCatalogHandler(c.CatalogService)
	assessmentHandler := handler.NewAssessmentHandler(c.AssessmentService, c.Logger)

	r.Use(corsMiddleware)

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	v1 := r.PathPrefix("/v1").Subrouter()

	v1.HandleFunc("/catalog/questions", catalogHandler.ListQuestions).Methods("GET", "OPTIONS")

	v1.HandleFunc("/assessments", assessmentHandler.Create).Methods("POST", "OPTIONS")
	v1.HandleFunc("/assessments/{id}/responses", assessmentHandler.SubmitResponses).Methods("POST", "OPTIONS")
	v1.HandleFunc("/assessments/{id}/questions", assessmentHandler.EligibleQuestions).Methods("GET", "OPTIONS")
	v1.HandleFunc("/assessments/{id}/scores", assessmentHandler.GetScores).Methods("GET", "OPTIONS")
	v1.HandleFunc("/assessments/{id}/roadmap", assessmentHandler.GetRoadmap).Methods("GET", "OPTIONS")
	v1.HandleFunc("/assessments/{id}/roadmap/top", assessmentHandler.GetTopRecommendations).Methods("GET", "OPTIONS")
	v1.HandleFunc("/assessments/{id}/roadmap/recommendations/{recId}", assessmentHandler.GetRecommendation).Methods("GET", "OPTIONS")

	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowedOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
		if allowedOrigins == "" {
			allowedOrigins = "*"
		}

		w.Header().Set("Access-Control-Allow-Origin", allowedOrigins)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
