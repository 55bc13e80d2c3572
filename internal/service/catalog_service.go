package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"maturitymap/internal/engine"
	"maturitymap/internal/model"
	"maturitymap/internal/repository"
)

// CatalogService loads the question catalog once at startup and holds the
// validated, immutable engine catalog for the life of the process. A
// catalog that fails validation blocks startup; serving against a broken
// dependency graph is never an option.
type CatalogService struct {
	repo    repository.CatalogRepo
	log     *zap.Logger
	catalog *engine.Catalog
}

// NewCatalogService creates a new catalog service
func NewCatalogService(repo repository.CatalogRepo, log *zap.Logger) *CatalogService {
	return &CatalogService{
		repo: repo,
		log:  log,
	}
}

// Load fetches the catalog from storage and validates it. Must be called
// before the service handles any request.
func (s *CatalogService) Load(ctx context.Context) error {
	questions, err := s.repo.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("loading catalog questions: %w", err)
	}
	version, err := s.repo.GetVersion(ctx)
	if err != nil {
		return fmt.Errorf("loading catalog version: %w", err)
	}

	catalog, err := engine.NewCatalog(version, questions)
	if err != nil {
		return err
	}

	s.catalog = catalog
	s.log.Info("catalog loaded",
		zap.String("version", version),
		zap.Int("questions", catalog.Len()),
	)
	return nil
}

// Catalog returns the validated catalog
func (s *CatalogService) Catalog() *engine.Catalog {
	return s.catalog
}

// Version returns the loaded catalog content version
func (s *CatalogService) Version() string {
	return s.catalog.Version()
}

// Questions lists catalog questions, optionally filtered by assessment type
func (s *CatalogService) Questions(assessmentType string) []*model.Question {
	return s.catalog.QuestionsByType(assessmentType)
}
