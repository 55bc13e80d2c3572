package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"maturitymap/internal/cache"
	"maturitymap/internal/engine"
	"maturitymap/internal/model"
	"maturitymap/internal/repository"
)

// AssessmentService owns the assessment lifecycle: attempts, response
// snapshots, and the derived scores and roadmaps. Scores and roadmaps are
// pure derivations of (catalog, latest snapshot); the redis and mongo
// copies are caches, recomputed whenever missing.
type AssessmentService struct {
	catalogSvc   *CatalogService
	responses    repository.ResponseRepo
	roadmaps     repository.RoadmapRepo
	scoreCache   cache.ScoreCache
	roadmapCache cache.RoadmapCache
	rankCache    cache.RankCache
	log          *zap.Logger
	now          func() time.Time
}

// NewAssessmentService creates a new assessment service
func NewAssessmentService(
	catalogSvc *CatalogService,
	responses repository.ResponseRepo,
	roadmaps repository.RoadmapRepo,
	scoreCache cache.ScoreCache,
	roadmapCache cache.RoadmapCache,
	rankCache cache.RankCache,
	log *zap.Logger,
) *AssessmentService {
	return &AssessmentService{
		catalogSvc:   catalogSvc,
		responses:    responses,
		roadmaps:     roadmaps,
		scoreCache:   scoreCache,
		roadmapCache: roadmapCache,
		rankCache:    rankCache,
		log:          log,
		now:          time.Now,
	}
}

// CreateAssessment mints a new assessment attempt id
func (s *AssessmentService) CreateAssessment() string {
	return uuid.NewString()
}

// SubmitResponses records a new immutable snapshot for the assessment and
// drops any cached derivations, which now describe a stale snapshot.
func (s *AssessmentService) SubmitResponses(ctx context.Context, assessmentID string, answers map[string]int) (*model.ResponseSnapshot, error) {
	snap := &model.ResponseSnapshot{
		ID:           uuid.NewString(),
		AssessmentID: assessmentID,
		Answers:      answers,
		SubmittedAt:  s.now().UTC(),
	}
	if err := s.responses.Create(ctx, snap); err != nil {
		return nil, err
	}

	version := s.catalogSvc.Version()
	if err := s.scoreCache.Invalidate(ctx, assessmentID, version); err != nil {
		s.log.Warn("score cache invalidation failed", zap.String("assessment", assessmentID), zap.Error(err))
	}
	if err := s.roadmapCache.Invalidate(ctx, assessmentID, version); err != nil {
		s.log.Warn("roadmap cache invalidation failed", zap.String("assessment", assessmentID), zap.Error(err))
	}

	s.log.Info("response snapshot recorded",
		zap.String("assessment", assessmentID),
		zap.String("snapshot", snap.ID),
		zap.Int("answers", len(answers)),
	)
	return snap, nil
}

// EligibleQuestions returns the questions currently open to the respondent,
// given the latest snapshot. With no snapshot yet, only dependency-free
// questions are eligible.
func (s *AssessmentService) EligibleQuestions(ctx context.Context, assessmentID string) ([]*model.Question, error) {
	snap, err := s.responses.GetLatestByAssessment(ctx, assessmentID)
	if err != nil {
		return nil, err
	}

	c := s.catalogSvc.Catalog()
	var questions []*model.Question
	for _, id := range c.EligibleIDs(snap) {
		if q, ok := c.Question(id); ok {
			questions = append(questions, q)
		}
	}
	return questions, nil
}

// GetScores returns the score report for the assessment's latest snapshot,
// from cache when possible. Returns (nil, nil) when the assessment has no
// snapshot yet.
func (s *AssessmentService) GetScores(ctx context.Context, assessmentID string) (*model.ScoreReport, error) {
	version := s.catalogSvc.Version()
	if report, err := s.scoreCache.Get(ctx, assessmentID, version); err != nil {
		s.log.Warn("score cache read failed", zap.String("assessment", assessmentID), zap.Error(err))
	} else if report != nil {
		return report, nil
	}

	snap, err := s.responses.GetLatestByAssessment(ctx, assessmentID)
	if err != nil {
		return nil, err
	}
	if snap == nil {
		return nil, nil
	}

	report, err := engine.ComputeScores(s.catalogSvc.Catalog(), snap)
	if err != nil {
		return nil, err
	}

	if err := s.scoreCache.Set(ctx, assessmentID, version, report); err != nil {
		s.log.Warn("score cache write failed", zap.String("assessment", assessmentID), zap.Error(err))
	}
	return report, nil
}

// GetRoadmap returns the roadmap for the assessment's latest snapshot,
// computing and caching it on a miss. Returns (nil, nil) when the
// assessment has no snapshot yet.
func (s *AssessmentService) GetRoadmap(ctx context.Context, assessmentID string) (*model.Roadmap, error) {
	version := s.catalogSvc.Version()
	if roadmap, err := s.roadmapCache.Get(ctx, assessmentID, version); err != nil {
		s.log.Warn("roadmap cache read failed", zap.String("assessment", assessmentID), zap.Error(err))
	} else if roadmap != nil {
		return roadmap, nil
	}

	snap, err := s.responses.GetLatestByAssessment(ctx, assessmentID)
	if err != nil {
		return nil, err
	}
	if snap == nil {
		return nil, nil
	}

	c := s.catalogSvc.Catalog()
	report, err := engine.ComputeScores(c, snap)
	if err != nil {
		return nil, err
	}
	gaps, err := engine.ComputeGaps(c, snap, report)
	if err != nil {
		return nil, err
	}
	roadmap := engine.BuildRoadmap(gaps, c, assessmentID, s.now())

	if err := s.roadmapCache.Set(ctx, roadmap); err != nil {
		s.log.Warn("roadmap cache write failed", zap.String("assessment", assessmentID), zap.Error(err))
	}
	if err := s.roadmaps.Save(ctx, roadmap); err != nil {
		s.log.Warn("roadmap persist failed", zap.String("assessment", assessmentID), zap.Error(err))
	}
	if err := s.rankCache.SetAll(ctx, assessmentID, roadmap.All()); err != nil {
		s.log.Warn("rank cache write failed", zap.String("assessment", assessmentID), zap.Error(err))
	}
	return roadmap, nil
}

// GetRecommendation looks up one recommendation on the assessment's roadmap
func (s *AssessmentService) GetRecommendation(ctx context.Context, assessmentID, recID string) (*model.Recommendation, error) {
	roadmap, err := s.GetRoadmap(ctx, assessmentID)
	if err != nil || roadmap == nil {
		return nil, err
	}
	rec, ok := roadmap.Recommendation(recID)
	if !ok {
		return nil, nil
	}
	return rec, nil
}

// GetTopRecommendations returns the highest-ROI recommendations from the
// rank index, rebuilding it from the roadmap when empty.
func (s *AssessmentService) GetTopRecommendations(ctx context.Context, assessmentID string, limit int) ([]cache.RankedEntry, error) {
	entries, err := s.rankCache.GetTop(ctx, assessmentID, limit)
	if err != nil {
		return nil, err
	}
	if len(entries) > 0 {
		return entries, nil
	}

	// ZSET may have expired; rebuild it from the roadmap
	roadmap, err := s.GetRoadmap(ctx, assessmentID)
	if err != nil || roadmap == nil {
		return nil, err
	}
	if err := s.rankCache.SetAll(ctx, assessmentID, roadmap.All()); err != nil {
		return nil, err
	}
	return s.rankCache.GetTop(ctx, assessmentID, limit)
}
