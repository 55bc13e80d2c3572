package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"maturitymap/internal/model"
)

// RoadmapRepo persists computed roadmaps. The stored copy is a cache of a
// pure derivation, never the source of truth: it can always be recomputed
// from the catalog and the latest snapshot.
type RoadmapRepo interface {
	Save(ctx context.Context, roadmap *model.Roadmap) error
	GetByAssessment(ctx context.Context, assessmentID string) (*model.Roadmap, error)
}

type roadmapRepo struct {
	collection *mongo.Collection
}

// NewRoadmapRepo creates a new roadmap repository
func NewRoadmapRepo(db *mongo.Database) RoadmapRepo {
	return &roadmapRepo{
		collection: db.Collection("roadmaps"),
	}
}

func (r *roadmapRepo) Save(ctx context.Context, roadmap *model.Roadmap) error {
	_, err := r.collection.ReplaceOne(
		ctx,
		bson.M{"_id": roadmap.AssessmentID},
		roadmap,
		options.Replace().SetUpsert(true),
	)
	return err
}

func (r *roadmapRepo) GetByAssessment(ctx context.Context, assessmentID string) (*model.Roadmap, error) {
	var roadmap model.Roadmap
	err := r.collection.FindOne(ctx, bson.M{"_id": assessmentID}).Decode(&roadmap)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	roadmap.Index()
	return &roadmap, nil
}
