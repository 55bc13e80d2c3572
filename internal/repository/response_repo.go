package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"maturitymap/internal/model"
)

// ResponseRepo stores immutable response snapshots. Every submission is a
// new document; snapshots are never updated in place.
type ResponseRepo interface {
	Create(ctx context.Context, snap *model.ResponseSnapshot) error
	GetByID(ctx context.Context, id string) (*model.ResponseSnapshot, error)
	GetLatestByAssessment(ctx context.Context, assessmentID string) (*model.ResponseSnapshot, error)
}

type responseRepo struct {
	collection *mongo.Collection
}

// NewResponseRepo creates a new response snapshot repository
func NewResponseRepo(db *mongo.Database) ResponseRepo {
	return &responseRepo{
		collection: db.Collection("responses"),
	}
}

func (r *responseRepo) Create(ctx context.Context, snap *model.ResponseSnapshot) error {
	if snap.SubmittedAt.IsZero() {
		snap.SubmittedAt = time.Now()
	}
	_, err := r.collection.InsertOne(ctx, snap)
	return err
}

func (r *responseRepo) GetByID(ctx context.Context, id string) (*model.ResponseSnapshot, error) {
	var snap model.ResponseSnapshot
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&snap)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &snap, nil
}

func (r *responseRepo) GetLatestByAssessment(ctx context.Context, assessmentID string) (*model.ResponseSnapshot, error) {
	opts := options.FindOne().SetSort(bson.M{"submittedAt": -1})
	var snap model.ResponseSnapshot
	err := r.collection.FindOne(ctx, bson.M{"assessmentId": assessmentID}, opts).Decode(&snap)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &snap, nil
}
