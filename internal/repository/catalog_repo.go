package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"maturitymap/internal/model"
)

// CatalogMeta describes a loaded catalog version
type CatalogMeta struct {
	ID        string    `bson:"_id"`
	Version   string    `bson:"version"`
	UpdatedAt time.Time `bson:"updatedAt"`
}

const catalogMetaID = "catalog"

// CatalogRepo reads the immutable question catalog. ReplaceAll exists for
// the seeding tool only; the running service never writes here.
type CatalogRepo interface {
	GetAll(ctx context.Context) ([]model.Question, error)
	GetVersion(ctx context.Context) (string, error)
	ReplaceAll(ctx context.Context, version string, questions []model.Question) error
}

type catalogRepo struct {
	questions *mongo.Collection
	meta      *mongo.Collection
}

// NewCatalogRepo creates a new catalog repository
func NewCatalogRepo(db *mongo.Database) CatalogRepo {
	return &catalogRepo{
		questions: db.Collection("questions"),
		meta:      db.Collection("catalog_meta"),
	}
}

func (r *catalogRepo) GetAll(ctx context.Context) ([]model.Question, error) {
	cursor, err := r.questions.Find(ctx, bson.M{}, options.Find().SetSort(bson.M{"_id": 1}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var questions []model.Question
	if err := cursor.All(ctx, &questions); err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *catalogRepo) GetVersion(ctx context.Context) (string, error) {
	var meta CatalogMeta
	err := r.meta.FindOne(ctx, bson.M{"_id": catalogMetaID}).Decode(&meta)
	if err == mongo.ErrNoDocuments {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return meta.Version, nil
}

func (r *catalogRepo) ReplaceAll(ctx context.Context, version string, questions []model.Question) error {
	if _, err := r.questions.DeleteMany(ctx, bson.M{}); err != nil {
		return err
	}

	docs := make([]interface{}, len(questions))
	for i := range questions {
		docs[i] = questions[i]
	}
	if len(docs) > 0 {
		if _, err := r.questions.InsertMany(ctx, docs); err != nil {
			return err
		}
	}

	meta := CatalogMeta{ID: catalogMetaID, Version: version, UpdatedAt: time.Now()}
	_, err := r.meta.ReplaceOne(ctx, bson.M{"_id": catalogMetaID}, meta, options.Replace().SetUpsert(true))
	return err
}
