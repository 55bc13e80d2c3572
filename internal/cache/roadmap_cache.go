package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"maturitymap/internal/model"
)

// RoadmapCache holds computed roadmaps keyed by assessment and catalog
// version
type RoadmapCache interface {
	Get(ctx context.Context, assessmentID, catalogVersion string) (*model.Roadmap, error)
	Set(ctx context.Context, roadmap *model.Roadmap) error
	Invalidate(ctx context.Context, assessmentID, catalogVersion string) error
}

type roadmapCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRoadmapCache creates a new roadmap cache
func NewRoadmapCache(client *redis.Client, ttl time.Duration) RoadmapCache {
	return &roadmapCache{client: client, ttl: ttl}
}

func (c *roadmapCache) key(assessmentID, catalogVersion string) string {
	return fmt.Sprintf("assessment:%s:roadmap:%s", assessmentID, catalogVersion)
}

func (c *roadmapCache) Get(ctx context.Context, assessmentID, catalogVersion string) (*model.Roadmap, error) {
	data, err := c.client.Get(ctx, c.key(assessmentID, catalogVersion)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var roadmap model.Roadmap
	if err := json.Unmarshal([]byte(data), &roadmap); err != nil {
		return nil, err
	}
	roadmap.Index()
	return &roadmap, nil
}

func (c *roadmapCache) Set(ctx context.Context, roadmap *model.Roadmap) error {
	data, err := json.Marshal(roadmap)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(roadmap.AssessmentID, roadmap.CatalogVersion), data, c.ttl).Err()
}

func (c *roadmapCache) Invalidate(ctx context.Context, assessmentID, catalogVersion string) error {
	return c.client.Del(ctx, c.key(assessmentID, catalogVersion)).Err()
}
