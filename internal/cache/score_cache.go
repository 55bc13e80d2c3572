package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"maturitymap/internal/model"
)

// ScoreCache holds computed score reports keyed by assessment and catalog
// version. The computation is pure, so a hit is always valid for its
// (snapshot, catalog) pair; a catalog bump changes the key and misses.
type ScoreCache interface {
	Get(ctx context.Context, assessmentID, catalogVersion string) (*model.ScoreReport, error)
	Set(ctx context.Context, assessmentID, catalogVersion string, report *model.ScoreReport) error
	Invalidate(ctx context.Context, assessmentID, catalogVersion string) error
}

type scoreCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewScoreCache creates a new score report cache
func NewScoreCache(client *redis.Client, ttl time.Duration) ScoreCache {
	return &scoreCache{client: client, ttl: ttl}
}

func (c *scoreCache) key(assessmentID, catalogVersion string) string {
	return fmt.Sprintf("assessment:%s:scores:%s", assessmentID, catalogVersion)
}

func (c *scoreCache) Get(ctx context.Context, assessmentID, catalogVersion string) (*model.ScoreReport, error) {
	data, err := c.client.Get(ctx, c.key(assessmentID, catalogVersion)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var report model.ScoreReport
	if err := json.Unmarshal([]byte(data), &report); err != nil {
		return nil, err
	}
	return &report, nil
}

func (c *scoreCache) Set(ctx context.Context, assessmentID, catalogVersion string, report *model.ScoreReport) error {
	data, err := json.Marshal(report)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(assessmentID, catalogVersion), data, c.ttl).Err()
}

func (c *scoreCache) Invalidate(ctx context.Context, assessmentID, catalogVersion string) error {
	return c.client.Del(ctx, c.key(assessmentID, catalogVersion)).Err()
}
