package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"maturitymap/internal/model"
)

// RankCache keeps a ZSET of recommendation ids scored by ROI per
// assessment, so the "top recommendations" query never deserializes the
// whole roadmap.
type RankCache interface {
	SetAll(ctx context.Context, assessmentID string, recs []model.Recommendation) error
	GetTop(ctx context.Context, assessmentID string, limit int) ([]RankedEntry, error)
}

// RankedEntry is one recommendation id with its ROI score and rank
type RankedEntry struct {
	RecommendationID string  `json:"recommendationId"`
	ROI              float64 `json:"roiScore"`
	Rank             int     `json:"rank"`
}

type rankCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRankCache creates a new recommendation rank cache
func NewRankCache(client *redis.Client, ttl time.Duration) RankCache {
	return &rankCache{client: client, ttl: ttl}
}

func (c *rankCache) key(assessmentID string) string {
	return fmt.Sprintf("assessment:%s:rank", assessmentID)
}

func (c *rankCache) SetAll(ctx context.Context, assessmentID string, recs []model.Recommendation) error {
	key := c.key(assessmentID)
	if err := c.client.Del(ctx, key).Err(); err != nil {
		return err
	}
	if len(recs) == 0 {
		return nil
	}
	members := make([]redis.Z, len(recs))
	for i, rec := range recs {
		members[i] = redis.Z{Score: rec.ROI, Member: rec.ID}
	}
	if err := c.client.ZAdd(ctx, key, members...).Err(); err != nil {
		return err
	}
	return c.client.Expire(ctx, key, c.ttl).Err()
}

func (c *rankCache) GetTop(ctx context.Context, assessmentID string, limit int) ([]RankedEntry, error) {
	results, err := c.client.ZRevRangeWithScores(ctx, c.key(assessmentID), 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}

	entries := make([]RankedEntry, len(results))
	for i, z := range results {
		entries[i] = RankedEntry{
			RecommendationID: z.Member.(string),
			ROI:              z.Score,
			Rank:             i + 1,
		}
	}
	return entries, nil
}
