package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/gramsetu/complaints-api/internal/core/domain"
)

const reputationTTL = 5 * time.Minute

// ReputationCache is a read-through cache for reputation records.
// Key format: reputation:<owner_id>
type ReputationCache struct {
	client *redis.Client
}

// NewReputationCache creates a ReputationCache wrapping the given Redis client.
func NewReputationCache(client *redis.Client) *ReputationCache {
	return &ReputationCache{client: client}
}

// Get returns the cached record, or (nil, nil) on a miss.
func (c *ReputationCache) Get(ctx context.Context, ownerID string) (*domain.ReputationRecord, error) {
	raw, err := c.client.Get(ctx, c.key(ownerID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("reputation cache get: %w", err)
	}

	var rec domain.ReputationRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		// Corrupt entry: treat as a miss rather than failing the read path.
		return nil, nil
	}
	return &rec, nil
}

// Set stores the record with a short TTL.
func (c *ReputationCache) Set(ctx context.Context, ownerID string, rec *domain.ReputationRecord) error {
	raw, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("reputation cache set: %w", err)
	}
	return c.client.Set(ctx, c.key(ownerID), raw, reputationTTL).Err()
}

// Invalidate drops the cached entry for ownerID.
func (c *ReputationCache) Invalidate(ctx context.Context, ownerID string) error {
	return c.client.Del(ctx, c.key(ownerID)).Err()
}

func (c *ReputationCache) key(ownerID string) string {
	return "reputation:" + ownerID
}
