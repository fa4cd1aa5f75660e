package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/housinglink/pathways/pkg/common/logger"
	"github.com/housinglink/pathways/pkg/placements"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "placements:"

// TableCache keeps derived placement tables in Redis so repeated reads do
// not re-run the pipeline. Entries expire; the pipeline is the source of
// truth and repopulates on the next run.
type TableCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewTableCache(client *redis.Client, ttl time.Duration) *TableCache {
	return &TableCache{client: client, ttl: ttl}
}

// Get returns the cached table for a tag, or (nil, false) on a miss. Cache
// errors are logged and treated as misses so Redis outages never fail reads.
func (c *TableCache) Get(ctx context.Context, tag string) (placements.Table, bool) {
	payload, err := c.client.Get(ctx, keyPrefix+tag).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		logger.Log.WithError(err).WithField("tag", tag).Warn("Table cache read failed")
		return nil, false
	}
	var t placements.Table
	if err := json.Unmarshal(payload, &t); err != nil {
		logger.Log.WithError(err).WithField("tag", tag).Warn("Table cache entry corrupt")
		return nil, false
	}
	return t, true
}

func (c *TableCache) Put(ctx context.Context, tag string, t placements.Table) error {
	payload, err := json.Marshal(t)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, keyPrefix+tag, payload, c.ttl).Err()
}

func (c *TableCache) Invalidate(ctx context.Context, tags ...string) error {
	keys := make([]string, len(tags))
	for i, tag := range tags {
		keys[i] = keyPrefix + tag
	}
	return c.client.Del(ctx, keys...).Err()
}
