package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"

	"github.com/slatedeck/GreenLight-Intelligence/internal/domain/analysis"
	"github.com/slatedeck/GreenLight-Intelligence/internal/infrastructure/monitoring/logging"
)

// defaultCacheTTL bounds how long a cached analysis result lives.  Results
// are deterministic per key, so the TTL only bounds memory, not staleness.
const defaultCacheTTL = 24 * time.Hour

// ResultCache is the redis-backed analysis-result cache.  It satisfies the
// analysis service's ResultCache interface.  Every failure degrades to a
// cache miss; the cache can never fail an analysis call.
type ResultCache struct {
	client *redis.Client
	ttl    time.Duration
	group  singleflight.Group
	logger logging.Logger
}

// NewResultCache constructs the cache.
func NewResultCache(client *redis.Client, logger logging.Logger) *ResultCache {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &ResultCache{client: client, ttl: defaultCacheTTL, logger: logger.Named("cache")}
}

// GetResult loads a cached result.  Concurrent lookups of the same key are
// collapsed through singleflight so a hot key costs one round trip.
func (c *ResultCache) GetResult(ctx context.Context, key string) (*analysis.AnalysisResult, bool) {
	v, err, _ := c.group.Do(key, func() (interface{}, error) {
		raw, err := c.client.Get(ctx, key).Bytes()
		if err != nil {
			return nil, err
		}
		var r analysis.AnalysisResult
		if err := json.Unmarshal(raw, &r); err != nil {
			return nil, err
		}
		return &r, nil
	})
	if err != nil {
		if err != redis.Nil {
			c.logger.Debug("cache read failed", logging.String("key", key), logging.Err(err))
		}
		return nil, false
	}
	return v.(*analysis.AnalysisResult), true
}

// SetResult stores a result best-effort.
func (c *ResultCache) SetResult(ctx context.Context, key string, r *analysis.AnalysisResult) {
	raw, err := json.Marshal(r)
	if err != nil {
		c.logger.Warn("cache encode failed", logging.Err(err))
		return
	}
	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		c.logger.Debug("cache write failed", logging.String("key", key), logging.Err(err))
	}
}
