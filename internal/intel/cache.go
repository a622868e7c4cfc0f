// internal/intel/cache.go
package intel

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"resume-services/internal/common/logger"
)

// CachedProvider decorates a Provider with Redis cache-aside reads. Cache
// failures fall through to the wrapped provider.
type CachedProvider struct {
	next   Provider
	redis  *redis.Client
	ttl    time.Duration
	logger logger.Logger
}

func NewCachedProvider(next Provider, rdb *redis.Client, ttl time.Duration, log logger.Logger) *CachedProvider {
	return &CachedProvider{
		next:   next,
		redis:  rdb,
		ttl:    ttl,
		logger: log.WithFields(map[string]interface{}{"component": "intel-cache"}),
	}
}

func cacheKey(domain, roleFamily string) string {
	return "intel:" + domain + ":" + roleFamily
}

func (p *CachedProvider) Lookup(ctx context.Context, domain, roleFamily string) (*CompanyIntel, error) {
	key := cacheKey(domain, roleFamily)

	if val, err := p.redis.Get(ctx, key).Result(); err == nil {
		var cached CompanyIntel
		if err := json.Unmarshal([]byte(val), &cached); err == nil {
			return &cached, nil
		}
	}

	record, err := p.next.Lookup(ctx, domain, roleFamily)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(record); err == nil {
		if err := p.redis.Set(ctx, key, data, p.ttl).Err(); err != nil {
			p.logger.Warn("cache write failed", map[string]interface{}{
				"key":   key,
				"error": err,
			})
		}
	}

	return record, nil
}
