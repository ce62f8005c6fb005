package cache

import (
	"go.uber.org/zap"

	"github.com/quickbite/backend/internal/infrastructure/config"
)

// Factory creates reference caches based on configuration
type Factory struct {
	cacheConfig config.CacheConfig
	redisConfig config.RedisConfig
	logger      *zap.Logger
}

// NewFactory creates a cache factory
func NewFactory(cacheCfg config.CacheConfig, redisCfg config.RedisConfig, logger *zap.Logger) *Factory {
	return &Factory{
		cacheConfig: cacheCfg,
		redisConfig: redisCfg,
		logger:      logger,
	}
}

// Create builds the configured cache backend. When Redis is configured but
// unreachable at startup, the factory logs the failure and falls back to the
// in-memory backend; the catalog keeps serving either way.
func (f *Factory) Create() ReferenceCache {
	if f.cacheConfig.Backend == "redis" {
		redisCache, err := NewRedisCache(f.redisConfig)
		if err == nil {
			f.logger.Info("using redis reference cache",
				zap.String("host", f.redisConfig.Host))
			return redisCache
		}
		f.logger.Warn("redis unavailable, falling back to in-memory reference cache",
			zap.Error(err))
	}
	return NewMemoryCache()
}
