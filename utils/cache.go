package utils

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// AuthCachePrefix is the prefix used for Redis authorization cache keys.
const AuthCachePrefix = "auth:"

// AuthCacheClient is the dedicated client for authorization caching.
var AuthCacheClient *redis.Client

// InitAuthCache initializes the Redis client for authorization caching. A
// failed connection is not fatal: auth falls back to verifying signatures on
// every request.
func InitAuthCache(addr, password string, db int) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		GetLogger().Warn("Failed to connect to Redis (Auth Cache), continuing without auth cache", zap.Error(err))
		return
	}
	AuthCacheClient = client
}

// GetAuthCacheClient returns the Redis client for authorization caching, or
// nil when the cache is unavailable.
func GetAuthCacheClient() *redis.Client {
	return AuthCacheClient
}
