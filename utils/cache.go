// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"docportal/config"

	"github.com/go-redis/redis/v8"
)

// AuthCachePrefix keys the token-hash entries written at login time.
const AuthCachePrefix = "auth:"

// AuthCacheClient is the dedicated client for authorization caching.
var AuthCacheClient *redis.Client

// InitAuthCache initializes the Redis client for authorization caching.
// Failure is not fatal; the auth middleware falls back to signature-only
// verification when no cache is reachable.
func InitAuthCache() {
	AuthCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisAuthDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := AuthCacheClient.Ping(ctx).Result(); err != nil {
		log.Printf("WARNING: Redis (Auth Cache) unavailable: %v", err)
		AuthCacheClient = nil
	}
}

// GetAuthCacheClient returns the Redis client for authorization caching,
// or nil when Redis is not available.
func GetAuthCacheClient() *redis.Client {
	return AuthCacheClient
}

// SaveTokenHash records the hash of the most recently issued token for an
// account so the auth middleware can reject tokens revoked by a later login.
func SaveTokenHash(client *redis.Client, email, tokenHash string, ttl time.Duration) error {
	if client == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	return client.Set(ctx, AuthCachePrefix+email, tokenHash, ttl).Err()
}
