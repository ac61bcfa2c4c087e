// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"shipquote/config"

	"github.com/go-redis/redis/v8"
)

// QuoteCacheClient is the Redis client backing the quote fingerprint cache.
var QuoteCacheClient *redis.Client

// InitQuoteCache initializes the Redis client for quote caching (using DB from AppConfig).
func InitQuoteCache() {
	QuoteCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQuoteDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := QuoteCacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Quote Cache): %v", err)
	}
}

// GetQuoteCacheClient returns the quote cache client.
func GetQuoteCacheClient() *redis.Client {
	if QuoteCacheClient == nil {
		InitQuoteCache()
	}
	return QuoteCacheClient
}
