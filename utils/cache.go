// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"realtor/config"

	"github.com/go-redis/redis/v8"
)

// MemoryClient is the Redis client backing conversation context and user profiles.
var MemoryClient *redis.Client

// InitMemoryStore initializes the Redis client used for assistant memory.
func InitMemoryStore() {
	MemoryClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisMemoryDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := MemoryClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Memory): %v", err)
	}
}

// GetMemoryClient returns the Redis client for assistant memory.
func GetMemoryClient() *redis.Client {
	if MemoryClient == nil {
		InitMemoryStore()
	}
	return MemoryClient
}
