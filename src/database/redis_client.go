package database

import (
	"context"
	"log"

	"github.com/redis/go-redis/v9"
)

var RedisClient *redis.Client
var RedisCtx = context.Background()

// InitRedis connects the shared redis client. Redis is optional: without it
// the intake wizard falls back to in-memory sessions and analytics counters
// are skipped, so a failed connect is a warning, not a fatal.
func InitRedis(uri string) {
	if uri == "" {
		log.Println("⚠️ REDIS_URI not set → running without Redis")
		return
	}

	RedisClient = redis.NewClient(&redis.Options{
		Addr: uri,
		DB:   0,
	})
	if _, err := RedisClient.Ping(RedisCtx).Result(); err != nil {
		log.Println("⚠️ Failed to connect Redis:", err)
		RedisClient = nil
		return
	}
	log.Println("✅ Redis connected successfully")
}
