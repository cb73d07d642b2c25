package config

import (
	"context"
	"log"
	"os"

	"github.com/redis/go-redis/v9"
)

var RDB *redis.Client

// InitRedis connects the shared client used for the user-profile and
// current-weather caches. Redis is optional: callers must tolerate RDB == nil.
func InitRedis() {
	host := os.Getenv("REDIS_HOST")
	if host == "" {
		log.Println("REDIS_HOST not set, running without cache")
		return
	}

	RDB = redis.NewClient(&redis.Options{
		Addr:     host + ":" + GetenvDefault("REDIS_PORT", "6379"),
		Username: os.Getenv("REDIS_USERNAME"),
		Password: os.Getenv("REDIS_PASSWORD"),
	})

	if err := RDB.Ping(context.Background()).Err(); err != nil {
		log.Printf("Redis connection failed, running without cache: %v", err)
		RDB = nil
	}
}
