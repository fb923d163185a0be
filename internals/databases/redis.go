package database

import (
	"context"
	"log"
	"os"

	"github.com/go-redis/redis/v8"
)

var RedisClient *redis.Client

// ConnectRedis is optional infrastructure: webhook dedup and public-link
// throttling degrade to no-ops when REDIS_URL is unset.
func ConnectRedis() {
	url := os.Getenv("REDIS_URL")
	if url == "" {
		log.Println("[WARN] REDIS_URL not set, webhook dedup disabled")
		return
	}

	opt, err := redis.ParseURL(url)
	if err != nil {
		log.Printf("[ERROR] invalid REDIS_URL: %v", err)
		return
	}

	client := redis.NewClient(opt)
	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Printf("[ERROR] redis ping failed: %v", err)
		return
	}
	RedisClient = client
	log.Println("[INFO] Redis connected")
}
