package service

import (
	"context"
	"log"
	"time"

	database "rayk_backend/internals/databases"
)

const dedupTTL = 24 * time.Hour

// AlreadySeen reports whether a vendor event id was processed before,
// using redis SETNX. Without redis every event is treated as fresh, which
// matches provider at-least-once delivery.
func AlreadySeen(ctx context.Context, vendorEventID string) bool {
	if database.RedisClient == nil || vendorEventID == "" {
		return false
	}
	ok, err := database.RedisClient.SetNX(ctx, "webhook:seen:"+vendorEventID, 1, dedupTTL).Result()
	if err != nil {
		log.Printf("[WARN] webhook dedup: %v", err)
		return false
	}
	return !ok
}
