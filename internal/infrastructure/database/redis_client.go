package database

import (
	"log"
	"os"
	"strconv"

	"github.com/redis/go-redis/v9"
)

// ConnectRedis builds the client for the cart cache. Returns nil when
// REDIS_ADDR is unset so callers can run without the cache layer.
func ConnectRedis() *redis.Client {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		log.Printf("[database][redis] REDIS_ADDR not set, cart cache disabled")
		return nil
	}

	db := 0
	if v, err := strconv.Atoi(os.Getenv("REDIS_DB")); err == nil {
		db = v
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       db,
	})
	log.Printf("[database][redis] client initialized addr=%s db=%d", addr, db)
	return client
}
