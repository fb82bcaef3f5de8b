package redis

import (
	"context"
	"log"
	"os"

	"github.com/redis/go-redis/v9"
)

var (
	Client *redis.Client
	Ctx    = context.Background()
)

// InitRedis connects the cache client. The availability calendar degrades to
// direct DB reads when Redis is unreachable, so a failed ping is logged, not
// fatal.
func InitRedis() {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}

	Client = redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   0,
	})

	if _, err := Client.Ping(Ctx).Result(); err != nil {
		log.Printf("Warning: failed to connect to Redis at %s: %v", addr, err)
		Client = nil
		return
	}
	log.Println("Connected to Redis")
}
