package config

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	Redis   *redis.Client
	redisMu sync.Mutex
)

// ConnectRedis initializes the shared Redis client used for the booking
// ledger store (idempotent).
func ConnectRedis(addr string) *redis.Client {
	redisMu.Lock()
	defer redisMu.Unlock()

	if Redis != nil {
		return Redis
	}

	client := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatalf("failed to connect to Redis at %s: %v", addr, err)
	}

	Redis = client
	log.Println("connected to Redis")
	return Redis
}

func CloseRedis() {
	redisMu.Lock()
	defer redisMu.Unlock()

	if Redis != nil {
		_ = Redis.Close()
		Redis = nil
	}
}
