package config

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

var RedisClient *redis.Client

// ConnectRedis opens and pings the Redis client. An empty address leaves
// Redis disabled and returns a nil client.
func ConnectRedis(cfg Config) (*redis.Client, error) {
	if cfg.RedisAddr == "" {
		log.Println("REDIS_ADDR not set, search filter memory disabled")
		return nil, nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Username: cfg.RedisUser,
		Password: cfg.RedisPassword,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	res, err := rdb.Ping(ctx).Result()
	if err != nil {
		_ = rdb.Close()
		return nil, err
	}

	log.Println("Connected to Redis:", res)
	return rdb, nil
}
