package services

import (
	"context"
	"errors"
	"time"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

// GetFromRedis decodes the JSON stored under key into target.
// It reports false when the key does not exist.
func GetFromRedis(ctx context.Context, rdb *redis.Client, key string, target interface{}) (bool, error) {
	cachedData, err := rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if err := json.Unmarshal(cachedData, target); err != nil {
		return false, err
	}
	return true, nil
}

// SetToRedis stores value as JSON under key for ttl.
func SetToRedis(ctx context.Context, rdb *redis.Client, key string, value interface{}, ttl time.Duration) error {
	dataJSON, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return rdb.Set(ctx, key, dataJSON, ttl).Err()
}

func DeleteFromRedis(ctx context.Context, rdb *redis.Client, key string) error {
	return rdb.Del(ctx, key).Err()
}
