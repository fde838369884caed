package services

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// CacheStore is the adapter boundary to the distributed key/value store.
// Absence is reported through the bool/empty results, never as an error.
type CacheStore interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	SetWithTTL(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
	Keys(ctx context.Context, pattern string) ([]string, error)
}

// RedisService implements CacheStore on a Redis client.
type RedisService struct {
	Client *redis.Client
}

// InitializeRedisClient builds the shared Redis client.
func InitializeRedisClient(addr, password string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
}

func (rs *RedisService) Get(ctx context.Context, key string) (string, bool, error) {
	val, err := rs.Client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return val, true, nil
}

func (rs *RedisService) Set(ctx context.Context, key, value string) error {
	return rs.Client.Set(ctx, key, value, 0).Err()
}

func (rs *RedisService) SetWithTTL(ctx context.Context, key, value string, ttl time.Duration) error {
	return rs.Client.Set(ctx, key, value, ttl).Err()
}

func (rs *RedisService) Delete(ctx context.Context, key string) error {
	return rs.Client.Del(ctx, key).Err()
}

func (rs *RedisService) Exists(ctx context.Context, key string) (bool, error) {
	n, err := rs.Client.Exists(ctx, key).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (rs *RedisService) Keys(ctx context.Context, pattern string) ([]string, error) {
	return rs.Client.Keys(ctx, pattern).Result()
}
