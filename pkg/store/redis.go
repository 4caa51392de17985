package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"pos-service/pkg/config"
	"pos-service/prometheus"

	"github.com/redis/go-redis/v9"
)

// Redis persists each slot as a plain Redis string keyed by slot name.
type Redis struct {
	client *redis.Client
}

// NewRedis connects to Redis and verifies the connection with a ping.
func NewRedis(cfg *config.Config) (*Redis, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Store.RedisAddr,
		Password: cfg.Store.RedisPassword,
		DB:       cfg.Store.RedisDB,
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("connect to redis: %w", err)
	}
	return &Redis{client: client}, nil
}

// Load implements Adapter.
func (r *Redis) Load(ctx context.Context, key string) ([]byte, bool, error) {
	raw, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return raw, true, nil
}

// Save implements Adapter. Slots never expire.
func (r *Redis) Save(ctx context.Context, key string, value []byte) error {
	defer prometheus.TrackStoreSave(key)(time.Now())
	return r.client.Set(ctx, key, value, 0).Err()
}
