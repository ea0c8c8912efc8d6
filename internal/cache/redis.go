package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/avialane/flightbooking/config"
	"github.com/avialane/flightbooking/internal/domain"
	"github.com/redis/go-redis/v9"
)

type RedisCache struct {
	client     *redis.Client
	flightsTTL time.Duration
}

func NewRedisCache(cfg config.RedisConfig, flightsTTL time.Duration) *RedisCache {
	return &RedisCache{
		client:     redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		flightsTTL: flightsTTL,
	}
}

func (c *RedisCache) GetFlightPage(ctx context.Context, page, size int) (*domain.Page[domain.Flight], error) {
	data, err := c.client.Get(ctx, flightPageKey(page, size)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var cached domain.Page[domain.Flight]
	if err := json.Unmarshal(data, &cached); err != nil {
		return nil, err
	}
	return &cached, nil
}

func (c *RedisCache) SetFlightPage(ctx context.Context, page *domain.Page[domain.Flight]) error {
	payload, err := json.Marshal(page)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, flightPageKey(page.Number, page.Size), payload, c.flightsTTL).Err()
}

// InvalidateFlights drops every cached flight page. Called after any flight
// write so listings never serve a stale page past the TTL window.
func (c *RedisCache) InvalidateFlights(ctx context.Context) error {
	iter := c.client.Scan(ctx, 0, "cache:flights:*", 100).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}

func flightPageKey(page, size int) string {
	return fmt.Sprintf("cache:flights:%d:%d", page, size)
}
