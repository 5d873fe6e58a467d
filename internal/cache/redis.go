package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/zvrva/flightlog/config"
	"github.com/zvrva/flightlog/internal/domain"
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

func (c *RedisCache) GetFlights(ctx context.Context, ownerID string) ([]domain.Flight, error) {
	data, err := c.client.Get(ctx, flightsKey(ownerID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var flights []domain.Flight
	if err := json.Unmarshal(data, &flights); err != nil {
		return nil, err
	}
	return flights, nil
}

func (c *RedisCache) SetFlights(ctx context.Context, ownerID string, flights []domain.Flight) error {
	payload, err := json.Marshal(flights)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, flightsKey(ownerID), payload, c.flightsTTL).Err()
}

// InvalidateOwner drops the owner's cached list so the next stats read goes
// back to the repository. Called after every import that persisted rows.
func (c *RedisCache) InvalidateOwner(ctx context.Context, ownerID string) error {
	return c.client.Del(ctx, flightsKey(ownerID)).Err()
}

func flightsKey(ownerID string) string {
	return fmt.Sprintf("cache:flights:%s", ownerID)
}
