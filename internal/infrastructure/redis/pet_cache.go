package redisinfra

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-pet-adoption-api/internal/domain"
	"github.com/redis/go-redis/v9"
)

const petsKey = "pets:all"

// PetCache keeps a JSON copy of the pet catalog in Redis.
type PetCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewPetCache connects to the Redis server at url and pings it.
func NewPetCache(ctx context.Context, url string, ttl time.Duration) (*PetCache, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return &PetCache{client: client, ttl: ttl}, nil
}

// Get returns the cached catalog. ok is false on a cache miss.
func (c *PetCache) Get(ctx context.Context) (pets []domain.Pet, ok bool, err error) {
	raw, err := c.client.Get(ctx, petsKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	if err := json.Unmarshal(raw, &pets); err != nil {
		return nil, false, fmt.Errorf("decode cached pets: %w", err)
	}
	return pets, true, nil
}

func (c *PetCache) Set(ctx context.Context, pets []domain.Pet) error {
	raw, err := json.Marshal(pets)
	if err != nil {
		return fmt.Errorf("encode pets: %w", err)
	}
	return c.client.Set(ctx, petsKey, raw, c.ttl).Err()
}

func (c *PetCache) Close() error {
	return c.client.Close()
}
