package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dharmasatrya/flyback/internal/models"
)

var ErrMiss = errors.New("cache miss")

// Cache stores provider results for a single leg.
type Cache interface {
	Get(ctx context.Context, q models.LegQuery) ([]models.Flight, error)
	Set(ctx context.Context, q models.LegQuery, flights []models.Flight) error
	Close() error
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCache(cfg RedisConfig) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", cfg.Addr, err)
	}

	return &RedisCache{
		client: client,
		ttl:    cfg.TTL,
	}, nil
}

func (c *RedisCache) Get(ctx context.Context, q models.LegQuery) ([]models.Flight, error) {
	data, err := c.client.Get(ctx, legKey(q)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrMiss
		}
		return nil, fmt.Errorf("redis get leg: %w", err)
	}

	var flights []models.Flight
	if err := json.Unmarshal(data, &flights); err != nil {
		return nil, fmt.Errorf("unmarshal cached leg: %w", err)
	}

	return flights, nil
}

func (c *RedisCache) Set(ctx context.Context, q models.LegQuery, flights []models.Flight) error {
	if c.ttl <= 0 {
		return nil
	}

	data, err := json.Marshal(flights)
	if err != nil {
		return fmt.Errorf("marshal leg for cache: %w", err)
	}

	if err := c.client.Set(ctx, legKey(q), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set leg: %w", err)
	}
	return nil
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}

// NoOpCache always misses.
type NoOpCache struct{}

func NewNoOpCache() *NoOpCache {
	return &NoOpCache{}
}

func (c *NoOpCache) Get(ctx context.Context, q models.LegQuery) ([]models.Flight, error) {
	return nil, ErrMiss
}

func (c *NoOpCache) Set(ctx context.Context, q models.LegQuery, flights []models.Flight) error {
	return nil
}

func (c *NoOpCache) Close() error {
	return nil
}

func legKey(q models.LegQuery) string {
	keyData := struct {
		Origin      string
		Destination string
		Date        string
		Passengers  int
	}{
		Origin:      q.Origin,
		Destination: q.Destination,
		Date:        q.Date.String(),
		Passengers:  q.Passengers,
	}

	data, _ := json.Marshal(keyData)
	hash := sha256.Sum256(data)
	return "flyback:leg:" + hex.EncodeToString(hash[:])
}
