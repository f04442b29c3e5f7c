package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/pliabraaten/restaurant-tracker/internal/http-api/models"
)

// ErrCacheMiss is returned when the key is absent or the cache is disabled.
var ErrCacheMiss = errors.New("cache miss")

// RestaurantCache is a best-effort read-through cache for restaurant detail
// views (restaurant + meals + tags). A nil receiver or redis failure is
// treated as a miss so the caller falls back to the database.
type RestaurantCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRestaurantCache connects to redis at the given URL. TTL is in seconds.
func NewRestaurantCache(redisURL string, ttlSeconds int) (*RestaurantCache, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	opts.DialTimeout = 5 * time.Second
	opts.ReadTimeout = 3 * time.Second
	opts.WriteTimeout = 3 * time.Second

	rdb := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RestaurantCache{
		client: rdb,
		ttl:    time.Duration(ttlSeconds) * time.Second,
	}, nil
}

func restaurantKey(id int64) string {
	return fmt.Sprintf("restaurant:%d", id)
}

// Get returns the cached detail view, or ErrCacheMiss.
func (c *RestaurantCache) Get(ctx context.Context, id int64) (*models.Restaurant, error) {
	if c == nil || c.client == nil {
		return nil, ErrCacheMiss
	}

	raw, err := c.client.Get(ctx, restaurantKey(id)).Bytes()
	if err != nil {
		// redis.Nil and transport errors alike degrade to a DB read
		return nil, ErrCacheMiss
	}

	var rest models.Restaurant
	if err := json.Unmarshal(raw, &rest); err != nil {
		return nil, ErrCacheMiss
	}
	return &rest, nil
}

// Set stores the detail view with the configured TTL. Failures are dropped.
func (c *RestaurantCache) Set(ctx context.Context, rest *models.Restaurant) {
	if c == nil || c.client == nil || rest == nil {
		return
	}

	raw, err := json.Marshal(rest)
	if err != nil {
		return
	}
	c.client.Set(ctx, restaurantKey(rest.ID), raw, c.ttl)
}

// Invalidate drops the cached detail view after any write touching it.
func (c *RestaurantCache) Invalidate(ctx context.Context, id int64) {
	if c == nil || c.client == nil {
		return
	}
	c.client.Del(ctx, restaurantKey(id))
}

// Close releases the underlying redis connection.
func (c *RestaurantCache) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}
