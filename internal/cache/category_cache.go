package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"shop/internal/dto"
	"shop/internal/metrics"

	"github.com/redis/go-redis/v9"
)

const categoriesCacheKey = "categories:all"

// CategoryCache caches the list of live categories.
type CategoryCache interface {
	// GetAll returns the cached list and whether it was present.
	GetAll(ctx context.Context) ([]dto.CategoryDTO, bool, error)
	SetAll(ctx context.Context, categories []dto.CategoryDTO) error
	Invalidate(ctx context.Context) error
}

// RedisCategoryCache stores the category list as JSON under a single key.
type RedisCategoryCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCategoryCache creates a new instance of RedisCategoryCache.
func NewRedisCategoryCache(client *redis.Client, ttl time.Duration) *RedisCategoryCache {
	return &RedisCategoryCache{
		client: client,
		ttl:    ttl,
	}
}

func (c *RedisCategoryCache) GetAll(ctx context.Context) ([]dto.CategoryDTO, bool, error) {
	data, err := c.client.Get(ctx, categoriesCacheKey).Bytes()
	if errors.Is(err, redis.Nil) {
		metrics.CacheMisses.WithLabelValues(categoriesCacheKey).Inc()
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to get categories from cache: %w", err)
	}

	var categories []dto.CategoryDTO
	if err := json.Unmarshal(data, &categories); err != nil {
		return nil, false, fmt.Errorf("failed to unmarshal cached categories: %w", err)
	}
	metrics.CacheHits.WithLabelValues(categoriesCacheKey).Inc()
	return categories, true, nil
}

func (c *RedisCategoryCache) SetAll(ctx context.Context, categories []dto.CategoryDTO) error {
	data, err := json.Marshal(categories)
	if err != nil {
		return fmt.Errorf("failed to marshal categories: %w", err)
	}
	if err := c.client.Set(ctx, categoriesCacheKey, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache categories: %w", err)
	}
	return nil
}

func (c *RedisCategoryCache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, categoriesCacheKey).Err(); err != nil {
		return fmt.Errorf("failed to invalidate categories cache: %w", err)
	}
	return nil
}

// NopCategoryCache never stores anything. Used when Redis is not configured.
type NopCategoryCache struct{}

func (NopCategoryCache) GetAll(context.Context) ([]dto.CategoryDTO, bool, error) {
	return nil, false, nil
}

func (NopCategoryCache) SetAll(context.Context, []dto.CategoryDTO) error { return nil }

func (NopCategoryCache) Invalidate(context.Context) error { return nil }
