package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"pizza-delivery-shop/utils"
)

const (
	CacheKeyCategories = "catalog:categories"
	CacheKeyProducts   = "catalog:products"
	CacheKeyAreas      = "catalog:areas"
)

func CacheKeyProductsByCategory(categoryID uint) string {
	return fmt.Sprintf("catalog:products:cat:%d", categoryID)
}

func CacheKeyPricing(productID uint) string {
	return fmt.Sprintf("catalog:pricing:%d", productID)
}

// CatalogCache is a read-through JSON cache in front of the storefront
// list endpoints. A nil *CatalogCache is a no-op, so callers never check
// whether redis is configured.
type CatalogCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCatalogCache(addr string) (*CatalogCache, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return &CatalogCache{client: client, ttl: 5 * time.Minute}, nil
}

// Get unmarshals a cached value into dest and reports whether it was a
// hit. Cache failures count as misses; the database is always there.
func (c *CatalogCache) Get(ctx context.Context, key string, dest interface{}) bool {
	if c == nil {
		return false
	}
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}
	return json.Unmarshal(data, dest) == nil
}

func (c *CatalogCache) Set(ctx context.Context, key string, value interface{}) {
	if c == nil {
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		utils.ErrorLogger.Printf("cache: set %s: %v", key, err)
	}
}

// Invalidate drops the given keys after an admin write.
func (c *CatalogCache) Invalidate(ctx context.Context, keys ...string) {
	if c == nil || len(keys) == 0 {
		return
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		utils.ErrorLogger.Printf("cache: invalidate: %v", err)
	}
}

// InvalidatePattern clears every key matching a glob, e.g.
// "catalog:products*" after a product edit.
func (c *CatalogCache) InvalidatePattern(ctx context.Context, pattern string) {
	if c == nil {
		return
	}
	iter := c.client.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			utils.ErrorLogger.Printf("cache: invalidate %s: %v", iter.Val(), err)
		}
	}
	if err := iter.Err(); err != nil {
		utils.ErrorLogger.Printf("cache: scan %s: %v", pattern, err)
	}
}
