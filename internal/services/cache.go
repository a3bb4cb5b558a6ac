package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"career-compass/internal/models"
)

// JobCache is a read-through Redis cache for job-search results, keyed by
// normalized keyword. An unavailable Redis never fails a search: cache reads
// miss and writes are dropped.
type JobCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewJobCache(addr, password string, ttl time.Duration) *JobCache {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("⚠️  Redis unavailable, job search cache disabled: %v", err)
		_ = client.Close()
		return &JobCache{client: nil, ttl: ttl}
	}

	return &JobCache{client: client, ttl: ttl}
}

// NewJobCacheWithClient wires an existing client, used by tests.
func NewJobCacheWithClient(client *redis.Client, ttl time.Duration) *JobCache {
	return &JobCache{client: client, ttl: ttl}
}

func (c *JobCache) Get(ctx context.Context, keyword string) ([]models.JobListing, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}

	data, err := c.client.Get(ctx, cacheKey(keyword)).Bytes()
	if err != nil {
		return nil, false
	}

	var listings []models.JobListing
	if err := json.Unmarshal(data, &listings); err != nil {
		return nil, false
	}

	return listings, true
}

func (c *JobCache) Set(ctx context.Context, keyword string, listings []models.JobListing) {
	if c == nil || c.client == nil {
		return
	}

	data, err := json.Marshal(listings)
	if err != nil {
		return
	}

	if err := c.client.Set(ctx, cacheKey(keyword), data, c.ttl).Err(); err != nil {
		log.Printf("⚠️  Failed to cache job search results: %v", err)
	}
}

func cacheKey(keyword string) string {
	return fmt.Sprintf("jobs:%s", strings.ToLower(strings.TrimSpace(keyword)))
}
