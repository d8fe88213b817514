package repositories

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/dmolinero/biblioteca-api/internal/logger"
	"github.com/redis/go-redis/v9"
)

// ErrCountCacheMiss is returned when no cached count is present.
var ErrCountCacheMiss = errors.New("book count not found in cache")

const countCacheKey = "books:count"

// CountCacheRepository caches the total book count in Redis with a TTL.
// The cached value is invalidated whenever a book is added or deleted.
type CountCacheRepository struct {
	client *redis.Client
	exp    time.Duration
}

// NewCountCacheRepository creates a new repository instance with the given TTL.
func NewCountCacheRepository(client *redis.Client, expiration time.Duration) *CountCacheRepository {
	return &CountCacheRepository{
		client: client,
		exp:    expiration,
	}
}

// GetCount returns the cached book count, or ErrCountCacheMiss when the
// key is absent or expired.
func (r *CountCacheRepository) GetCount(ctx context.Context) (int64, error) {
	val, err := r.client.Get(ctx, countCacheKey).Result()

	logger.Log.Infow(
		"key", countCacheKey,
		"result", val,
		"error", err,
	)

	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, ErrCountCacheMiss
		}
		return 0, err
	}

	count, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, err
	}

	return count, nil
}

// SetCount caches the book count with the repository's TTL.
func (r *CountCacheRepository) SetCount(ctx context.Context, count int64) error {
	err := r.client.Set(ctx, countCacheKey, strconv.FormatInt(count, 10), r.exp).Err()

	logger.Log.Infow(
		"key", countCacheKey,
		"count", count,
		"error", err,
	)

	return err
}

// Invalidate drops the cached count.
func (r *CountCacheRepository) Invalidate(ctx context.Context) error {
	err := r.client.Del(ctx, countCacheKey).Err()

	logger.Log.Infow(
		"key", countCacheKey,
		"result", "invalidated",
		"error", err,
	)

	return err
}
