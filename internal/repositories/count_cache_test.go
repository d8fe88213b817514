package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func TestCountCacheRepository(t *testing.T) {
	ctx := context.Background()

	// Start Redis container
	req := testcontainers.ContainerRequest{
		Image:        "redis:7.0-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}
	redisC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)
	defer redisC.Terminate(ctx)

	host, err := redisC.Host(ctx)
	assert.NoError(t, err)
	port, err := redisC.MappedPort(ctx, "6379")
	assert.NoError(t, err)

	rdb := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s", host, port.Port()),
	})
	defer rdb.Close()

	err = rdb.Ping(ctx).Err()
	assert.NoError(t, err)

	repo := NewCountCacheRepository(rdb, 2*time.Second)

	t.Run("Set and Get count", func(t *testing.T) {
		err := repo.SetCount(ctx, 1234)
		assert.NoError(t, err)

		got, err := repo.GetCount(ctx)
		assert.NoError(t, err)
		assert.Equal(t, int64(1234), got)
	})

	t.Run("Invalidate drops the cached value", func(t *testing.T) {
		err := repo.SetCount(ctx, 42)
		assert.NoError(t, err)

		err = repo.Invalidate(ctx)
		assert.NoError(t, err)

		_, err = repo.GetCount(ctx)
		assert.ErrorIs(t, err, ErrCountCacheMiss)
	})

	t.Run("Cached value expires", func(t *testing.T) {
		err := repo.SetCount(ctx, 7)
		assert.NoError(t, err)

		// Wait for expiration (2s)
		time.Sleep(3 * time.Second)

		_, err = repo.GetCount(ctx)
		assert.ErrorIs(t, err, ErrCountCacheMiss)
	})
}
