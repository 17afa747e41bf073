package analytics

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/DehBarca/ordernotify/internal/domain/channel"
	"github.com/DehBarca/ordernotify/internal/domain/entity"
)

// RedisCounter tallies dispatch outcomes per kind in Redis, keyed as
// <prefix>:<kind>
type RedisCounter struct {
	client *redis.Client
	prefix string
	logger *zap.Logger
}

// NewRedisCounter creates a counter over an existing Redis client
func NewRedisCounter(client *redis.Client, prefix string, logger *zap.Logger) *RedisCounter {
	if prefix == "" {
		prefix = "ordernotify:dispatched"
	}
	return &RedisCounter{
		client: client,
		prefix: prefix,
		logger: logger,
	}
}

// Update implements the dispatch listener capability. A Redis failure
// is logged and swallowed: analytics must never break a dispatch.
func (c *RedisCounter) Update(result *entity.NotificationResult) {
	if err := c.client.Incr(context.Background(), c.key(result.Kind)).Err(); err != nil {
		c.logger.Error("Failed to increment dispatch counter",
			zap.String("kind", result.Kind.String()),
			zap.Error(err))
	}
}

// Count returns the tally for one kind. A missing key counts as zero.
func (c *RedisCounter) Count(ctx context.Context, kind channel.Kind) (int64, error) {
	n, err := c.client.Get(ctx, c.key(kind)).Int64()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("get dispatch counter for %s: %w", kind, err)
	}
	return n, nil
}

func (c *RedisCounter) key(kind channel.Kind) string {
	return fmt.Sprintf("%s:%s", c.prefix, kind)
}
