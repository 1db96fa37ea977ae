package cache

import (
    "context"
    "time"

    "github.com/redis/go-redis/v9"

    "github.com/d60-Lab/desi-delights/pkg/logger"
)

// Redis backend. Errors are logged and treated as misses because the cache
// never carries correctness.
type Redis struct {
    client *redis.Client
}

// NewRedis 包装一个已连通的 redis client
func NewRedis(client *redis.Client) *Redis {
    return &Redis{client: client}
}

func (c *Redis) Get(ctx context.Context, key string) ([]byte, bool) {
    data, err := c.client.Get(ctx, key).Bytes()
    if err != nil {
        if err != redis.Nil {
            logger.Warn("cache get failed: " + err.Error())
        }
        return nil, false
    }
    return data, true
}

func (c *Redis) Set(ctx context.Context, key string, value []byte, ttl time.Duration) {
    if err := c.client.Set(ctx, key, value, ttl).Err(); err != nil {
        logger.Warn("cache set failed: " + err.Error())
    }
}

func (c *Redis) Delete(ctx context.Context, keys ...string) {
    if len(keys) == 0 {
        return
    }
    if err := c.client.Del(ctx, keys...).Err(); err != nil {
        logger.Warn("cache delete failed: " + err.Error())
    }
}
