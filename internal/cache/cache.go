// Package cache provides a small key/value store with TTL used to memoize
// derived product listings. Two interchangeable backends exist: a Redis client
// and an in-process map. The cache is advisory only - a miss or a backend
// failure never surfaces to callers, they just fall through to the database.
package cache

import (
    "context"
    "time"

    "github.com/redis/go-redis/v9"

    "github.com/d60-Lab/desi-delights/pkg/logger"
)

// 商品列表缓存 key
const (
    KeyBestSelling  = "products:best-selling"
    KeySeasonPrefix = "products:season:" // + 小写季节名
)

// Store 缓存后端接口；实现必须保证 miss 不是错误
type Store interface {
    // Get returns the stored value and whether it was present and unexpired.
    Get(ctx context.Context, key string) ([]byte, bool)
    // Set stores value with an absolute expiry of now+ttl.
    Set(ctx context.Context, key string, value []byte, ttl time.Duration)
    // Delete removes the given keys immediately.
    Delete(ctx context.Context, keys ...string)
}

// Options 后端选择配置
type Options struct {
    RedisAddr     string
    RedisPassword string
    RedisDB       int
}

// New 构造缓存：配置了 Redis 且可达时使用 Redis，否则静默回退到本地内存。
// 初始化失败从不抛错。
func New(ctx context.Context, opts Options) Store {
    if opts.RedisAddr == "" {
        return NewMemory()
    }
    client := redis.NewClient(&redis.Options{
        Addr:     opts.RedisAddr,
        Password: opts.RedisPassword,
        DB:       opts.RedisDB,
    })
    if err := client.Ping(ctx).Err(); err != nil {
        logger.Warn("redis unreachable, falling back to in-memory cache")
        _ = client.Close()
        return NewMemory()
    }
    return NewRedis(client)
}

// MerchandisingKeys 下单/商品变更后需要失效的固定 key 集合
func MerchandisingKeys() []string {
    return []string{
        KeyBestSelling,
        KeySeasonPrefix + "all",
        KeySeasonPrefix + "summer",
        KeySeasonPrefix + "winter",
        KeySeasonPrefix + "festival",
    }
}
