package cache

import (
    "context"
    "sync"
    "time"
)

type entry struct {
    value    []byte
    expireAt time.Time
}

// Memory is the in-process fallback backend: a map of key to (value, expiry)
// guarded by an RWMutex. Expired entries are dropped lazily on read.
type Memory struct {
    mu  sync.RWMutex
    m   map[string]entry
    now func() time.Time // overridable in tests
}

// NewMemory 创建本地内存缓存
func NewMemory() *Memory {
    return &Memory{m: make(map[string]entry), now: time.Now}
}

func (c *Memory) Get(_ context.Context, key string) ([]byte, bool) {
    c.mu.RLock()
    e, ok := c.m[key]
    c.mu.RUnlock()
    if !ok {
        return nil, false
    }
    if c.now().After(e.expireAt) {
        c.mu.Lock()
        delete(c.m, key)
        c.mu.Unlock()
        return nil, false
    }
    return e.value, true
}

func (c *Memory) Set(_ context.Context, key string, value []byte, ttl time.Duration) {
    c.mu.Lock()
    c.m[key] = entry{value: value, expireAt: c.now().Add(ttl)}
    c.mu.Unlock()
}

func (c *Memory) Delete(_ context.Context, keys ...string) {
    c.mu.Lock()
    for _, k := range keys {
        delete(c.m, k)
    }
    c.mu.Unlock()
}
