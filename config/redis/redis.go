package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// Cache is a small read-through cache. A miss returns (false, nil).
type Cache interface {
	GetCache(ctx context.Context, key string, dest interface{}) (bool, error)
	SetCache(ctx context.Context, key string, value interface{}) error
	DeleteCache(ctx context.Context, keys ...string) error
}

type Redis struct {
	rdb *goredis.Client
	ttl time.Duration
}

func Connect(ctx context.Context, addr, password string, db int, ttl time.Duration) (*Redis, error) {
	if addr == "" {
		return nil, errors.New("redis addr is empty")
	}
	rdb := goredis.NewClient(&goredis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}
	return &Redis{rdb: rdb, ttl: ttl}, nil
}

func (r *Redis) GetCache(ctx context.Context, key string, dest interface{}) (bool, error) {
	raw, err := r.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false, err
	}
	return true, nil
}

func (r *Redis) SetCache(ctx context.Context, key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return r.rdb.Set(ctx, key, raw, r.ttl).Err()
}

func (r *Redis) DeleteCache(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return r.rdb.Del(ctx, keys...).Err()
}

func (r *Redis) Close() error {
	return r.rdb.Close()
}

// Memory is used when REDIS_ADDR is empty and in tests. Entries expire
// after ttl like they do in Redis, a zero ttl keeps them until deleted.
type Memory struct {
	mu    sync.RWMutex
	items map[string]memoryItem
	ttl   time.Duration
	now   func() time.Time
}

type memoryItem struct {
	raw     []byte
	expires time.Time
}

func NewMemory(ttl time.Duration) *Memory {
	return &Memory{items: make(map[string]memoryItem), ttl: ttl, now: time.Now}
}

func (m *Memory) GetCache(_ context.Context, key string, dest interface{}) (bool, error) {
	m.mu.RLock()
	item, ok := m.items[key]
	m.mu.RUnlock()
	if !ok {
		return false, nil
	}
	if !item.expires.IsZero() && !m.now().Before(item.expires) {
		m.mu.Lock()
		if cur, ok := m.items[key]; ok && cur.expires.Equal(item.expires) {
			delete(m.items, key)
		}
		m.mu.Unlock()
		return false, nil
	}
	if err := json.Unmarshal(item.raw, dest); err != nil {
		return false, err
	}
	return true, nil
}

func (m *Memory) SetCache(_ context.Context, key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	item := memoryItem{raw: raw}
	if m.ttl > 0 {
		item.expires = m.now().Add(m.ttl)
	}
	m.mu.Lock()
	m.items[key] = item
	m.mu.Unlock()
	return nil
}

func (m *Memory) DeleteCache(_ context.Context, keys ...string) error {
	m.mu.Lock()
	for _, k := range keys {
		delete(m.items, k)
	}
	m.mu.Unlock()
	return nil
}
