package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/refugiartstudio-blip/refugiart-bazar-backend/internal/core/domain"
)

const defaultLockTTL = 5 * time.Second

// releaseScript deletes the lock only when the stored token matches, so an
// expired lock re-acquired by another request is never released by the
// original holder.
var releaseScript = redis.NewScript(`
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
end
return 0
`)

// KeyMutex provides per-key mutual exclusion backed by Redis SETNX.
// Key format: lock:<scope>:<ids>. Held keys expire after the TTL so a
// crashed holder cannot wedge the key forever.
type KeyMutex struct {
	client *redis.Client
	ttl    time.Duration
}

// NewKeyMutex creates a KeyMutex wrapping the given Redis client.
func NewKeyMutex(client *redis.Client, ttl time.Duration) *KeyMutex {
	if ttl <= 0 {
		ttl = defaultLockTTL
	}
	return &KeyMutex{client: client, ttl: ttl}
}

// Acquire takes the lock for key. A held key yields domain.ErrConflict;
// callers surface it directly, no waiting and no retry. The returned release
// func is safe to defer.
func (m *KeyMutex) Acquire(ctx context.Context, key string) (func(ctx context.Context), error) {
	token := uuid.NewString()
	fullKey := "lock:" + key

	ok, err := m.client.SetNX(ctx, fullKey, token, m.ttl).Result()
	if err != nil {
		return nil, fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return nil, domain.ErrConflict
	}

	release := func(ctx context.Context) {
		_ = releaseScript.Run(ctx, m.client, []string{fullKey}, token).Err()
	}
	return release, nil
}
