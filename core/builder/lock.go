package builder

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// Locker serializes builds per collection. TryLock either acquires the
// named lock and returns its release function, or fails immediately with
// ErrBuildInProgress.
type Locker interface {
	TryLock(ctx context.Context, key string) (release func(ctx context.Context) error, err error)
}

// MutexLocker serializes builds within a single process.
type MutexLocker struct {
	mu   sync.Mutex
	held map[string]struct{}
}

// NewMutexLocker creates an in-process locker.
func NewMutexLocker() *MutexLocker {
	return &MutexLocker{held: make(map[string]struct{})}
}

// TryLock acquires key or fails with ErrBuildInProgress.
func (l *MutexLocker) TryLock(ctx context.Context, key string) (func(ctx context.Context) error, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, taken := l.held[key]; taken {
		return nil, fmt.Errorf("%w: %s", ErrBuildInProgress, key)
	}
	l.held[key] = struct{}{}

	return func(ctx context.Context) error {
		l.mu.Lock()
		defer l.mu.Unlock()
		delete(l.held, key)
		return nil
	}, nil
}

// DefaultLockTTL bounds how long a crashed build can keep a Redis lock.
const DefaultLockTTL = 30 * time.Minute

// RedisLocker serializes builds across processes with SET NX and a TTL,
// so a crashed holder cannot block rebuilds forever.
type RedisLocker struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisLocker creates a distributed locker; ttl values below one
// second fall back to DefaultLockTTL.
func NewRedisLocker(client *redis.Client, ttl time.Duration) *RedisLocker {
	if ttl < time.Second {
		ttl = DefaultLockTTL
	}
	return &RedisLocker{client: client, ttl: ttl}
}

// TryLock acquires key or fails with ErrBuildInProgress.
func (l *RedisLocker) TryLock(ctx context.Context, key string) (func(ctx context.Context) error, error) {
	ok, err := l.client.SetNX(ctx, "buildlock:"+key, time.Now().UTC().Format(time.RFC3339), l.ttl).Result()
	if err != nil {
		return nil, fmt.Errorf("acquire lock %s: %w", key, err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrBuildInProgress, key)
	}

	return func(ctx context.Context) error {
		if err := l.client.Del(ctx, "buildlock:"+key).Err(); err != nil {
			return fmt.Errorf("release lock %s: %w", key, err)
		}
		return nil
	}, nil
}
