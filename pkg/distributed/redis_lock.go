package distributed

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

var (
	ErrLockNotAcquired = errors.New("lock not acquired")
	ErrLockNotHeld     = errors.New("lock not held")
)

var releaseScript = redis.NewScript(`
	if redis.call("GET", KEYS[1]) == ARGV[1] then
		return redis.call("DEL", KEYS[1])
	else
		return 0
	end
`)

// RedisLock is a held lock. Only the holder's token can release it.
type RedisLock struct {
	client *redis.Client
	key    string
	value  string
}

// RedisLockManager hands out SET NX locks on one Redis.
type RedisLockManager struct {
	client *redis.Client
}

func NewRedisLockManager(client *redis.Client) *RedisLockManager {
	return &RedisLockManager{
		client: client,
	}
}

// AcquireLock tries once to take key for ttl.
func (m *RedisLockManager) AcquireLock(ctx context.Context, key, value string, ttl time.Duration) (*RedisLock, error) {
	success, err := m.client.SetNX(ctx, key, value, ttl).Result()
	if err != nil {
		return nil, err
	}

	if !success {
		return nil, ErrLockNotAcquired
	}

	return &RedisLock{
		client: m.client,
		key:    key,
		value:  value,
	}, nil
}

// TryLockWithRetry polls for the lock up to maxRetries times.
func (m *RedisLockManager) TryLockWithRetry(
	ctx context.Context,
	key, value string,
	ttl time.Duration,
	maxRetries int,
	retryInterval time.Duration,
) (*RedisLock, error) {
	for i := 0; i < maxRetries; i++ {
		lock, err := m.AcquireLock(ctx, key, value, ttl)
		if err == nil {
			return lock, nil
		}

		if !errors.Is(err, ErrLockNotAcquired) {
			return nil, err
		}

		if i < maxRetries-1 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(retryInterval):
			}
		}
	}

	return nil, ErrLockNotAcquired
}

// Release deletes the key if it is still ours.
func (l *RedisLock) Release(ctx context.Context) error {
	result, err := releaseScript.Run(ctx, l.client, []string{l.key}, l.value).Int()
	if err != nil {
		return err
	}

	if result == 0 {
		return ErrLockNotHeld
	}

	return nil
}

// UserLocker serialises work per user id across processes.
type UserLocker struct {
	manager       *RedisLockManager
	prefix        string
	ttl           time.Duration
	maxRetries    int
	retryInterval time.Duration
}

// NewUserLocker returns a locker whose keys look like "<prefix>:<user id>".
func NewUserLocker(client *redis.Client, prefix string, ttl time.Duration) *UserLocker {
	return &UserLocker{
		manager:       NewRedisLockManager(client),
		prefix:        strings.TrimSuffix(prefix, ":"),
		ttl:           ttl,
		maxRetries:    50,
		retryInterval: 100 * time.Millisecond,
	}
}

// LockUsers takes one lock per distinct user in ascending id order, so two
// callers locking overlapping sets cannot deadlock. On failure every lock
// already taken is released. The returned func releases all of them.
func (u *UserLocker) LockUsers(ctx context.Context, userIDs ...uint) (func(context.Context) error, error) {
	ids := uniqueSorted(userIDs)
	token := uuid.NewString()

	held := make([]*RedisLock, 0, len(ids))
	releaseAll := func(ctx context.Context) error {
		var errs []error
		for i := len(held) - 1; i >= 0; i-- {
			if err := held[i].Release(ctx); err != nil {
				errs = append(errs, fmt.Errorf("release %s: %w", held[i].key, err))
			}
		}
		return errors.Join(errs...)
	}

	for _, id := range ids {
		key := u.key(id)
		lock, err := u.manager.TryLockWithRetry(ctx, key, token, u.ttl, u.maxRetries, u.retryInterval)
		if err != nil {
			_ = releaseAll(ctx)
			return nil, fmt.Errorf("lock %s: %w", key, err)
		}
		held = append(held, lock)
	}
	return releaseAll, nil
}

func (u *UserLocker) key(userID uint) string {
	return fmt.Sprintf("%s:%d", u.prefix, userID)
}

func uniqueSorted(ids []uint) []uint {
	seen := make(map[uint]bool, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if id == 0 || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
