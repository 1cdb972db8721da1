package lock

import (
	"context"
	"errors"
	"time"

	"go-weather/internal/domain/model"
	"go-weather/pkg/log"
	"go-weather/pkg/redis"
)

// RedisLocker takes a distributed lock in Redis around each mutation
type RedisLocker struct {
	client *redis.Client
	key    string
	opts   *redis.LockOptions
}

var _ Locker = (*RedisLocker)(nil)

func NewRedisLocker(client *redis.Client, key string, opts *redis.LockOptions) *RedisLocker {
	return &RedisLocker{client: client, key: key, opts: opts}
}

func (l *RedisLocker) Acquire(ctx context.Context) (func(), error) {
	lock := redis.NewLock(l.client, l.key, l.opts)
	if err := lock.Lock(ctx); err != nil {
		return nil, err
	}

	return func() {
		// released on a fresh context so a canceled request still frees the key
		unlockCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()

		if err := lock.Unlock(unlockCtx); err != nil {
			if errors.Is(err, redis.ErrLockNotHeld) {
				log.Warnw("favorites lock expired before release", "key", lock.Key())
				return
			}
			log.Errorw("failed to release favorites lock", "key", lock.Key(), "error", err)
		}
	}, nil
}

func (l *RedisLocker) Health() model.ComponentHealthStatus {
	status, details := redis.HealthCheck(context.Background(), l.client, 2*time.Second)
	if status == redis.StatusUp {
		return model.ComponentHealthStatus{Status: model.StatusUp, Details: details}
	}
	return model.ComponentHealthStatus{Status: model.StatusDown, Details: details}
}
