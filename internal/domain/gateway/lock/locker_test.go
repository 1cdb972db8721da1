package lock

import (
	"context"
	"testing"
	"time"

	"go-weather/internal/domain/model"
	"go-weather/pkg/redis"
)

func TestNoopLocker(t *testing.T) {
	release, err := NoopLocker{}.Acquire(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	release()

	if status := (NoopLocker{}).Health(); status.Status != model.StatusUp {
		t.Errorf("expected UP, got %s", status.Status)
	}
}

func TestRedisLockerUnreachableServer(t *testing.T) {
	// nothing listens on port 1
	config := redis.NewRedisConfig().WithHost("127.0.0.1").WithPort(1)
	config.MaxRetries = 0
	config.DialTimeout = 100 * time.Millisecond
	client, err := redis.NewClient(config)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })

	locker := NewRedisLocker(client, "favorites", redis.NewLockOptions().WithMaxRetries(0))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if _, err = locker.Acquire(ctx); err == nil {
		t.Fatal("expected acquire to fail without a server")
	}

	if status := locker.Health(); status.Status != model.StatusDown {
		t.Errorf("expected DOWN, got %s", status.Status)
	}
}
