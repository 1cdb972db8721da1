package lock

import (
	"context"

	"go-weather/internal/domain/model"
)

// Locker serializes favorites mutations across processes sharing the same durable store
type Locker interface {
	// Acquire blocks until the lock is held or ctx is done; the returned func releases it
	Acquire(ctx context.Context) (release func(), err error)

	Health() model.ComponentHealthStatus
}

// NoopLocker is used when a single process owns the store
type NoopLocker struct{}

var _ Locker = NoopLocker{}

func (NoopLocker) Acquire(context.Context) (func(), error) {
	return func() {}, nil
}

func (NoopLocker) Health() model.ComponentHealthStatus {
	return model.ComponentHealthStatus{
		Status:  model.StatusUp,
		Details: map[string]string{"message": "distributed lock disabled"},
	}
}
