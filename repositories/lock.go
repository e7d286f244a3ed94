package repositories

import (
	"AyurCare/database"
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
)

const (
	lockTTL        = 10 * time.Second
	lockMaxRetries = 3
	lockRetryDelay = 2 * time.Second
)

// withLock serializes a mutating operation on a contended record behind a
// redis SetNX lock, retrying acquisition a few times before giving up.
func withLock(ctx context.Context, key string, fn func() error) error {
	lockValue := uuid.New().String()

	var locked bool
	var err error
	for i := 0; i < lockMaxRetries; i++ {
		locked, err = database.NewLock(ctx, key, lockValue, lockTTL)
		if err == nil && locked {
			break
		}
		if i < lockMaxRetries-1 {
			time.Sleep(lockRetryDelay)
		}
	}
	if !locked {
		return lockAcquireError(key, err)
	}
	defer func() {
		if err := database.ReleaseLock(ctx, key, lockValue); err != nil {
			log.Printf("Failed to release lock %s: %v", key, err)
		}
	}()

	return fn()
}

// lockAcquireError reports why acquisition gave up. Contention is not a redis
// failure: when every attempt saw the lock held, err is nil and must not be
// wrapped.
func lockAcquireError(key string, err error) error {
	if err != nil {
		return fmt.Errorf("failed to acquire lock %s: %w", key, err)
	}
	return fmt.Errorf("lock %s is held by another writer", key)
}
