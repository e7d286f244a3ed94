package repositories

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLockAcquireErrorOnContention(t *testing.T) {
	err := lockAcquireError("appointment_lock:clinic-1_1", nil)

	assert.EqualError(t, err, "lock appointment_lock:clinic-1_1 is held by another writer")
	assert.NotContains(t, err.Error(), "%!w")
}

func TestLockAcquireErrorWrapsRedisFailure(t *testing.T) {
	cause := errors.New("connection refused")
	err := lockAcquireError("appointment_lock:clinic-1_1", cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "failed to acquire lock")
}
