package utils

import (
	"AyurCare/cache"
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

// GenerateResetCode generates a random 6-digit reset code.
func GenerateResetCode() string {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "000000"
	}
	return fmt.Sprintf("%06d", n.Int64())
}

// SetResetCode stores the reset code for a given email in Redis for 15 minutes.
func SetResetCode(ctx context.Context, email, code string) error {
	cacheInstance, err := cache.NewCache()
	if err != nil {
		return err
	}
	return cacheInstance.Set(ctx, "reset_code:"+email, code, 15*time.Minute)
}

// GetResetCode retrieves the reset code for a given email from Redis.
func GetResetCode(ctx context.Context, email string) (*string, error) {
	cacheInstance, err := cache.NewCache()
	if err != nil {
		return nil, err
	}
	code, err := cacheInstance.Get(ctx, "reset_code:"+email)
	if err != nil {
		return nil, err
	}
	if code == "" {
		return nil, nil // no code outstanding
	}
	return &code, nil
}

// DeleteResetCode deletes the reset code for a given email from Redis.
func DeleteResetCode(ctx context.Context, email string) error {
	cacheInstance, err := cache.NewCache()
	if err != nil {
		return err
	}
	return cacheInstance.Delete(ctx, "reset_code:"+email)
}
